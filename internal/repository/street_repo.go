package repository

import (
	"context"
	"fmt"

	"delivery_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// StreetRepository defines operations for street reference data
type StreetRepository interface {
	Create(ctx context.Context, street *model.Street) error
	FindAll(ctx context.Context) ([]model.Street, error)
	UpdateOrder(ctx context.Context, order []model.StreetOrder) error
	Delete(ctx context.Context, id int64) error
}

type streetRepository struct {
	db DB
}

// NewStreetRepository creates a new StreetRepository
func NewStreetRepository(db DB) StreetRepository {
	return &streetRepository{db: db}
}

// Create inserts a new street at the end of the presentation order
func (r *streetRepository) Create(ctx context.Context, s *model.Street) error {
	sql := `INSERT INTO streets (name, google_maps_name, "order")
            VALUES ($1, $2, COALESCE((SELECT MAX("order") + 1 FROM streets), 0))
            RETURNING id, "order", created_at`
	err := r.db.QueryRow(ctx, sql, s.Name, s.GoogleMapsName).Scan(&s.ID, &s.Order, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create street: %w", err)
	}
	return nil
}

// FindAll retrieves every street ordered by presentation order, then
// creation time. This is the reference order the list pipeline sorts by.
func (r *streetRepository) FindAll(ctx context.Context) ([]model.Street, error) {
	sql := `SELECT id, name, google_maps_name, "order", created_at
            FROM streets ORDER BY "order" ASC, created_at ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query streets: %w", err)
	}
	defer rows.Close()

	var streets []model.Street
	for rows.Next() {
		var s model.Street
		if err := rows.Scan(&s.ID, &s.Name, &s.GoogleMapsName, &s.Order, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan street row: %w", err)
		}
		streets = append(streets, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating street rows: %w", err)
	}
	return streets, nil
}

// UpdateOrder applies a full reordering inside one transaction, so a
// failure part-way never leaves the reference list half-reordered.
func (r *streetRepository) UpdateOrder(ctx context.Context, order []model.StreetOrder) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	for _, item := range order {
		if _, err := tx.Exec(ctx, `UPDATE streets SET "order" = $1 WHERE id = $2`, item.Order, item.ID); err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
			}
			return fmt.Errorf("failed to update street order: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Delete removes a street from the reference list
func (r *streetRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM streets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete street: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

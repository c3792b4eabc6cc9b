package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// DeliveryRepository defines operations for the per-user delivery ledger
type DeliveryRepository interface {
	Create(ctx context.Context, d *model.Delivery) error
	FindByID(ctx context.Context, id int64) (*model.Delivery, error)
	FindByUser(ctx context.Context, userID int) ([]model.Delivery, error)
	Update(ctx context.Context, d *model.Delivery) error
	Delete(ctx context.Context, id int64) error
	SumDeliveredByUser(ctx context.Context, userID int) (total int64, days int, err error)
}

type deliveryRepository struct {
	db DB
}

// NewDeliveryRepository creates a new DeliveryRepository
func NewDeliveryRepository(db DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

// Create inserts a new ledger entry
func (r *deliveryRepository) Create(ctx context.Context, d *model.Delivery) error {
	sql := `INSERT INTO deliveries (user_id, date, delivered)
            VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, d.UserID, d.Date, d.Delivered).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}
	return nil
}

// FindByID retrieves a ledger entry by its ID
func (r *deliveryRepository) FindByID(ctx context.Context, id int64) (*model.Delivery, error) {
	d := &model.Delivery{}
	sql := `SELECT id, user_id, date, delivered, created_at, updated_at FROM deliveries WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&d.ID, &d.UserID, &d.Date, &d.Delivered, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find delivery by ID: %w", err)
	}
	return d, nil
}

// FindByUser retrieves a user's ledger, newest day first
func (r *deliveryRepository) FindByUser(ctx context.Context, userID int) ([]model.Delivery, error) {
	sql := `SELECT id, user_id, date, delivered, created_at, updated_at
            FROM deliveries WHERE user_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries by user: %w", err)
	}
	defer rows.Close()

	var deliveries []model.Delivery
	for rows.Next() {
		var d model.Delivery
		if err := rows.Scan(&d.ID, &d.UserID, &d.Date, &d.Delivered, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery row: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delivery rows: %w", err)
	}
	return deliveries, nil
}

// Update replaces the date and count of an existing entry, ensuring the
// owner matches.
func (r *deliveryRepository) Update(ctx context.Context, d *model.Delivery) error {
	sql := `UPDATE deliveries SET date = $1, delivered = $2, updated_at = NOW()
            WHERE id = $3 AND user_id = $4 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, d.Date, d.Delivered, d.ID, d.UserID).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("failed to update delivery: %w", err)
	}
	return nil
}

// Delete removes a ledger entry
func (r *deliveryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SumDeliveredByUser totals a user's delivered parcels and counts the
// ledger days, for the earnings summary.
func (r *deliveryRepository) SumDeliveredByUser(ctx context.Context, userID int) (int64, int, error) {
	var total int64
	var days int
	sql := `SELECT COALESCE(SUM(delivered), 0), COUNT(id) FROM deliveries WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, sql, userID).Scan(&total, &days); err != nil {
		return 0, 0, fmt.Errorf("failed to sum deliveries: %w", err)
	}
	return total, days, nil
}

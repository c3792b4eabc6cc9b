package repository

import (
	"context"
	"errors"
	"fmt"

	"delivery_tracker/internal/model"

	"github.com/jackc/pgx/v5"
)

// ClientRepository defines operations for client data
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id int64) (*model.Client, error)
	FindAll(ctx context.Context, status *string) ([]model.Client, error)
	Update(ctx context.Context, client *model.Client) error
	UpdateStatus(ctx context.Context, id int64, status string, note *string) (*model.Client, error)
	Delete(ctx context.Context, id int64) error
}

type clientRepository struct {
	db DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, full_name, address, phone, status, note, created_at, updated_at`

func scanClient(row pgx.Row, c *model.Client) error {
	return row.Scan(&c.ID, &c.FullName, &c.Address, &c.Phone, &c.Status, &c.Note, &c.CreatedAt, &c.UpdatedAt)
}

// Create inserts a new client; the store assigns the identifier and the
// status defaults to pending.
func (r *clientRepository) Create(ctx context.Context, c *model.Client) error {
	sql := `INSERT INTO clients (full_name, address, phone, status, note)
            VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, c.FullName, c.Address, c.Phone, c.Status, c.Note).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// FindByID retrieves a client by its ID
func (r *clientRepository) FindByID(ctx context.Context, id int64) (*model.Client, error) {
	c := &model.Client{}
	sql := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	if err := scanClient(r.db.QueryRow(ctx, sql, id), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	return c, nil
}

// FindAll retrieves clients, optionally scoped to a status. Ordering by
// street reference happens in the list pipeline, not in SQL.
func (r *clientRepository) FindAll(ctx context.Context, status *string) ([]model.Client, error) {
	sql := `SELECT ` + clientColumns + ` FROM clients`
	args := []any{}
	if status != nil && *status != "" {
		sql += ` WHERE status = $1`
		args = append(args, *status)
	}
	sql += ` ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

// Update modifies an existing client's contact fields
func (r *clientRepository) Update(ctx context.Context, c *model.Client) error {
	sql := `UPDATE clients
            SET full_name = $1, address = $2, phone = $3, note = $4, updated_at = NOW()
            WHERE id = $5 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, c.FullName, c.Address, c.Phone, c.Note, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// UpdateStatus overwrites the status and note; no history is retained.
func (r *clientRepository) UpdateStatus(ctx context.Context, id int64, status string, note *string) (*model.Client, error) {
	c := &model.Client{}
	sql := `UPDATE clients SET status = $1, note = $2, updated_at = NOW()
            WHERE id = $3 RETURNING ` + clientColumns
	if err := scanClient(r.db.QueryRow(ctx, sql, status, note, id), c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to update client status: %w", err)
	}
	return c, nil
}

// Delete removes a client from the database
func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

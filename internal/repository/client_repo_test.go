package repository

import (
	"context"
	"testing"
	"time"

	"delivery_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestClientRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClientRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs("Novak Jovanov", "Oak 12", "070-123", model.StatusPending, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	c := &model.Client{FullName: "Novak Jovanov", Address: "Oak 12", Phone: "070-123", Status: model.StatusPending}
	err := repo.Create(context.Background(), c)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClientRepository(mock)

	mock.ExpectQuery(`SELECT .* FROM clients WHERE id`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.FindByID(context.Background(), 42)

	assert.NoError(t, err, "not found is not an error for this contract")
	assert.Nil(t, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindAll_StatusScoped(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClientRepository(mock)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "full_name", "address", "phone", "status", "note", "created_at", "updated_at"}).
		AddRow(int64(1), "A", "Oak 3", "070", model.StatusPending, nil, now, now).
		AddRow(int64(2), "B", "Pine 5", "071", model.StatusPending, nil, now, now)
	mock.ExpectQuery(`SELECT .* FROM clients WHERE status`).
		WithArgs(model.StatusPending).
		WillReturnRows(rows)

	status := model.StatusPending
	clients, err := repo.FindAll(context.Background(), &status)

	assert.NoError(t, err)
	assert.Len(t, clients, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_UpdateStatus(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClientRepository(mock)
	now := time.Now()
	note := "nobody home"

	rows := pgxmock.NewRows([]string{"id", "full_name", "address", "phone", "status", "note", "created_at", "updated_at"}).
		AddRow(int64(1), "A", "Oak 3", "070", model.StatusUndelivered, &note, now, now)
	mock.ExpectQuery(`UPDATE clients SET status`).
		WithArgs(model.StatusUndelivered, &note, int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateStatus(context.Background(), 1, model.StatusUndelivered, &note)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusUndelivered, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClientRepository(mock)

	mock.ExpectExec(`DELETE FROM clients`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Delete_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewClientRepository(mock)

	mock.ExpectExec(`DELETE FROM clients`).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 99)

	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

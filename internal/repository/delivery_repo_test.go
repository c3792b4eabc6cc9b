package repository

import (
	"context"
	"testing"
	"time"

	"delivery_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDeliveryRepository(mock)
	now := time.Now()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO deliveries`).
		WithArgs(4, day, 23).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	d := &model.Delivery{UserID: 4, Date: day, Delivered: 23}
	err := repo.Create(context.Background(), d)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_SumDeliveredByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDeliveryRepository(mock)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(delivered\), 0\), COUNT\(id\) FROM deliveries`).
		WithArgs(4).
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count"}).AddRow(int64(120), 6))

	total, days, err := repo.SumDeliveredByUser(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, int64(120), total)
	assert.Equal(t, 6, days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeliveryRepository_Update_OwnershipMiss(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDeliveryRepository(mock)
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE deliveries SET date`).
		WithArgs(day, 30, int64(11), 99).
		WillReturnError(pgx.ErrNoRows)

	d := &model.Delivery{ID: 11, UserID: 99, Date: day, Delivered: 30}
	err := repo.Update(context.Background(), d)

	assert.True(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

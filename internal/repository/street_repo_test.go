package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery_tracker/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestStreetRepository_FindAll_ReferenceOrder(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStreetRepository(mock)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "name", "google_maps_name", "order", "created_at"}).
		AddRow(int64(1), "Oak", "Oak Avenue", 0, now).
		AddRow(int64(2), "Pine", "Pine Street", 1, now)
	mock.ExpectQuery(`SELECT id, name, google_maps_name, "order", created_at`).
		WillReturnRows(rows)

	streets, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Oak", "Pine"}, []string{streets[0].Name, streets[1].Name})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStreetRepository_UpdateOrder_CommitsAllUpdates(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStreetRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE streets SET "order"`).
		WithArgs(0, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE streets SET "order"`).
		WithArgs(1, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.UpdateOrder(context.Background(), []model.StreetOrder{
		{ID: 2, Order: 0},
		{ID: 1, Order: 1},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStreetRepository_UpdateOrder_RollsBackOnFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStreetRepository(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE streets SET "order"`).
		WithArgs(0, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE streets SET "order"`).
		WithArgs(1, int64(1)).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.UpdateOrder(context.Background(), []model.StreetOrder{
		{ID: 2, Order: 0},
		{ID: 1, Order: 1},
	})

	assert.Error(t, err, "a mid-sequence failure aborts the whole reorder")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStreetRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewStreetRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO streets`).
		WithArgs("Elm", "Elm Boulevard").
		WillReturnRows(pgxmock.NewRows([]string{"id", "order", "created_at"}).AddRow(int64(3), 2, now))

	s := &model.Street{Name: "Elm", GoogleMapsName: "Elm Boulevard"}
	err := repo.Create(context.Background(), s)

	assert.NoError(t, err)
	assert.Equal(t, 2, s.Order, "new street lands at the end of the order")
	assert.NoError(t, mock.ExpectationsWereMet())
}

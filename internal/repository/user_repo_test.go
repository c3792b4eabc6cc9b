package repository

import (
	"context"
	"testing"
	"time"

	"delivery_tracker/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("kurir@example.com", "hash", model.RoleCourier, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &model.User{
		Email:        "kurir@example.com",
		PasswordHash: "hash",
		Role:         model.RoleCourier,
		CreatedAt:    time.Now(),
	})

	assert.True(t, IsDuplicate(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT id, email, password_hash, role, created_at FROM users WHERE email`).
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "missing@example.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateRole(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
		AddRow(3, "op@example.com", "hash", model.RoleOperator, now)
	mock.ExpectQuery(`UPDATE users SET role`).
		WithArgs(model.RoleOperator, 3).
		WillReturnRows(rows)

	user, err := repo.UpdateRole(context.Background(), 3, model.RoleOperator)

	assert.NoError(t, err)
	assert.Equal(t, model.RoleOperator, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(9).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.True(t, IsNotFound(repo.Delete(context.Background(), 9)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

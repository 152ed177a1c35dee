package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyticket/backend/internal/domain"
)

var userColumns = []string{
	"id", "phone_number", "user_name", "email", "first_name", "last_name", "password",
	"created_at", "updated_at", "deleted_at",
}

func TestUserRepository_Create(t *testing.T) {
	user := &domain.User{
		ID:          uuid.New(),
		PhoneNumber: "09120000000",
		UserName:    "sara_k",
		Email:       "sara@example.com",
		FirstName:   "Sara",
		LastName:    "Karimi",
		Password:    "$2a$10$hash",
	}

	t.Run("ok", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectExec(`INSERT INTO user`).
			WithArgs(user.ID, user.PhoneNumber, user.UserName, user.Email, user.FirstName, user.LastName, user.Password).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(context.Background(), user))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate entry", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectExec(`INSERT INTO user`).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	})

	t.Run("db error is wrapped", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectExec(`INSERT INTO user`).WillReturnError(errors.New("db down"))

		err := repo.Create(context.Background(), user)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
		assert.NotErrorIs(t, err, domain.ErrDuplicateEntry)
	})
}

func TestUserRepository_GetOneByID(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		rows := sqlmock.NewRows(userColumns).
			AddRow(id[:], "09120000000", "sara_k", "sara@example.com", "Sara", "Karimi", "hash", now, now, nil)
		mock.ExpectQuery(`SELECT .+ FROM user WHERE id = uuid_to_bin\(\?\)`).
			WithArgs(id).
			WillReturnRows(rows)

		user, err := repo.GetOneByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "sara_k", user.UserName)
		assert.Nil(t, user.DeletedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectQuery(`SELECT .+ FROM user WHERE id`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetOneByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserRepository_GetByUserName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM user WHERE user_name = \?`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserName(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_FindConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)

	rows := sqlmock.NewRows([]string{"phone_number", "user_name", "email"}).AddRow(int64(0), int64(1), int64(0))
	mock.ExpectQuery(`SELECT\s+COALESCE`).
		WithArgs("09120000000", "sara_k", "sara@example.com", "09120000000", "sara_k", "sara@example.com").
		WillReturnRows(rows)

	conflicts, err := repo.FindConflicts(context.Background(), "09120000000", "sara_k", "sara@example.com")
	require.NoError(t, err)
	assert.True(t, conflicts.Any())
	assert.True(t, conflicts.UserName)
	assert.False(t, conflicts.PhoneNumber)
	assert.False(t, conflicts.Email)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	id := uuid.New()
	profile := domain.UserProfile{FirstName: "Sara", LastName: "Karimi", Email: "new@example.com"}

	t.Run("ok", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectExec(`UPDATE user SET first_name`).
			WithArgs("Sara", "Karimi", "new@example.com", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateProfile(context.Background(), id, profile))
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectExec(`UPDATE user SET first_name`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateProfile(context.Background(), id, profile)
		assert.ErrorIs(t, err, domain.ErrNoRowsAffected)
	})

	t.Run("email taken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserRepository(db)

		mock.ExpectExec(`UPDATE user SET first_name`).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		err := repo.UpdateProfile(context.Background(), id, profile)
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE user SET password = \?`).
		WithArgs("newhash", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassword(context.Background(), id, "newhash"))
	require.NoError(t, mock.ExpectationsWereMet())
}

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyticket/backend/internal/domain"
)

func TestUserDocumentRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newUserDocumentRepository(db)

	doc := &domain.UserDocument{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		NationalCode:   "0012345678",
		PassportNumber: "X12345678",
		FileKey:        "documents/u/f.pdf",
		FileURL:        "https://cdn.example.com/documents/u/f.pdf",
		ContentType:    "application/pdf",
	}

	mock.ExpectExec(`INSERT INTO user_document .+ ON DUPLICATE KEY UPDATE`).
		WithArgs(doc.ID, doc.UserID, doc.NationalCode, doc.PassportNumber, doc.FileKey, doc.FileURL, doc.ContentType).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Upsert(context.Background(), doc))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDocumentRepository_GetByUserID(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserDocumentRepository(db)

		id := uuid.New()
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "national_code", "passport_number", "file_key", "file_url", "content_type", "created_at", "updated_at",
		}).AddRow(id[:], userID[:], "0012345678", "", "k", "u", "image/png", time.Now(), time.Now())
		mock.ExpectQuery(`FROM user_document WHERE user_id = uuid_to_bin\(\?\)`).
			WithArgs(userID).
			WillReturnRows(rows)

		doc, err := repo.GetByUserID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "0012345678", doc.NationalCode)
		assert.Equal(t, userID, doc.UserID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newUserDocumentRepository(db)

		mock.ExpectQuery(`FROM user_document`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByUserID(context.Background(), userID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAirlineRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newAirlineRepository(db)

	a, b := uuid.New(), uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "symbol", "name", "logo_url", "username", "password", "created_at", "updated_at", "deleted_at",
	}).
		AddRow(a[:], "IV", "Caspian", "https://cdn/iv.png", "u1", "p1", now, now, nil).
		AddRow(b[:], "EP", "Aseman", "https://cdn/ep.png", "u2", "p2", now, now, nil)
	mock.ExpectQuery(`FROM airline WHERE deleted_at IS NULL`).WillReturnRows(rows)

	airlines, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, airlines, 2)
	assert.Equal(t, "IV", airlines[0].Symbol)
	assert.Equal(t, "p2", airlines[1].Password)
}

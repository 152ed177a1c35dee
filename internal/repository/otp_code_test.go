package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyticket/backend/internal/domain"
)

func TestOtpCodeRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newOtpCodeRepository(db)

	mock.ExpectExec(`INSERT INTO otp_code \(phone_number, code\)`).
		WithArgs("09120000000", 4821).
		WillReturnResult(sqlmock.NewResult(17, 1))

	otp := &domain.OtpCode{PhoneNumber: "09120000000", Code: 4821}
	require.NoError(t, repo.Create(context.Background(), otp))
	assert.Equal(t, int64(17), otp.ID)
}

func TestOtpCodeRepository_GetLatestByPhoneNumber(t *testing.T) {
	t.Run("newest row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newOtpCodeRepository(db)

		rows := sqlmock.NewRows([]string{"id", "phone_number", "code", "created_at"}).
			AddRow(int64(3), "09120000000", 4821, time.Now())
		mock.ExpectQuery(`SELECT .+ FROM otp_code\s+WHERE phone_number = \?\s+ORDER BY created_at DESC, id DESC\s+LIMIT 1`).
			WithArgs("09120000000").
			WillReturnRows(rows)

		otp, err := repo.GetLatestByPhoneNumber(context.Background(), "09120000000")
		require.NoError(t, err)
		assert.Equal(t, int64(3), otp.ID)
		assert.True(t, otp.Matches("4821"))
	})

	t.Run("none", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newOtpCodeRepository(db)

		mock.ExpectQuery(`FROM otp_code`).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetLatestByPhoneNumber(context.Background(), "09120000000")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOtpCodeRepository_Delete(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newOtpCodeRepository(db)

		mock.ExpectExec(`DELETE FROM otp_code WHERE id = \?`).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("already gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := newOtpCodeRepository(db)

		mock.ExpectExec(`DELETE FROM otp_code`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Error(t, repo.Delete(context.Background(), 3))
	})
}

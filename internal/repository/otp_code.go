package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/skyticket/backend/internal/domain"
)

type otpCodeRepository struct {
	db *sqlx.DB
}

func newOtpCodeRepository(db *sqlx.DB) *otpCodeRepository {
	return &otpCodeRepository{
		db: db,
	}
}

func (r *otpCodeRepository) Create(ctx context.Context, otp *domain.OtpCode) error {
	const op = "repository.otpCode.Create"

	const query = `
    INSERT INTO otp_code (phone_number, code)
    VALUES (:phone_number, :code)
    `

	res, err := r.db.NamedExecContext(ctx, query, otp)
	if err != nil {
		return fmt.Errorf("%s: insert otp code failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: get last insert id failed: %w", op, err)
	}
	otp.ID = id

	return nil
}

// GetLatestByPhoneNumber returns the newest code issued to phoneNumber.
func (r *otpCodeRepository) GetLatestByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.OtpCode, error) {
	const op = "repository.otpCode.GetLatestByPhoneNumber"

	const query = `
    SELECT id, phone_number, code, created_at
    FROM otp_code
    WHERE phone_number = ?
    ORDER BY created_at DESC, id DESC
    LIMIT 1
    `

	var otp domain.OtpCode
	if err := r.db.GetContext(ctx, &otp, query, phoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select otp code failed: %w", op, err)
	}

	return &otp, nil
}

func (r *otpCodeRepository) Delete(ctx context.Context, id int64) error {
	const op = "repository.otpCode.Delete"

	const query = `DELETE FROM otp_code WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: delete otp code failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows != 1 {
		return fmt.Errorf("%s: expected 1 row affected, got %d", op, rows)
	}

	return nil
}

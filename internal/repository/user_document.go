package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/skyticket/backend/internal/domain"
)

type userDocumentRepository struct {
	db *sqlx.DB
}

func newUserDocumentRepository(db *sqlx.DB) *userDocumentRepository {
	return &userDocumentRepository{
		db: db,
	}
}

func (r *userDocumentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error) {
	const query = `
		SELECT id, user_id, national_code, passport_number, file_key, file_url, content_type, created_at, updated_at
		FROM user_document WHERE user_id = uuid_to_bin(?)
	`
	var document domain.UserDocument
	if err := r.db.GetContext(ctx, &document, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user document failed: %w", err)
	}

	return &document, nil
}

// Upsert creates the user's document or overwrites the existing one. user_id is unique.
func (r *userDocumentRepository) Upsert(ctx context.Context, document *domain.UserDocument) error {
	const query = `
		INSERT INTO user_document (id, user_id, national_code, passport_number, file_key, file_url, content_type)
		VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			national_code = VALUES(national_code),
			passport_number = VALUES(passport_number),
			file_key = VALUES(file_key),
			file_url = VALUES(file_url),
			content_type = VALUES(content_type),
			updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, query,
		document.ID,
		document.UserID,
		document.NationalCode,
		document.PassportNumber,
		document.FileKey,
		document.FileURL,
		document.ContentType,
	)
	if err != nil {
		return fmt.Errorf("db upsert user document: %w", err)
	}

	return nil
}

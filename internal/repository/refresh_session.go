package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skyticket/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type refreshSessionRepository struct {
	db *sqlx.DB
}

func newRefreshSessionRepository(db *sqlx.DB) *refreshSessionRepository {
	return &refreshSessionRepository{
		db: db,
	}
}

func (r *refreshSessionRepository) Create(ctx context.Context, session *domain.RefreshSession) error {
	const query = `
				INSERT INTO refresh_session (id, user_id, refresh_token, user_agent, ip, expires_in)
				VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?)
				`
	_, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.RefreshToken, session.UserAgent, session.IP, session.ExpiresIn)
	if err != nil {
		return fmt.Errorf("db insert refresh session: %w", err)
	}

	return nil
}

func (r *refreshSessionRepository) GetByToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error) {
	const query = `
	SELECT id, user_id, refresh_token, user_agent, ip, expires_in, created_at, updated_at, deleted_at
	FROM refresh_session WHERE refresh_token = uuid_to_bin(?) AND deleted_at IS NULL;
	`
	var session domain.RefreshSession
	if err := r.db.GetContext(ctx, &session, query, refreshToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select refresh session by token failed: %w", err)
	}

	return &session, nil
}

func (r *refreshSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM refresh_session WHERE id = uuid_to_bin(?)`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete refresh session failed: %w", err)
	}

	return nil
}

func (r *refreshSessionRepository) DeleteByToken(ctx context.Context, userID uuid.UUID, refreshToken uuid.UUID) error {
	const query = `DELETE FROM refresh_session WHERE user_id = uuid_to_bin(?) AND refresh_token = uuid_to_bin(?)`

	res, err := r.db.ExecContext(ctx, query, userID, refreshToken)
	if err != nil {
		return fmt.Errorf("delete refresh session by token failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// DeleteAllByUserID revokes every session of the user. Having none is not an error.
func (r *refreshSessionRepository) DeleteAllByUserID(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM refresh_session WHERE user_id = uuid_to_bin(?)`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("delete refresh sessions of user failed: %w", err)
	}

	return nil
}

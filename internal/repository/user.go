package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skyticket/backend/internal/db"
	"github.com/skyticket/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, phone_number, user_name, email, first_name, last_name, password)
	VALUES(uuid_to_bin(?), ?, ?, ?, ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.PhoneNumber,
		user.UserName,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Password,
	)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
	SELECT id, phone_number, user_name, email, first_name, last_name, password, created_at, updated_at, deleted_at
	FROM user WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByUserName(ctx context.Context, userName string) (*domain.User, error) {
	const query = `
	SELECT id, phone_number, user_name, email, first_name, last_name, password, created_at, updated_at, deleted_at
	FROM user WHERE user_name = ? AND deleted_at IS NULL;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, userName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by user name failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) FindConflicts(ctx context.Context, phoneNumber, userName, email string) (domain.UserConflicts, error) {
	const query = `
	SELECT
		COALESCE(MAX(phone_number = ?), 0) AS phone_number,
		COALESCE(MAX(user_name = ?), 0) AS user_name,
		COALESCE(MAX(email = ?), 0) AS email
	FROM user
	WHERE phone_number = ? OR user_name = ? OR email = ?;
	`
	var conflicts domain.UserConflicts
	err := r.db.GetContext(ctx, &conflicts, query,
		phoneNumber, userName, email,
		phoneNumber, userName, email,
	)
	if err != nil {
		return domain.UserConflicts{}, fmt.Errorf("select user conflicts failed: %w", err)
	}

	return conflicts, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, profile domain.UserProfile) error {
	const query = `
	UPDATE user SET first_name = ?, last_name = ?, email = ? WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`
	res, err := r.db.ExecContext(ctx, query, profile.FirstName, profile.LastName, profile.Email, id)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update user profile by id failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
	UPDATE user SET password = ? WHERE id = uuid_to_bin(?) AND deleted_at IS NULL;
	`
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update user password by id failed: %w", err)
	}

	return nil
}

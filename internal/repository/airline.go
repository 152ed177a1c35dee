package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/skyticket/backend/internal/domain"
)

type airlineRepository struct {
	db *sqlx.DB
}

func newAirlineRepository(db *sqlx.DB) *airlineRepository {
	return &airlineRepository{
		db: db,
	}
}

func (r *airlineRepository) GetAll(ctx context.Context) ([]domain.Airline, error) {
	const query = `
	SELECT id, symbol, name, logo_url, username, password, created_at, updated_at, deleted_at
	FROM airline WHERE deleted_at IS NULL ORDER BY created_at ASC, name ASC;
	`
	var airlines []domain.Airline
	if err := r.db.SelectContext(ctx, &airlines, query); err != nil {
		return nil, fmt.Errorf("select airlines failed: %w", err)
	}

	return airlines, nil
}

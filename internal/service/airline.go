package service

import (
	"context"
	"fmt"

	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/repository"
)

type airlineService struct {
	airlineRepository repository.Airlines
}

func newAirlineService(airlineRepository repository.Airlines) *airlineService {
	return &airlineService{
		airlineRepository: airlineRepository,
	}
}

func (s *airlineService) GetAll(ctx context.Context) ([]domain.Airline, error) {
	airlines, err := s.airlineRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get airlines failed: %w", err)
	}

	return airlines, nil
}

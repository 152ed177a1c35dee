package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skyticket/backend/internal/availability"
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/repository"
	"github.com/skyticket/backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	clockTimeOffset = 11
	dateLength      = 10
)

type flightService struct {
	airlineRepository repository.Airlines
	searchCache       repository.SearchCache
	availability      AvailabilitySearcher
	dates             DateConverter
	cities            CityNamer
	partnerConfig     config.PartnerConfig
	searchConfig      config.SearchConfig
}

func newFlightService(airlineRepository repository.Airlines,
	searchCache repository.SearchCache,
	availability AvailabilitySearcher,
	dates DateConverter,
	cities CityNamer,
	partnerConfig config.PartnerConfig,
	searchConfig config.SearchConfig,
) *flightService {
	return &flightService{
		airlineRepository: airlineRepository,
		searchCache:       searchCache,
		availability:      availability,
		dates:             dates,
		cities:            cities,
		partnerConfig:     partnerConfig,
		searchConfig:      searchConfig,
	}
}

type airlineResult struct {
	offers []domain.FlightOffer
	err    error
}

// Search queries every airline and merges the offers in airline order.
// A failing airline is reported in FailedAirlines and does not fail the search.
func (s *flightService) Search(ctx context.Context, input FlightSearchInput) (*domain.FlightSearchResult, error) {
	departureDate, err := s.dates.ToGregorianString(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	q := domain.FlightQuery{
		Source:        strings.ToUpper(strings.TrimSpace(input.Source)),
		Target:        strings.ToUpper(strings.TrimSpace(input.Target)),
		DepartureDate: departureDate,
		Passengers: domain.PassengerInfo{
			Adult:  input.Adult,
			Child:  input.Child,
			Infant: input.Infant,
		},
	}

	airlines, err := s.airlineRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get airlines failed: %w", err)
	}

	if cached := s.cached(ctx, q); cached != nil {
		return cached, nil
	}

	results := s.searchAirlines(ctx, airlines, q)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &domain.FlightSearchResult{
		Flights:        make([]domain.FlightOffer, 0),
		Airlines:       airlines,
		FailedAirlines: make([]domain.AirlineFailure, 0),
		Passengers:     q.Passengers,
	}
	if res.Airlines == nil {
		res.Airlines = make([]domain.Airline, 0)
	}

	for i, r := range results {
		if r.err != nil {
			logger.Warn("airline search failed",
				zap.String("airline", airlines[i].Symbol),
				zap.Error(r.err),
			)
			res.FailedAirlines = append(res.FailedAirlines, domain.AirlineFailure{
				AirlineID:   airlines[i].ID,
				AirlineName: airlines[i].Name,
				Reason:      availability.ErrPartnerUnavailable.Error(),
			})
			continue
		}
		res.Flights = append(res.Flights, r.offers...)
	}
	res.FlightCount = len(res.Flights)

	if len(res.FailedAirlines) == 0 {
		s.store(ctx, q, res)
	}

	return res, nil
}

// searchAirlines runs one partner call per airline. results[i] belongs to airlines[i].
func (s *flightService) searchAirlines(ctx context.Context, airlines []domain.Airline, q domain.FlightQuery) []airlineResult {
	results := make([]airlineResult, len(airlines))

	g, gctx := errgroup.WithContext(ctx)
	if s.partnerConfig.Concurrency > 0 {
		g.SetLimit(s.partnerConfig.Concurrency)
	}

	for i := range airlines {
		airline := airlines[i]
		g.Go(func() error {
			callCtx := gctx
			if s.partnerConfig.Timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(gctx, s.partnerConfig.Timeout)
				defer cancel()
			}

			flights, err := s.availability.Search(callCtx, airline, q)
			if err != nil {
				results[i] = airlineResult{err: err}
				return nil
			}

			results[i] = airlineResult{offers: s.buildOffers(airline, flights)}
			return nil
		})
	}

	_ = g.Wait()

	return results
}

func (s *flightService) buildOffers(airline domain.Airline, flights []availability.Flight) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, len(flights))
	for _, f := range flights {
		price, ok := availability.ParseAdultPrice(f.AdultTotalPrices.String())
		if !ok {
			continue
		}

		offers = append(offers, domain.FlightOffer{
			FlightNo:            f.FlightNo.String(),
			Origin:              f.Origin,
			Destination:         f.Destination,
			OriginCityName:      s.cities.CityName(f.Origin),
			DestinationCityName: s.cities.CityName(f.Destination),
			DepartureDateTime:   f.DepartureDateTime,
			ArrivalDateTime:     f.ArrivalDateTime,
			DepartureTime:       clockTime(f.DepartureDateTime),
			ArrivalTime:         clockTime(f.ArrivalDateTime),
			DepartureDate:       datePart(f.DepartureDateTime),
			AdultTotalPrice:     price,
			ClassesStatus:       f.ClassesStatus,
			AirlineID:           airline.ID,
			AirlineName:         airline.Name,
			AirlineLogo:         airline.LogoURL,
		})
	}

	return offers
}

func (s *flightService) cached(ctx context.Context, q domain.FlightQuery) *domain.FlightSearchResult {
	if s.searchConfig.CacheTTL <= 0 {
		return nil
	}

	res, err := s.searchCache.Get(ctx, q)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("read search cache failed", zap.Error(err))
		}
		return nil
	}

	return res
}

func (s *flightService) store(ctx context.Context, q domain.FlightQuery, res *domain.FlightSearchResult) {
	if s.searchConfig.CacheTTL <= 0 {
		return
	}

	if err := s.searchCache.Set(ctx, q, res, s.searchConfig.CacheTTL); err != nil {
		logger.Warn("write search cache failed",
			zap.String("route", q.Source+"-"+q.Target),
			zap.String("date", q.DepartureDate),
			zap.Error(err),
		)
	}
}

// clockTime returns the part of a partner timestamp after "YYYY-MM-DDT".
func clockTime(ts string) string {
	if len(ts) <= clockTimeOffset {
		return ""
	}
	return ts[clockTimeOffset:]
}

func datePart(ts string) string {
	if len(ts) < dateLength {
		return ts
	}
	return ts[:dateLength]
}

// Package availability talks to partner airline availability endpoints.
package availability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/pkg/logger"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var ErrPartnerUnavailable = errors.New("partner unavailable")

const maxErrorBody = 512

// Flight is one entry of a partner availability response.
type Flight struct {
	FlightNo          flexString `json:"FlightNo"`
	DepartureDateTime string     `json:"DepartureDateTime"`
	ArrivalDateTime   string     `json:"ArrivalDateTime"`
	Origin            string     `json:"Origin"`
	Destination       string     `json:"Destination"`
	AdultTotalPrices  flexString `json:"AdultTotalPrices"`
	ClassesStatus     string     `json:"ClassesStatus"`
}

type Response struct {
	AvailableFlights []Flight `json:"AvailableFlights"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	breakerCfg config.BreakerConfig

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func NewClient(cfg config.PartnerConfig) *Client {
	return &Client{
		baseURL: cfg.AvailabilityURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breakerCfg: cfg.Breaker,
		breakers:   make(map[string]*gobreaker.CircuitBreaker),
	}
}

// Search fetches the availability of one airline. Any transport, status or decoding
// failure is reported as ErrPartnerUnavailable.
func (c *Client) Search(ctx context.Context, airline domain.Airline, q domain.FlightQuery) ([]Flight, error) {
	res, err := c.breaker(airline.Symbol).Execute(func() (interface{}, error) {
		return c.fetch(ctx, airline, q)
	})
	if err != nil {
		if errors.Is(err, ErrPartnerUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrPartnerUnavailable, airline.Symbol, err)
	}

	//nolint:forcetypeassert
	return res.([]Flight), nil
}

func (c *Client) fetch(ctx context.Context, airline domain.Airline, q domain.FlightQuery) ([]Flight, error) {
	endpoint, err := c.searchURL(airline, q)
	if err != nil {
		return nil, fmt.Errorf("build availability url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("requesting partner availability",
		zap.String("airline", airline.Symbol),
		zap.String("source", q.Source),
		zap.String("target", q.Target),
		zap.String("date", q.DepartureDate),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: do request: %v", ErrPartnerUnavailable, airline.Symbol, stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s: unexpected status code: %d, body: %s", ErrPartnerUnavailable, airline.Symbol, resp.StatusCode, string(body))
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %s: decode response: %v", ErrPartnerUnavailable, airline.Symbol, err)
	}

	return out.AvailableFlights, nil
}

// searchURL puts the partner office credentials in the query string; the partner
// accepts no other form. The resulting url must not be logged.
func (c *Client) searchURL(airline domain.Airline, q domain.FlightQuery) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("AirLine", airline.Symbol)
	params.Set("cbSource", q.Source)
	params.Set("cbTarget", q.Target)
	params.Set("cbDay1", "_")
	params.Set("cbMonth1", "_")
	params.Set("DepartureDate", q.DepartureDate)
	params.Set("cbAdultQty", strconv.Itoa(q.Passengers.Adult))
	params.Set("cbChildQty", strconv.Itoa(q.Passengers.Child))
	params.Set("cbInfantQty", strconv.Itoa(q.Passengers.Infant))
	params.Set("OfficeUser", airline.Username)
	params.Set("OfficePass", airline.Password)
	u.RawQuery = params.Encode()

	return u.String(), nil
}

func (c *Client) breaker(symbol string) *gobreaker.CircuitBreaker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[symbol]; ok {
		return cb
	}

	maxFailures := c.breakerCfg.MaxFailures
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "availability:" + symbol,
		MaxRequests: 1,
		Interval:    c.breakerCfg.Interval,
		Timeout:     c.breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("partner circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	c.breakers[symbol] = cb

	return cb
}

// stripURL drops the request url from transport errors; it carries the office credentials.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*f = flexString(n.String())

	return nil
}

func (f flexString) String() string {
	return string(f)
}

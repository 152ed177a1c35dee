package availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAirline() domain.Airline {
	return domain.Airline{
		ID:       uuid.New(),
		Symbol:   "ZV",
		Name:     "Zagros",
		Username: "office",
		Password: "secret",
	}
}

func testQuery() domain.FlightQuery {
	return domain.FlightQuery{
		Source:        "THR",
		Target:        "MHD",
		DepartureDate: "2024-08-10",
		Passengers:    domain.PassengerInfo{Adult: 2, Child: 1},
	}
}

func newTestClient(url string) *Client {
	return NewClient(config.PartnerConfig{
		AvailabilityURL: url,
		Timeout:         time.Second,
		Breaker: config.BreakerConfig{
			MaxFailures: 2,
			Interval:    time.Minute,
			Timeout:     time.Minute,
		},
	})
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/AvailabilityJS.jsp", r.URL.Path)
		assert.Equal(t, "ZV", q.Get("AirLine"))
		assert.Equal(t, "THR", q.Get("cbSource"))
		assert.Equal(t, "MHD", q.Get("cbTarget"))
		assert.Equal(t, "_", q.Get("cbDay1"))
		assert.Equal(t, "2024-08-10", q.Get("DepartureDate"))
		assert.Equal(t, "2", q.Get("cbAdultQty"))
		assert.Equal(t, "1", q.Get("cbChildQty"))
		assert.Equal(t, "0", q.Get("cbInfantQty"))
		assert.Equal(t, "office", q.Get("OfficeUser"))
		assert.Equal(t, "secret", q.Get("OfficePass"))

		_, _ = w.Write([]byte(`{"AvailableFlights":[
			{"FlightNo":4020,"DepartureDateTime":"2024-08-10 08:30:00","ArrivalDateTime":"2024-08-10 10:00:00",
			 "Origin":"THR","Destination":"MHD","AdultTotalPrices":"Y:1250000 C:-","ClassesStatus":"Y9"},
			{"FlightNo":"4022","DepartureDateTime":"2024-08-10 18:30:00","ArrivalDateTime":"2024-08-10 20:00:00",
			 "Origin":"THR","Destination":"MHD","AdultTotalPrices":980000}
		]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL + "/AvailabilityJS.jsp")
	flights, err := c.Search(context.Background(), testAirline(), testQuery())
	require.NoError(t, err)
	require.Len(t, flights, 2)

	assert.Equal(t, "4020", flights[0].FlightNo.String())
	assert.Equal(t, "Y:1250000 C:-", flights[0].AdultTotalPrices.String())
	assert.Equal(t, "980000", flights[1].AdultTotalPrices.String())
}

func TestClient_Search_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"bad status", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := newTestClient(srv.URL)
			_, err := c.Search(context.Background(), testAirline(), testQuery())
			assert.ErrorIs(t, err, ErrPartnerUnavailable)
		})
	}
}

func TestClient_Search_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Search(ctx, testAirline(), testQuery())
	require.ErrorIs(t, err, ErrPartnerUnavailable)
	assert.NotContains(t, err.Error(), "secret")
	assert.NotContains(t, err.Error(), "OfficeUser")
}

func TestClient_Search_ConnectionErrorHidesCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := newTestClient(addr).Search(context.Background(), testAirline(), testQuery())
	require.ErrorIs(t, err, ErrPartnerUnavailable)
	assert.NotContains(t, err.Error(), "secret")
	assert.NotContains(t, err.Error(), "OfficePass")
}

func TestClient_BreakerOpens(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	for i := 0; i < 4; i++ {
		_, err := c.Search(context.Background(), testAirline(), testQuery())
		assert.ErrorIs(t, err, ErrPartnerUnavailable)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

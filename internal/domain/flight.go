package domain

import "github.com/google/uuid"

type PassengerInfo struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Infant int `json:"infant"`
}

// FlightQuery is a search already converted to the partner calendar.
type FlightQuery struct {
	Source        string
	Target        string
	DepartureDate string
	Passengers    PassengerInfo
}

// FlightOffer is one bookable flight of one airline, reshaped for display.
type FlightOffer struct {
	FlightNo            string    `json:"flight_no"`
	Origin              string    `json:"origin"`
	Destination         string    `json:"destination"`
	OriginCityName      string    `json:"origin_city_name"`
	DestinationCityName string    `json:"destination_city_name"`
	DepartureDateTime   string    `json:"departure_date_time"`
	ArrivalDateTime     string    `json:"arrival_date_time"`
	DepartureTime       string    `json:"departure_time"`
	ArrivalTime         string    `json:"arrival_time"`
	DepartureDate       string    `json:"departure_date"`
	AdultTotalPrice     string    `json:"adult_total_price"`
	ClassesStatus       string    `json:"classes_status,omitempty"`
	AirlineID           uuid.UUID `json:"airline_id"`
	AirlineName         string    `json:"airline_name"`
	AirlineLogo         string    `json:"image"`
}

// AirlineFailure reports an airline whose partner endpoint could not be used for a search.
type AirlineFailure struct {
	AirlineID   uuid.UUID `json:"airline_id"`
	AirlineName string    `json:"airline_name"`
	Reason      string    `json:"reason"`
}

// FlightSearchResult is the merged outcome of one search across all airlines.
type FlightSearchResult struct {
	Flights        []FlightOffer    `json:"flights"`
	FlightCount    int              `json:"flight_count"`
	Airlines       []Airline        `json:"airlines"`
	FailedAirlines []AirlineFailure `json:"failed_airlines"`
	Passengers     PassengerInfo    `json:"passenger_info"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// CabinClass is the single letter cabin class code used by the inventory
// manager and by the external contract.
type CabinClass string

const (
	CabinClassEconomy  CabinClass = "E"
	CabinClassBusiness CabinClass = "B"
	CabinClassFirst    CabinClass = "F"
)

// ParseCabinClass converts a raw string into a CabinClass.
func ParseCabinClass(value string) (CabinClass, bool) {
	switch CabinClass(value) {
	case CabinClassEconomy, CabinClassBusiness, CabinClassFirst:
		return CabinClass(value), true
	}

	return "", false
}

// DedupCabinClasses removes repeated classes while preserving the order in
// which they first appeared.
func DedupCabinClasses(classes []CabinClass) []CabinClass {
	seen := make(map[CabinClass]bool, len(classes))

	var result []CabinClass

	for _, class := range classes {
		if seen[class] {
			continue
		}

		seen[class] = true
		result = append(result, class)
	}

	return result
}

// GeoLocation is the GeoJSON shaped geo_location column of an airport.
type GeoLocation struct {
	CRS         CoordinateReferenceSystem `json:"crs"`
	Coordinates []float64                 `json:"coordinates"`
}

type CoordinateReferenceSystem struct {
	Type       string        `json:"type"`
	Properties CRSProperties `json:"properties"`
}

type CRSProperties struct {
	Name string `json:"name"`
}

type Airport struct {
	IATACode        string      `json:"iata_code"`
	ICAOCode        string      `json:"icao_code"`
	Name            string      `json:"name"`
	SubdivisionCode string      `json:"subdivision_code"`
	City            string      `json:"city"`
	GeoLocation     GeoLocation `json:"geo_location"`
}

// Service is an airline's scheduled route between two airports.
type Service struct {
	ID                 int     `json:"id"`
	OriginAirport      Airport `json:"origin_airport"`
	DestinationAirport Airport `json:"destination_airport"`
}

type AircraftModel struct {
	ICAOCode string `json:"icao_code"`
	IATACode string `json:"iata_code"`
	Name     string `json:"name"`
}

// Cabin holds the seat statistics of a single cabin class on a flight.
// Availability is trusted from upstream and not re-validated here.
type Cabin struct {
	CabinClass          CabinClass `json:"cabin_class"`
	SeatsCount          int        `json:"total_seats_count"`
	AvailableSeatsCount int        `json:"available_seats_count"`
}

type Flight struct {
	ID                uuid.UUID     `json:"id"`
	DepartureTerminal string        `json:"departure_terminal"`
	DepartureTime     time.Time     `json:"departure_time"`
	ArrivalTerminal   string        `json:"arrival_terminal"`
	ArrivalTime       time.Time     `json:"arrival_time"`
	AircraftModel     AircraftModel `json:"aircraft_model"`
	Cabins            []Cabin       `json:"available_seats_counts"`
}

// ServiceFlights is a service together with the flights that matched a
// search window.
type ServiceFlights struct {
	Service
	Flights []Flight `json:"flights"`
}

// FlightDetails is a single flight together with its owning service.
type FlightDetails struct {
	Flight
	Service Service `json:"service"`
}

// SeatMapSection is a contiguous row range sharing one cabin class and
// column layout. Column groups are separated by '-' and '#' marks a column
// that does not exist in the row.
type SeatMapSection struct {
	CabinClass   CabinClass `json:"cabin_class"`
	StartRow     int        `json:"start_row"`
	EndRow       int        `json:"end_row"`
	ColumnLayout string     `json:"column_layout"`
}

type AircraftModelWithSeatMap struct {
	AircraftModel
	SeatMap []SeatMapSection `json:"seat_maps"`
}

type BookedSeat struct {
	Row    int    `json:"seat_row"`
	Column string `json:"seat_column"`
}

type FlightSeats struct {
	FlightID      uuid.UUID                `json:"id"`
	AircraftModel AircraftModelWithSeatMap `json:"aircraft_model"`
	BookedSeats   []BookedSeat             `json:"booked_seats"`
}

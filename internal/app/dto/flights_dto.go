package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/model"
	"github.com/skylineair/edge-services/internal/pkg/exception"
)

// FindFlightsRequest is the bound and validated input of the flight search
// endpoint. Origin and destination are path parameters, passengers and cabin
// come from the query string.
type FindFlightsRequest struct {
	Origin        string             `json:"origin" validate:"required,len=3,alpha"`
	Destination   string             `json:"destination" validate:"required,len=3,alpha"`
	DepartureTime time.Time          `json:"departureTime"`
	Passengers    int                `json:"passengers" validate:"min=1"`
	CabinClasses  []model.CabinClass `json:"cabin"`
}

var findFlightsLocations = map[string]string{
	"origin":        "path",
	"destination":   "path",
	"departureTime": "path",
	"passengers":    "query",
	"cabin":         "query",
}

// Validate collects every validation failure, including parse causes already
// gathered while binding the request, into a single 422 error.
func (r FindFlightsRequest) Validate(parseCauses ...exception.ErrorCause) error {
	causes := append([]exception.ErrorCause(nil), parseCauses...)

	if err := Validate.Struct(r); err != nil {
		fieldCauses, unknownErr := validationCauses(err, findFlightsLocations)
		if unknownErr != nil {
			return unknownErr
		}

		causes = append(causes, fieldCauses...)
	}

	if len(causes) > 0 {
		return NewValidationError(causes...)
	}

	return nil
}

// FlightRequest is the bound input of the flight detail and flight seats
// endpoints.
type FlightRequest struct {
	FlightID uuid.UUID `json:"flightId"`
}

type Coordinates struct {
	CRS  string    `json:"crs"`
	Data []float64 `json:"data"`
}

type Location struct {
	SubdivisionCode string      `json:"subdivisionCode"`
	City            string      `json:"city"`
	Coordinates     Coordinates `json:"coordinates"`
}

type Airport struct {
	IATACode string   `json:"iataCode"`
	ICAOCode string   `json:"icaoCode"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

type AircraftModel struct {
	ICAOCode string `json:"icaoCode"`
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
}

type Cabin struct {
	CabinClass          model.CabinClass `json:"cabinClass"`
	SeatsCount          int              `json:"seatsCount"`
	AvailableSeatsCount int              `json:"availableSeatsCount"`
}

type Flight struct {
	ID                uuid.UUID     `json:"id"`
	DepartureTerminal string        `json:"departureTerminal"`
	DepartureTime     time.Time     `json:"departureTime"`
	ArrivalTerminal   string        `json:"arrivalTerminal"`
	ArrivalTime       time.Time     `json:"arrivalTime"`
	AircraftModel     AircraftModel `json:"aircraftModel"`
	Cabins            []Cabin       `json:"cabins"`
}

// FlightsList is the response of the flight search endpoint.
type FlightsList struct {
	Name        string   `json:"name"`
	Origin      Airport  `json:"origin"`
	Destination Airport  `json:"destination"`
	Flights     []Flight `json:"flights"`
}

// FlightDetails is the response of the flight detail endpoint.
type FlightDetails struct {
	Flight
	Name        string  `json:"name"`
	Origin      Airport `json:"origin"`
	Destination Airport `json:"destination"`
}

type SeatMapSection struct {
	CabinClass   model.CabinClass `json:"cabinClass"`
	StartRow     int              `json:"startRow"`
	EndRow       int              `json:"endRow"`
	ColumnLayout string           `json:"columnLayout"`
}

type BookedSeat struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
}

// FlightSeats is the response of the flight seats endpoint.
type FlightSeats struct {
	FlightID      uuid.UUID        `json:"flightId"`
	AircraftModel AircraftModel    `json:"aircraftModel"`
	SeatMap       []SeatMapSection `json:"seatMap"`
	BookedSeats   []BookedSeat     `json:"bookedSeats"`
}

// FlightsListFromModel maps a matched service with its flights to the
// external contract. The display name is the configured IATA airline code
// followed by the service ID.
func FlightsListFromModel(serviceFlights model.ServiceFlights, iataAirlineCode string) FlightsList {
	flights := make([]Flight, len(serviceFlights.Flights))
	for i, flight := range serviceFlights.Flights {
		flights[i] = flightFromModel(flight)
	}

	return FlightsList{
		Name:        serviceDisplayName(iataAirlineCode, serviceFlights.ID),
		Origin:      airportFromModel(serviceFlights.OriginAirport),
		Destination: airportFromModel(serviceFlights.DestinationAirport),
		Flights:     flights,
	}
}

// FlightDetailsFromModel maps a flight and its owning service to the
// external contract.
func FlightDetailsFromModel(flight model.FlightDetails, iataAirlineCode string) FlightDetails {
	return FlightDetails{
		Flight:      flightFromModel(flight.Flight),
		Name:        serviceDisplayName(iataAirlineCode, flight.Service.ID),
		Origin:      airportFromModel(flight.Service.OriginAirport),
		Destination: airportFromModel(flight.Service.DestinationAirport),
	}
}

// FlightSeatsFromModel maps a flight's seat map and booked seats to the
// external contract.
func FlightSeatsFromModel(flightSeats model.FlightSeats) FlightSeats {
	seatMap := make([]SeatMapSection, len(flightSeats.AircraftModel.SeatMap))
	for i, section := range flightSeats.AircraftModel.SeatMap {
		seatMap[i] = SeatMapSection{
			CabinClass:   section.CabinClass,
			StartRow:     section.StartRow,
			EndRow:       section.EndRow,
			ColumnLayout: section.ColumnLayout,
		}
	}

	bookedSeats := make([]BookedSeat, len(flightSeats.BookedSeats))
	for i, seat := range flightSeats.BookedSeats {
		bookedSeats[i] = BookedSeat{
			Row:    seat.Row,
			Column: seat.Column,
		}
	}

	return FlightSeats{
		FlightID:      flightSeats.FlightID,
		AircraftModel: aircraftModelFromModel(flightSeats.AircraftModel.AircraftModel),
		SeatMap:       seatMap,
		BookedSeats:   bookedSeats,
	}
}

func serviceDisplayName(iataAirlineCode string, serviceID int) string {
	return fmt.Sprintf("%s%d", iataAirlineCode, serviceID)
}

func flightFromModel(flight model.Flight) Flight {
	cabins := make([]Cabin, len(flight.Cabins))
	for i, cabin := range flight.Cabins {
		cabins[i] = Cabin{
			CabinClass:          cabin.CabinClass,
			SeatsCount:          cabin.SeatsCount,
			AvailableSeatsCount: cabin.AvailableSeatsCount,
		}
	}

	return Flight{
		ID:                flight.ID,
		DepartureTerminal: flight.DepartureTerminal,
		DepartureTime:     flight.DepartureTime,
		ArrivalTerminal:   flight.ArrivalTerminal,
		ArrivalTime:       flight.ArrivalTime,
		AircraftModel:     aircraftModelFromModel(flight.AircraftModel),
		Cabins:            cabins,
	}
}

func airportFromModel(airport model.Airport) Airport {
	return Airport{
		IATACode: airport.IATACode,
		ICAOCode: airport.ICAOCode,
		Name:     airport.Name,
		Location: Location{
			SubdivisionCode: airport.SubdivisionCode,
			City:            airport.City,
			Coordinates: Coordinates{
				CRS:  airport.GeoLocation.CRS.Properties.Name,
				Data: airport.GeoLocation.Coordinates,
			},
		},
	}
}

func aircraftModelFromModel(aircraftModel model.AircraftModel) AircraftModel {
	return AircraftModel{
		ICAOCode: aircraftModel.ICAOCode,
		IATACode: aircraftModel.IATACode,
		Name:     aircraftModel.Name,
	}
}

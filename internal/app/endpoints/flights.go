package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/dto"
)

// FlightsService is the operation surface of the flights service.
type FlightsService interface {
	FindFlights(ctx context.Context, req dto.FindFlightsRequest) (dto.FlightsList, error)
	GetFlightDetails(ctx context.Context, flightID uuid.UUID) (dto.FlightDetails, error)
	GetFlightSeats(ctx context.Context, flightID uuid.UUID) (dto.FlightSeats, error)
}

type FlightsEndpoint struct {
	FindFlights      endpoint.Endpoint
	GetFlightDetails endpoint.Endpoint
	GetFlightSeats   endpoint.Endpoint
}

func MakeFlightsEndpoint(svc FlightsService) FlightsEndpoint {
	return FlightsEndpoint{
		FindFlights:      makeFindFlightsEndpoint(svc),
		GetFlightDetails: makeGetFlightDetailsEndpoint(svc),
		GetFlightSeats:   makeGetFlightSeatsEndpoint(svc),
	}
}

func makeFindFlightsEndpoint(svc FlightsService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FindFlightsRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := svc.FindFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}

func makeGetFlightDetailsEndpoint(svc FlightsService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flight, err := svc.GetFlightDetails(ctx, request.FlightID)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flight, nil
	}
}

func makeGetFlightSeatsEndpoint(svc FlightsService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		seats, err := svc.GetFlightSeats(ctx, request.FlightID)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return seats, nil
	}
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/app/model"
	"github.com/skylineair/edge-services/internal/pkg/inventory"
)

// searchWindow is the fixed width of the departure window, inclusive on
// both ends.
const searchWindow = 24 * time.Hour

// InventoryQuerier sends a GraphQL query document to the inventory manager
// and returns the parsed data object.
type InventoryQuerier interface {
	Query(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error)
}

// FlightService reshapes the inventory manager's schema into the external
// flights contract.
type FlightService struct {
	Inventory       InventoryQuerier
	IATAAirlineCode string
}

func NewFlightService(querier InventoryQuerier, iataAirlineCode string) *FlightService {
	return &FlightService{
		Inventory:       querier,
		IATAAirlineCode: iataAirlineCode,
	}
}

// FindFlights looks up the service between two airports and its flights
// departing within 24 hours of the requested time with enough available
// seats for the passenger count.
func (s *FlightService) FindFlights(
	ctx context.Context,
	req dto.FindFlightsRequest,
) (dto.FlightsList, error) {
	variables := map[string]interface{}{
		"origin":      strings.ToUpper(req.Origin),
		"destination": strings.ToUpper(req.Destination),
		"from_time":   req.DepartureTime.Format(time.RFC3339),
		"to_time":     req.DepartureTime.Add(searchWindow).Format(time.RFC3339),
		"passengers":  req.Passengers,
	}

	if cabinClasses := model.DedupCabinClasses(req.CabinClasses); len(cabinClasses) > 0 {
		variables["cabin_classes"] = cabinClasses
	}

	data, err := s.Inventory.Query(ctx, inventory.FindFlightsQuery, variables)
	if err != nil {
		return dto.FlightsList{}, fmt.Errorf("find flights: %w", err)
	}

	var result struct {
		Services []model.ServiceFlights `json:"service"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return dto.FlightsList{}, fmt.Errorf("parse find flights data: %w", err)
	}

	if len(result.Services) == 0 {
		return dto.FlightsList{}, ErrServiceNotFound
	}

	// There should be only one airline service per origin and destination
	// pair. The first one wins when upstream violates that.
	if len(result.Services) > 1 {
		slog.WarnContext(ctx, "more than one service matched an airport pair",
			slog.String("origin", variables["origin"].(string)),
			slog.String("destination", variables["destination"].(string)),
			slog.Int("services", len(result.Services)))
	}

	return dto.FlightsListFromModel(result.Services[0], s.IATAAirlineCode), nil
}

// GetFlightDetails looks up a single flight by its ID.
func (s *FlightService) GetFlightDetails(
	ctx context.Context,
	flightID uuid.UUID,
) (dto.FlightDetails, error) {
	data, err := s.Inventory.Query(ctx, inventory.GetFlightQuery, map[string]interface{}{
		"flight_id": flightID.String(),
	})
	if err != nil {
		return dto.FlightDetails{}, fmt.Errorf("get flight details: %w", err)
	}

	var result struct {
		Flight *model.FlightDetails `json:"flight_by_pk"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return dto.FlightDetails{}, fmt.Errorf("parse flight details data: %w", err)
	}

	if result.Flight == nil {
		return dto.FlightDetails{}, ErrFlightNotFound
	}

	return dto.FlightDetailsFromModel(*result.Flight, s.IATAAirlineCode), nil
}

// GetFlightSeats looks up a flight's seat map and booked seats by its ID.
func (s *FlightService) GetFlightSeats(
	ctx context.Context,
	flightID uuid.UUID,
) (dto.FlightSeats, error) {
	data, err := s.Inventory.Query(ctx, inventory.GetFlightSeatsQuery, map[string]interface{}{
		"flight_id": flightID.String(),
	})
	if err != nil {
		return dto.FlightSeats{}, fmt.Errorf("get flight seats: %w", err)
	}

	var result struct {
		FlightSeats *model.FlightSeats `json:"flight_by_pk"`
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return dto.FlightSeats{}, fmt.Errorf("parse flight seats data: %w", err)
	}

	if result.FlightSeats == nil {
		return dto.FlightSeats{}, ErrFlightNotFound
	}

	return dto.FlightSeatsFromModel(*result.FlightSeats), nil
}

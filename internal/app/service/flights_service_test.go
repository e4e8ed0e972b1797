//go:build unit

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/app/model"
	"github.com/skylineair/edge-services/internal/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const findFlightsData = `{
  "service": [
    {
      "id": 1,
      "origin_airport": {
        "iata_code": "TLV",
        "icao_code": "LLBG",
        "name": "Ben Gurion Airport",
        "subdivision_code": "IL-M",
        "city": "Tel Aviv-Yafo",
        "geo_location": {
          "type": "Point",
          "crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:EPSG::4326"}},
          "coordinates": [32.009444, 34.882778]
        }
      },
      "destination_airport": {
        "iata_code": "LAX",
        "icao_code": "KLAX",
        "name": "Los Angeles International Airport",
        "subdivision_code": "US-CA",
        "city": "Los Angeles",
        "geo_location": {
          "type": "Point",
          "crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:EPSG::4326"}},
          "coordinates": [33.9425, -61.591944]
        }
      },
      "flights": [
        {
          "id": "eb2e5080-000e-440d-8242-46428e577ce5",
          "departure_terminal": "3",
          "departure_time": "2019-12-31T23:05:00Z",
          "arrival_terminal": "B",
          "arrival_time": "2020-01-01T14:00:00Z",
          "aircraft_model": {
            "icao_code": "B789",
            "iata_code": "789",
            "name": "Boeing 787-9 Dreamliner"
          },
          "available_seats_counts": [
            {"cabin_class": "E", "total_seats_count": 204, "available_seats_count": 151},
            {"cabin_class": "B", "total_seats_count": 35, "available_seats_count": 16},
            {"cabin_class": "F", "total_seats_count": 32, "available_seats_count": 20}
          ]
        }
      ]
    }
  ]
}`

func TestFlightService_FindFlights(t *testing.T) {
	departureTime := time.Date(2019, 12, 31, 23, 5, 0, 0, time.UTC)

	request := dto.FindFlightsRequest{
		Origin:        "tlv",
		Destination:   "lax",
		DepartureTime: departureTime,
		Passengers:    2,
	}

	searchInventory := func(data string, req dto.FindFlightsRequest) (map[string]interface{}, dto.FlightsList, error) {
		querier := &MockInventoryQuerier{}

		var captured map[string]interface{}

		querier.On("Query", mock.Anything, inventory.FindFlightsQuery, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(map[string]interface{})
			}).
			Return(json.RawMessage(data), nil)

		svc := NewFlightService(querier, "SK")
		flights, err := svc.FindFlights(context.Background(), req)

		return captured, flights, err
	}

	t.Run("codes_are_normalized_to_uppercase", func(t *testing.T) {
		variables, _, err := searchInventory(findFlightsData, request)

		require.NoError(t, err)
		assert.Equal(t, "TLV", variables["origin"])
		assert.Equal(t, "LAX", variables["destination"])
	})

	t.Run("search_window_is_exactly_24_hours", func(t *testing.T) {
		variables, _, err := searchInventory(findFlightsData, request)

		require.NoError(t, err)
		assert.Equal(t, "2019-12-31T23:05:00Z", variables["from_time"])
		assert.Equal(t, "2020-01-01T23:05:00Z", variables["to_time"])
	})

	t.Run("passenger_count_is_passed_through", func(t *testing.T) {
		variables, _, err := searchInventory(findFlightsData, request)

		require.NoError(t, err)
		assert.Equal(t, 2, variables["passengers"])
	})

	t.Run("cabin_class_filter_is_deduplicated", func(t *testing.T) {
		req := request
		req.CabinClasses = []model.CabinClass{
			model.CabinClassEconomy,
			model.CabinClassEconomy,
			model.CabinClassBusiness,
		}

		variables, _, err := searchInventory(findFlightsData, req)

		require.NoError(t, err)
		assert.Equal(t, []model.CabinClass{
			model.CabinClassEconomy,
			model.CabinClassBusiness,
		}, variables["cabin_classes"])
	})

	t.Run("empty_cabin_filter_is_not_sent", func(t *testing.T) {
		variables, _, err := searchInventory(findFlightsData, request)

		require.NoError(t, err)
		assert.NotContains(t, variables, "cabin_classes")
	})

	t.Run("matched_service_is_mapped_with_its_display_name", func(t *testing.T) {
		_, flights, err := searchInventory(findFlightsData, request)

		require.NoError(t, err)
		assert.Equal(t, "SK1", flights.Name)
		assert.Equal(t, "TLV", flights.Origin.IATACode)
		assert.Equal(t, "urn:ogc:def:crs:EPSG::4326", flights.Origin.Location.Coordinates.CRS)

		require.Len(t, flights.Flights, 1)
		assert.Equal(t, []dto.Cabin{
			{CabinClass: model.CabinClassEconomy, SeatsCount: 204, AvailableSeatsCount: 151},
			{CabinClass: model.CabinClassBusiness, SeatsCount: 35, AvailableSeatsCount: 16},
			{CabinClass: model.CabinClassFirst, SeatsCount: 32, AvailableSeatsCount: 20},
		}, flights.Flights[0].Cabins)
	})

	t.Run("no_matching_service_is_not_found", func(t *testing.T) {
		_, _, err := searchInventory(`{"service": []}`, request)

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("first_service_wins_when_upstream_returns_more", func(t *testing.T) {
		var payload struct {
			Services []json.RawMessage `json:"service"`
		}

		var single struct {
			Services []json.RawMessage `json:"service"`
		}
		require.NoError(t, json.Unmarshal([]byte(findFlightsData), &single))

		payload.Services = append(single.Services, single.Services[0])
		data, err := json.Marshal(payload)
		require.NoError(t, err)

		_, flights, err := searchInventory(string(data), request)

		require.NoError(t, err)
		assert.Equal(t, "SK1", flights.Name)
	})

	t.Run("inventory_failure_is_propagated", func(t *testing.T) {
		querier := &MockInventoryQuerier{}
		querier.On("Query", mock.Anything, inventory.FindFlightsQuery, mock.Anything).
			Return(nil, inventory.ErrExternalDependency)

		svc := NewFlightService(querier, "SK")

		_, err := svc.FindFlights(context.Background(), request)
		assert.ErrorIs(t, err, inventory.ErrExternalDependency)
	})
}

func TestFlightService_GetFlightDetails(t *testing.T) {
	flightID := uuid.MustParse("eb2e5080-000e-440d-8242-46428e577ce5")

	t.Run("missing_flight_is_not_found", func(t *testing.T) {
		querier := &MockInventoryQuerier{}
		querier.On("Query", mock.Anything, inventory.GetFlightQuery, map[string]interface{}{
			"flight_id": flightID.String(),
		}).Return(json.RawMessage(`{"flight_by_pk": null}`), nil)

		svc := NewFlightService(querier, "SK")

		_, err := svc.GetFlightDetails(context.Background(), flightID)
		assert.ErrorIs(t, err, ErrFlightNotFound)
	})

	t.Run("existing_flight_is_mapped", func(t *testing.T) {
		data := `{
		  "flight_by_pk": {
		    "id": "eb2e5080-000e-440d-8242-46428e577ce5",
		    "departure_terminal": "3",
		    "departure_time": "2019-12-31T23:05:00Z",
		    "arrival_terminal": "B",
		    "arrival_time": "2020-01-01T14:00:00Z",
		    "aircraft_model": {"icao_code": "B789", "iata_code": "789", "name": "Boeing 787-9 Dreamliner"},
		    "available_seats_counts": [
		      {"cabin_class": "E", "total_seats_count": 204, "available_seats_count": 151}
		    ],
		    "service": {
		      "id": 1,
		      "origin_airport": {
		        "iata_code": "TLV", "icao_code": "LLBG", "name": "Ben Gurion Airport",
		        "subdivision_code": "IL-M", "city": "Tel Aviv-Yafo",
		        "geo_location": {
		          "crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:EPSG::4326"}},
		          "coordinates": [32.009444, 34.882778]
		        }
		      },
		      "destination_airport": {
		        "iata_code": "LAX", "icao_code": "KLAX", "name": "Los Angeles International Airport",
		        "subdivision_code": "US-CA", "city": "Los Angeles",
		        "geo_location": {
		          "crs": {"type": "name", "properties": {"name": "urn:ogc:def:crs:EPSG::4326"}},
		          "coordinates": [33.9425, -61.591944]
		        }
		      }
		    }
		  }
		}`

		querier := &MockInventoryQuerier{}
		querier.On("Query", mock.Anything, inventory.GetFlightQuery, mock.Anything).
			Return(json.RawMessage(data), nil)

		svc := NewFlightService(querier, "SK")

		flight, err := svc.GetFlightDetails(context.Background(), flightID)
		require.NoError(t, err)

		assert.Equal(t, flightID, flight.ID)
		assert.Equal(t, "SK1", flight.Name)
		assert.Equal(t, "TLV", flight.Origin.IATACode)
		assert.Equal(t, "LAX", flight.Destination.IATACode)
	})
}

func TestFlightService_GetFlightSeats(t *testing.T) {
	flightID := uuid.MustParse("eb2e5080-000e-440d-8242-46428e577ce5")

	t.Run("missing_flight_is_not_found", func(t *testing.T) {
		querier := &MockInventoryQuerier{}
		querier.On("Query", mock.Anything, inventory.GetFlightSeatsQuery, map[string]interface{}{
			"flight_id": flightID.String(),
		}).Return(json.RawMessage(`{"flight_by_pk": null}`), nil)

		svc := NewFlightService(querier, "SK")

		_, err := svc.GetFlightSeats(context.Background(), flightID)
		assert.ErrorIs(t, err, ErrFlightNotFound)
	})

	t.Run("seat_map_and_booked_seats_are_mapped", func(t *testing.T) {
		data := `{
		  "flight_by_pk": {
		    "id": "eb2e5080-000e-440d-8242-46428e577ce5",
		    "aircraft_model": {
		      "icao_code": "B789", "iata_code": "789", "name": "Boeing 787-9 Dreamliner",
		      "seat_maps": [
		        {"cabin_class": "F", "start_row": 1, "end_row": 8, "column_layout": "A-DG-K"},
		        {"cabin_class": "E", "start_row": 29, "end_row": 30, "column_layout": "###-###-HJK"}
		      ]
		    },
		    "booked_seats": [
		      {"seat_row": 40, "seat_column": "D"},
		      {"seat_row": 40, "seat_column": "F"}
		    ]
		  }
		}`

		querier := &MockInventoryQuerier{}
		querier.On("Query", mock.Anything, inventory.GetFlightSeatsQuery, mock.Anything).
			Return(json.RawMessage(data), nil)

		svc := NewFlightService(querier, "SK")

		seats, err := svc.GetFlightSeats(context.Background(), flightID)
		require.NoError(t, err)

		assert.Equal(t, flightID, seats.FlightID)
		assert.Equal(t, []dto.SeatMapSection{
			{CabinClass: model.CabinClassFirst, StartRow: 1, EndRow: 8, ColumnLayout: "A-DG-K"},
			{CabinClass: model.CabinClassEconomy, StartRow: 29, EndRow: 30, ColumnLayout: "###-###-HJK"},
		}, seats.SeatMap)
		assert.Equal(t, []dto.BookedSeat{
			{Row: 40, Column: "D"},
			{Row: 40, Column: "F"},
		}, seats.BookedSeats)
	})
}

package transport

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/app/model"
	"github.com/skylineair/edge-services/internal/pkg/exception"
)

// pathParam returns a URL parameter with percent escapes resolved.
func pathParam(req *http.Request, name string) string {
	raw := chi.URLParam(req, name)

	value, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return value
}

// decodeFindFlightsRequest binds the flight search path and query
// parameters. Parse failures are collected, not returned one at a time, so
// the validation error lists every offending part of the request.
func decodeFindFlightsRequest(_ context.Context, req *http.Request) (interface{}, error) {
	var causes []exception.ErrorCause

	request := dto.FindFlightsRequest{
		Origin:      pathParam(req, "origin"),
		Destination: pathParam(req, "destination"),
		Passengers:  1,
	}

	departureTime, err := time.Parse(time.RFC3339, pathParam(req, "departureTime"))
	if err != nil {
		causes = append(causes, exception.ErrorCause{
			Cause:   "path/departureTime",
			Message: "value is not a valid RFC 3339 datetime",
		})
	}

	request.DepartureTime = departureTime

	if raw := req.URL.Query().Get("passengers"); raw != "" {
		passengers, err := strconv.Atoi(raw)
		if err != nil {
			causes = append(causes, exception.ErrorCause{
				Cause:   "query/passengers",
				Message: "value is not a valid integer",
			})
		} else {
			request.Passengers = passengers
		}
	}

	for _, raw := range req.URL.Query()["cabin"] {
		cabinClass, ok := model.ParseCabinClass(raw)
		if !ok {
			causes = append(causes, exception.ErrorCause{
				Cause:   "query/cabin",
				Message: "value must be one of 'E', 'B' or 'F'",
			})

			continue
		}

		request.CabinClasses = append(request.CabinClasses, cabinClass)
	}

	if err := request.Validate(causes...); err != nil {
		return nil, err
	}

	return &request, nil
}

// decodeFlightRequest binds the flight ID path parameter of the flight
// detail and flight seats routes.
func decodeFlightRequest(_ context.Context, req *http.Request) (interface{}, error) {
	flightID, err := uuid.Parse(pathParam(req, "flightId"))
	if err != nil {
		return nil, dto.NewValidationError(exception.ErrorCause{
			Cause:   "path/flightId",
			Message: "value is not a valid UUID",
		})
	}

	return &dto.FlightRequest{FlightID: flightID}, nil
}

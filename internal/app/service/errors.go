package service

import (
	"net/http"

	"github.com/skylineair/edge-services/internal/pkg/exception"
)

var ErrServiceNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Err:        "Flights not found",
	Message:    "The flights for the requested origin and destination airports.",
}

var ErrFlightNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Err:        "Flight not found",
	Message:    "Could not find flight with the requested flight ID.",
}

// ErrLoginFailed is returned for an unknown PNR ID and for a name mismatch
// alike. The response never reveals which one it was.
var ErrLoginFailed = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Err:        "Log in failed",
	Message: "Could not authenticate booking for the given PNR ID with the " +
		"given first name and surname.",
}

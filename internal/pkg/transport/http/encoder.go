package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ErrorResponse encodes the error response to the client. Application errors
// carry their own status and body. Anything else, upstream failures
// included, becomes a generic 500 with the root cause logged server side
// only.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")

	var (
		appErr exception.ApplicationError
		body   dto.ErrorDetails
	)

	if errors.As(err, &appErr) {
		respWriter.WriteHeader(appErr.StatusCode)

		body = dto.ErrorDetails{
			Error:   appErr.Err,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	} else {
		slog.ErrorContext(ctx, "request failed with an internal error", slog.Any("error", err))

		respWriter.WriteHeader(http.StatusInternalServerError)

		body = dto.ErrorDetails{
			Error:   "Internal server error",
			Message: "The server has experienced an unrecoverable error.",
		}
	}

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(body)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/skylineair/edge-services/internal/pkg/exception"
)

// DecodeRequestFunc extracts a typed request from an HTTP request.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes a typed response to the HTTP response writer.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// Validator is implemented by request types that validate themselves after
// decoding.
type Validator interface {
	Validate() error
}

// MakeHandlerFunc binds a decode function, an endpoint and an encode
// function into an HTTP handler. Decode, endpoint and encode errors all go
// through the common error encoder.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decode DecodeRequestFunc,
	encode EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decode(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encode(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes a JSON request body into T and validates it when T
// implements Validator. A malformed body is reported as a validation error
// with a body-level cause.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if err := json.NewDecoder(req.Body).Decode(request); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusUnprocessableEntity,
			Err:        "Validation error",
			Message:    "Request has an invalid format.",
			Details: []exception.ErrorCause{
				{Cause: "body", Message: err.Error()},
			},
		}
	}

	if validatable, ok := any(request).(Validator); ok {
		if err := validatable.Validate(); err != nil {
			return nil, err
		}
	}

	return request, nil
}

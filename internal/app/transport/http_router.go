package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/skylineair/edge-services/internal/app/dto"
	"github.com/skylineair/edge-services/internal/app/endpoints"
	httptransport "github.com/skylineair/edge-services/internal/pkg/transport/http"
)

// MakeFlightsHTTPRouter builds the HTTP router of the flights service.
func MakeFlightsHTTPRouter(endpts endpoints.FlightsEndpoint) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Group(func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			httptransport.AccessLog(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/flights/{origin}/{destination}/{departureTime}", httptransport.MakeHandlerFunc(
			endpts.FindFlights,
			decodeFindFlightsRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/flight/{flightId}", httptransport.MakeHandlerFunc(
			endpts.GetFlightDetails,
			decodeFlightRequest,
			httptransport.ResponseWithBody,
		))

		router.Get("/flight/{flightId}/seats", httptransport.MakeHandlerFunc(
			endpts.GetFlightSeats,
			decodeFlightRequest,
			httptransport.ResponseWithBody,
		))
	})

	return router
}

// MakeLoginHTTPRouter builds the HTTP router of the login service.
func MakeLoginHTTPRouter(endpts endpoints.LoginEndpoint) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Group(func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			httptransport.AccessLog(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/login", httptransport.MakeHandlerFunc(
			endpts.Login,
			httptransport.DecodeRequest[dto.LoginRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}

package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/skylineair/edge-services/internal/pkg/logger"
)

type MiddlewareFunc func(http.Handler) http.Handler

func Recoverer(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if err, _ := rvr.(error); errors.Is(err, http.ErrAbortHandler) {
						// we don't recover http.ErrAbortHandler so the response
						// to the client is aborted, this should not be logged
						panic(rvr)
					}

					logger.ErrorContext(req.Context(), "panic occurred", slog.Any("message", rvr), slog.String("stack_trace", string(debug.Stack())))
					respWriter.WriteHeader(http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}

// CORSMiddleware set CORS related headers.
func CORSMiddleware() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Origin", "Content-Type"},
	})
}

// RequestID add request id to context and response header.
func RequestID() MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), logger.RequestIDKey, requestID)
			w.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

const accessLogTimeFormat = "2006-01-02T15:04:05.000000Z"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// AccessLog wraps every request with a structured access log line. It sits
// outside the request/response data path.
func AccessLog(logger *slog.Logger) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			startTime := time.Now().UTC()
			recorder := &statusRecorder{ResponseWriter: respWriter, status: http.StatusOK}

			next.ServeHTTP(recorder, req)

			endTime := time.Now().UTC()
			duration := endTime.Sub(startTime)

			path := req.URL.Path
			if query := req.URL.RawQuery; query != "" {
				path += "?" + query
			}

			host, port, err := net.SplitHostPort(req.RemoteAddr)
			if err != nil {
				host = req.RemoteAddr
			}

			logger.LogAttrs(req.Context(), slog.LevelInfo,
				fmt.Sprintf("%s - %s %s - %d (%dms)",
					host, req.Method, path, recorder.status, duration.Milliseconds()),
				slog.String("type", "access"),
				slog.String("host", host),
				slog.String("port", port),
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("responseCode", recorder.status),
				slog.Int64("duration", duration.Milliseconds()),
				slog.String("startTime", startTime.Format(accessLogTimeFormat)),
				slog.String("endTime", endTime.Format(accessLogTimeFormat)),
				slog.String("httpVersion", req.Proto),
			)
		})
	}
}

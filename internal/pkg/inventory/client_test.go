//go:build unit

package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Query(t *testing.T) {
	variables := map[string]interface{}{
		"origin":      "TLV",
		"destination": "LAX",
	}

	t.Run("returns_the_parsed_data_object", func(t *testing.T) {
		var received queryRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"service":[]}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)

		data, err := client.Query(context.Background(), FindFlightsQuery, variables)
		require.NoError(t, err)

		assert.JSONEq(t, `{"service":[]}`, string(data))
		assert.Equal(t, FindFlightsQuery, received.Query)
		assert.Equal(t, "TLV", received.Variables["origin"])
		assert.Equal(t, "LAX", received.Variables["destination"])
	})

	t.Run("graphql_errors_fail_as_external_dependency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"field not found"},{"message":"syntax error"}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)

		_, err := client.Query(context.Background(), FindFlightsQuery, variables)
		assert.ErrorIs(t, err, ErrExternalDependency)
	})

	t.Run("unexpected_status_fails_as_external_dependency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)

		_, err := client.Query(context.Background(), FindFlightsQuery, variables)
		assert.ErrorIs(t, err, ErrExternalDependency)
	})

	t.Run("transport_failure_fails_as_external_dependency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		client := NewClient(server.URL, time.Second)

		_, err := client.Query(context.Background(), FindFlightsQuery, variables)
		assert.ErrorIs(t, err, ErrExternalDependency)
	})

	t.Run("malformed_response_fails_as_external_dependency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)

		_, err := client.Query(context.Background(), FindFlightsQuery, variables)
		assert.ErrorIs(t, err, ErrExternalDependency)
	})
}

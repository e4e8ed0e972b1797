package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrExternalDependency marks any failure of the inventory manager, whether
// transport level or reported through the GraphQL errors array.
var ErrExternalDependency = errors.New("inventory manager request failed")

// Client sends GraphQL query documents to the inventory manager endpoint.
type Client struct {
	endpointURL string
	httpClient  *http.Client
}

// NewClient builds an inventory client with an explicit request timeout.
func NewClient(endpointURL string, timeout time.Duration) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type queryRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type queryResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []queryError    `json:"errors"`
}

type queryError struct {
	Message string `json:"message"`
}

// Query posts a query document with its variables and returns the parsed
// data object. Every call is logged, with either the response body or the
// failure.
func (c *Client) Query(
	ctx context.Context,
	query string,
	variables map[string]interface{},
) (json.RawMessage, error) {
	requestBody, err := json.Marshal(queryRequest{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpointURL, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		slog.ErrorContext(ctx, "failed to reach the inventory manager",
			slog.String("type", "query"),
			slog.String("error", err.Error()))

		return nil, fmt.Errorf("post query: %w", ErrExternalDependency)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read the inventory manager response",
			slog.String("type", "query"),
			slog.String("error", err.Error()))

		return nil, fmt.Errorf("read query response: %w", ErrExternalDependency)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		slog.ErrorContext(ctx, "inventory manager returned an unexpected status",
			slog.String("type", "query"),
			slog.Int("status_code", response.StatusCode),
			slog.String("response", string(responseBody)))

		return nil, fmt.Errorf("query status %d: %w", response.StatusCode, ErrExternalDependency)
	}

	var parsed queryResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		slog.ErrorContext(ctx, "failed to parse the inventory manager response",
			slog.String("type", "query"),
			slog.String("error", err.Error()))

		return nil, fmt.Errorf("parse query response: %w", ErrExternalDependency)
	}

	if len(parsed.Errors) > 0 {
		messages := make([]string, len(parsed.Errors))
		for i, queryErr := range parsed.Errors {
			messages[i] = queryErr.Message
		}

		slog.ErrorContext(ctx, "inventory manager returned errors",
			slog.String("type", "query"),
			slog.String("errors", strings.Join(messages, "; ")))

		return nil, fmt.Errorf("query errors: %w", ErrExternalDependency)
	}

	slog.InfoContext(ctx, "queried the inventory manager successfully",
		slog.String("type", "query"),
		slog.Any("request", json.RawMessage(requestBody)),
		slog.Any("response", json.RawMessage(responseBody)))

	return parsed.Data, nil
}

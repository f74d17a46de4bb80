// Package client is a small HTTP client for the bdayd JSON API, used by
// the CLI commands that talk to a running server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alfredjeanlab/bdayd/internal/countdown"
)

// Client targets one bdayd server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client targeting the given base URL
// (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// APIError is a non-2xx JSON response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Status is the GET / payload.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CountdownResponse is the GET /v1/countdown payload.
type CountdownResponse struct {
	TargetDate string             `json:"target_date"`
	Timezone   string             `json:"timezone"`
	Countdown  countdown.Snapshot `json:"countdown"`
	IsBirthday bool               `json:"is_birthday"`
}

// TriggerResponse is the POST /trigger-email payload.
type TriggerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Health fetches the server health payload.
func (c *Client) Health(ctx context.Context) (*Status, error) {
	var s Status
	if err := c.doJSON(ctx, http.MethodGet, "/", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Countdown fetches the current countdown.
func (c *Client) Countdown(ctx context.Context) (*CountdownResponse, error) {
	var r CountdownResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/countdown", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// TriggerEmail asks the server to dispatch today's email.
func (c *Client) TriggerEmail(ctx context.Context, apiKey string) (*TriggerResponse, error) {
	var r TriggerResponse
	body := map[string]string{"apiKey": apiKey}
	if err := c.doJSON(ctx, http.MethodPost, "/trigger-email", body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fletnix/fletnix/internal/domain"
	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP client for the catalog API. Operations take an
// optional bearer token; an empty token sends the request
// unauthenticated.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// errorPayload is the structured error body the API returns on failure.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// serverMessage extracts the human-readable message from an error body,
// preferring the error field over the message field.
func serverMessage(body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return ""
}

// doRequest performs one HTTP request against the API. There is no retry:
// every operation here is user-initiated and a failure surfaces
// immediately as an error state in the view.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any, token string) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	c.logger.Debug("api request", "id", requestID, "method", method, "url", reqURL, "authed", token != "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("api response", "id", requestID, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return body, nil
	}

	msg := serverMessage(body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if msg == "" {
			msg = "invalid credentials"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case http.StatusNotFound:
		if msg == "" {
			msg = "not found"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrShowNotFound, msg)
	}

	if msg == "" {
		msg = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}
	c.logger.Error("api request error", "id", requestID, "status", resp.StatusCode, "message", msg)
	return nil, fmt.Errorf("%s", msg)
}

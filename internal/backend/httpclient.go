package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HTTP implements API over the REST endpoints of the design service.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://api.meetyourai.com")
	baseURL string
	// client is the underlying HTTP client. It carries no global timeout;
	// design generation can take minutes, so each call is bounded by its context.
	client *http.Client
}

// newHTTP creates a new HTTP client for the given base URL.
func newHTTP(baseURL string) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// postJSON builds an authenticated JSON POST request. Every request carries a
// generated X-Request-ID so a verbose run can be correlated with server logs.
func (h *HTTP) postJSON(ctx context.Context, path string, payload any, token string) (*http.Response, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, requestID, err
	}
	return resp, requestID, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

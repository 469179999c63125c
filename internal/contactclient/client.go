// Package contactclient submits contact-form payloads the way the site's
// browser form does: validate locally, POST to the API, and fall back to a
// mailto: link when the server cannot deliver the message.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ankitraj/portfolio/internal/contact"
)

// DefaultEndpoint is the submission path relative to the site root.
const DefaultEndpoint = "/api/contact"

// Client posts submissions to the contact endpoint.
type Client struct {
	url  string
	http *http.Client
}

// NewClient targets baseURL (e.g. https://www.ankitraj.cloud).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		url:  strings.TrimRight(baseURL, "/") + DefaultEndpoint,
		http: httpClient,
	}
}

// StatusError is returned when the endpoint does not report success.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("contactclient: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("contactclient: status %d", e.StatusCode)
}

// Send posts sub and returns the server's acknowledgement. Any non-2xx
// status or a body without success=true is an error.
func (c *Client) Send(ctx context.Context, sub contact.Submission) (string, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("contactclient: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("contactclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("contactclient: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("contactclient: read response: %w", err)
	}

	var result contact.Response
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &StatusError{StatusCode: resp.StatusCode, Message: "unexpected response body"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Success {
		return "", &StatusError{StatusCode: resp.StatusCode, Message: result.Error}
	}
	return result.Message, nil
}

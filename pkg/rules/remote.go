package rules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteChecker evaluates the "ajax" rule: an asynchronous, network-backed
// check of a single field value. Unlike every other validator it does not
// run inside the synchronous rule chain; the field controller executes it
// after the synchronous pass completes and applies the result when it
// arrives, discarding stale responses.
//
// Check returns (false, nil) when the server rejected the value and a
// non-nil error for transport or server failures, which the controller
// reports as CodeAjaxError.
type RemoteChecker interface {
	Check(ctx context.Context, endpoint, value string) (bool, error)
}

// HTTPChecker posts the field value to the endpoint as a form-encoded
// "value" parameter and accepts the value when the response body is the
// literal string "true".
type HTTPChecker struct {
	// Client defaults to an http.Client with a 10 second timeout.
	Client *http.Client
}

func (c HTTPChecker) Check(ctx context.Context, endpoint, value string) (bool, error) {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	body := url.Values{"value": {value}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build remote validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("remote validation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("remote validation: unexpected status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false, fmt.Errorf("read remote validation response: %w", err)
	}
	return strings.TrimSpace(string(payload)) == "true", nil
}

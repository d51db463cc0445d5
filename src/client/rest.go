package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// DiscordAPI is the base URL for REST requests.
const DiscordAPI = "https://discord.com/api/v10"

var (
	// ErrForbidden is returned when the bot lacks permission for a request.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidArgument is returned for malformed input caught before any
	// request is made.
	ErrInvalidArgument = errors.New("invalid argument")
)

// APIError is a non-2xx response from the API. It unwraps to ErrForbidden or
// ErrNotFound for the matching statuses so callers can use errors.Is.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord: status %d (code %d): %s", e.Status, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

func (c *Client) apiURL(path string) string {
	if c.apiBase != "" {
		return c.apiBase + path
	}
	return DiscordAPI + path
}

// do performs one authenticated REST request. A nil body sends no payload; a
// nil v discards the response body. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any, v any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL(path), reqBody)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: res.StatusCode}
		_ = json.Unmarshal(resBody, apiErr)
		return apiErr
	}

	if v != nil {
		if err := json.Unmarshal(resBody, v); err != nil {
			return errors.Wrap(err, "decode response body")
		}
	}
	return nil
}

// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

// Package gateway is the sole network boundary to the backend REST API.
// No other package speaks HTTP to the backend. It attaches bearer
// tokens, surfaces authentication failures as a typed sentinel error
// the application shell reacts to, and normalizes malformed collection
// payloads into the empty collection so consumers never re-check the
// response shape.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrUnauthenticated is returned for any 401 response, regardless of
// which operation produced it. The shell clears the session and
// redirects; the transport itself carries no navigation concerns.
var ErrUnauthenticated = errors.New("gateway: unauthenticated")

// APIError is a non-2xx backend response other than 401.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: backend returned %d: %s", e.StatusCode, e.Message)
}

// Client is a typed client for the backend REST API. Operations make a
// single attempt each; there is no retry and no caching.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Client for the backend at baseURL (no trailing slash).
// The transport default timeout applies; no explicit timeout is set.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{},
	}
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpc: httpc}
}

// do performs one request. A non-empty token is attached as a bearer
// credential. The response body, if any, is returned raw for the caller
// to decode.
func (c *Client) do(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	return data, nil
}

// errorMessage extracts a human-readable message from an error body.
// The backend answers with either {"error": "..."} or {"message": "..."}.
func errorMessage(data []byte, statusCode int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(statusCode)
}

// decodeList unmarshals a JSON array, treating a malformed or
// wrong-shaped payload as the empty collection. The backend's shape is
// not trusted; normalizing here once replaces scattered shape checks in
// every consumer.
func decodeList[T any](data []byte) []T {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// decodeObject unmarshals a JSON object into out. A malformed payload
// leaves out at its zero value and is not an error.
func decodeObject(data []byte, out any) {
	_ = json.Unmarshal(data, out)
}

// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package apierr defines the closed set of error types produced by the
// Databricks client. Every operation fails with exactly one of these kinds:
// configuration problems before any I/O, transport failures during the HTTP
// exchange, error responses from the API itself, or encode/decode failures.
//
// None of these are retried by the client; callers decide what to do with
// the propagated error. All types support errors.As, and TransportError and
// DecodeError unwrap their underlying cause.
package apierr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError reports a required configuration value that is missing or
// empty. It is raised before any network activity.
type ConfigError struct {
	// Name is the environment variable (or setting) that was missing.
	Name string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s must be set in the environment", e.Name)
}

// TransportError reports a network-level failure (DNS, connect, timeout)
// while attempting the HTTP exchange. The server was never reached, or the
// exchange broke before a status could be read.
type TransportError struct {
	// Op identifies the attempted request, e.g. "POST api/2.0/sql/statements".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a non-2xx response from the Databricks API. It carries
// the HTTP status and, when the server provided one, the structured error
// code and message from the response body.
type APIError struct {
	StatusCode int
	// ErrorCode is the machine-readable code from the error body, e.g.
	// "PERMISSION_DENIED" or "INVALID_PARAMETER_VALUE". "UNKNOWN" when the
	// body carried none.
	ErrorCode string
	Message   string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" && e.ErrorCode != codeUnknown {
		return fmt.Sprintf("databricks api error (HTTP %d, %s): %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("databricks api error (HTTP %d): %s", e.StatusCode, e.Message)
}

// IsAuth reports whether the error indicates bad or insufficient credentials.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// DecodeError reports that a request body could not be encoded or a response
// body could not be decoded into the expected shape.
type DecodeError struct {
	// What names the structure that failed to encode or decode.
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ErrorResponse mirrors the JSON body the API returns for error statuses.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

const codeUnknown = "UNKNOWN"

// FromResponse builds an APIError from a non-2xx status and its raw body.
// Bodies that do not parse as the standard error shape are reported with an
// UNKNOWN code and the status text, never dropped.
func FromResponse(statusCode int, body []byte) *APIError {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Message == "" && er.ErrorCode == "" {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(statusCode)
		}
		return &APIError{StatusCode: statusCode, ErrorCode: codeUnknown, Message: msg}
	}
	if er.ErrorCode == "" {
		er.ErrorCode = codeUnknown
	}
	return &APIError{StatusCode: statusCode, ErrorCode: er.ErrorCode, Message: er.Message}
}

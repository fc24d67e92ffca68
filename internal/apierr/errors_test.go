// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package apierr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "structured permission denied",
			statusCode: 403,
			body:       `{"error_code":"PERMISSION_DENIED","message":"user does not own warehouse abc123"}`,
			wantCode:   "PERMISSION_DENIED",
			wantMsg:    "user does not own warehouse abc123",
		},
		{
			name:       "structured bad request",
			statusCode: 400,
			body:       `{"error_code":"INVALID_PARAMETER_VALUE","message":"warehouse_id is required"}`,
			wantCode:   "INVALID_PARAMETER_VALUE",
			wantMsg:    "warehouse_id is required",
		},
		{
			name:       "plain text body",
			statusCode: 502,
			body:       "upstream connect error",
			wantCode:   "UNKNOWN",
			wantMsg:    "upstream connect error",
		},
		{
			name:       "empty body falls back to status text",
			statusCode: 503,
			body:       "",
			wantCode:   "UNKNOWN",
			wantMsg:    "Service Unavailable",
		},
		{
			name:       "message without code",
			statusCode: 429,
			body:       `{"message":"too many requests"}`,
			wantCode:   "UNKNOWN",
			wantMsg:    "too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromResponse(tt.statusCode, []byte(tt.body))
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if apiErr.ErrorCode != tt.wantCode {
				t.Errorf("ErrorCode = %q, want %q", apiErr.ErrorCode, tt.wantCode)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestAPIErrorIsAuth(t *testing.T) {
	if !(&APIError{StatusCode: 401}).IsAuth() {
		t.Error("401 should be an auth error")
	}
	if !(&APIError{StatusCode: 403}).IsAuth() {
		t.Error("403 should be an auth error")
	}
	if (&APIError{StatusCode: 404}).IsAuth() {
		t.Error("404 should not be an auth error")
	}
}

func TestErrorsAsAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	var err error = fmt.Errorf("request failed: %w", &TransportError{Op: "GET api/2.0/clusters/get", Err: cause})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatal("errors.As should find TransportError through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the underlying cause")
	}

	de := &DecodeError{What: "databricks.StatementResponse", Err: errors.New("unexpected end of JSON input")}
	if !strings.Contains(de.Error(), "StatementResponse") {
		t.Errorf("DecodeError message should name the structure, got %q", de.Error())
	}
	if de.Unwrap() == nil {
		t.Error("DecodeError should unwrap its cause")
	}
}

func TestConfigErrorMessage(t *testing.T) {
	e := &ConfigError{Name: "DATABRICKS_HOST"}
	want := "DATABRICKS_HOST must be set in the environment"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

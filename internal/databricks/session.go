// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package databricks implements a typed client for the Databricks REST API:
// SQL statement execution, cluster inspection and job runs. A Session wraps
// one reusable HTTP client together with the workspace host and token; every
// operation is a single authenticated request/response exchange with no
// retries and no client-side polling. Failures surface as the typed errors
// in internal/apierr.
package databricks

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brickctl/cli/internal/apierr"
	"brickctl/cli/internal/config"
)

const (
	// defaultTimeout bounds every request end to end. The server-side
	// wait_timeout on statement execution tops out at 50s, so leave room
	// above it.
	defaultTimeout = 60 * time.Second

	// maxIdleConnsPerHost keeps a modest warm pool; all requests from one
	// session go to a single host.
	maxIdleConnsPerHost = 12
)

// Session issues authenticated requests against one Databricks workspace.
// It holds the configuration and a shared HTTP client, both safe for
// concurrent use; construct it once and reuse it for many calls.
type Session struct {
	host   string
	token  string
	client *http.Client
}

// New creates a Session with a default HTTP client: 60s overall timeout and
// a small idle connection pool for the workspace host.
func New(cfg config.Config) *Session {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost

	return NewWithClient(cfg, &http.Client{
		Timeout:   defaultTimeout,
		Transport: transport,
	})
}

// NewInsecure creates a Session whose client skips TLS certificate
// verification. Only for development workspaces behind self-signed
// certificates.
func NewInsecure(cfg config.Config) *Session {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	return NewWithClient(cfg, &http.Client{
		Timeout:   defaultTimeout,
		Transport: transport,
	})
}

// NewWithClient creates a Session around a caller-supplied HTTP client.
// Tests and callers with special transport needs use this.
func NewWithClient(cfg config.Config, client *http.Client) *Session {
	if client == nil {
		client = http.DefaultClient
	}
	return &Session{
		host:   strings.TrimRight(cfg.Host, "/"),
		token:  cfg.Token,
		client: client,
	}
}

// do runs the one request shape every operation shares: build the
// authenticated request, send it, and map status and body onto either the
// decoded value in out or a typed error. body and out may be nil.
func (s *Session) do(ctx context.Context, method, endpoint string, body, out any) error {
	op := method + " " + endpoint

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &apierr.DecodeError{What: fmt.Sprintf("%T", body), Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.host+"/"+endpoint, reqBody)
	if err != nil {
		return &apierr.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &apierr.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apierr.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apierr.FromResponse(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &apierr.DecodeError{What: fmt.Sprintf("%T", out), Err: err}
	}
	return nil
}

// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package databricks

import (
	"context"
	"fmt"
	"net/url"
)

// ExecuteStatement submits a SQL statement to a warehouse and returns the
// server's initial response, which carries the statement id for later status
// and chunk calls. The wait_timeout in the request is honored by the server,
// not by the client; a statement that outlives it comes back PENDING or
// RUNNING and the caller decides when to check again.
func (s *Session) ExecuteStatement(ctx context.Context, req StatementRequest) (*StatementResponse, error) {
	var resp StatementResponse
	if err := s.do(ctx, "POST", "api/2.0/sql/statements", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatement fetches the current view of a statement execution by id.
// One call, one answer; repeat as needed to observe progress.
func (s *Session) GetStatement(ctx context.Context, statementID string) (*StatementResponse, error) {
	var resp StatementResponse
	endpoint := "api/2.0/sql/statements/" + url.PathEscape(statementID)
	if err := s.do(ctx, "GET", endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStatementResultChunk retrieves one chunk of a statement's result set by
// index, as listed in the response manifest.
func (s *Session) GetStatementResultChunk(ctx context.Context, statementID string, chunkIndex int) (*ResultData, error) {
	var resp ResultData
	endpoint := fmt.Sprintf("api/2.0/sql/statements/%s/result/chunks/%d",
		url.PathEscape(statementID), chunkIndex)
	if err := s.do(ctx, "GET", endpoint, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

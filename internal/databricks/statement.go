// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package databricks

import "time"

// Disposition selects how statement results are returned.
type Disposition string

const (
	DispositionInline        Disposition = "INLINE"
	DispositionExternalLinks Disposition = "EXTERNAL_LINKS"
)

// Format selects the result serialization format.
type Format string

const (
	FormatJSONArray   Format = "JSON_ARRAY"
	FormatArrowStream Format = "ARROW_STREAM"
	FormatCSV         Format = "CSV"
)

// TimeoutAction tells the server what to do when wait_timeout elapses
// before the statement finishes.
type TimeoutAction string

const (
	TimeoutActionContinue TimeoutAction = "CONTINUE"
	TimeoutActionCancel   TimeoutAction = "CANCEL"
)

// StatementState is the execution state reported by the server. Values
// outside the known set are carried through untouched so a newer API does
// not break decoding.
type StatementState string

const (
	StatePending   StatementState = "PENDING"
	StateRunning   StatementState = "RUNNING"
	StateSucceeded StatementState = "SUCCEEDED"
	StateFailed    StatementState = "FAILED"
	StateCanceled  StatementState = "CANCELED"
	StateClosed    StatementState = "CLOSED"
)

// IsTerminal reports whether the statement has reached a final state and
// will not change on further status calls.
func (s StatementState) IsTerminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCanceled, StateClosed:
		return true
	}
	return false
}

// StatementRequest is the body of POST api/2.0/sql/statements. Only
// Statement and WarehouseID are required; everything else is passed through
// to the server verbatim, including the wait timeout, which the client never
// acts on itself.
type StatementRequest struct {
	Statement     string               `json:"statement"`
	WarehouseID   string               `json:"warehouse_id"`
	Catalog       string               `json:"catalog,omitempty"`
	Schema        string               `json:"schema,omitempty"`
	Parameters    []StatementParameter `json:"parameters,omitempty"`
	RowLimit      *int64               `json:"row_limit,omitempty"`
	ByteLimit     *int64               `json:"byte_limit,omitempty"`
	Disposition   Disposition          `json:"disposition,omitempty"`
	Format        Format               `json:"format,omitempty"`
	WaitTimeout   string               `json:"wait_timeout,omitempty"`
	OnWaitTimeout TimeoutAction        `json:"on_wait_timeout,omitempty"`
}

// StatementParameter is a named parameter bound into the statement text.
type StatementParameter struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
	Type  string  `json:"type,omitempty"`
}

// StatementResponse is the full view of a statement execution. The status
// endpoint returns the same shape with whatever subset the server has.
type StatementResponse struct {
	StatementID string           `json:"statement_id,omitempty"`
	Status      *StatementStatus `json:"status,omitempty"`
	Manifest    *ResultManifest  `json:"manifest,omitempty"`
	Result      *ResultData      `json:"result,omitempty"`
}

// StatementStatus holds the execution state and, for failed statements, the
// server's error detail.
type StatementStatus struct {
	State StatementState  `json:"state"`
	Error *StatementError `json:"error,omitempty"`
}

// StatementError is the error detail attached to a failed statement.
type StatementError struct {
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ResultManifest describes the shape and size of the result set.
type ResultManifest struct {
	Format          Format          `json:"format,omitempty"`
	Schema          *ResultSchema   `json:"schema,omitempty"`
	Chunks          []ChunkMetadata `json:"chunks,omitempty"`
	TotalChunkCount int             `json:"total_chunk_count,omitempty"`
	TotalRowCount   int64           `json:"total_row_count,omitempty"`
	TotalByteCount  *int64          `json:"total_byte_count,omitempty"` // absent for INLINE disposition
	Truncated       bool            `json:"truncated,omitempty"`
}

// ResultSchema is the ordered column description of the result set.
type ResultSchema struct {
	Columns []ColumnInfo `json:"columns,omitempty"`
}

// ColumnInfo describes one result column.
type ColumnInfo struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name,omitempty"`
	Position int    `json:"position,omitempty"`
}

// ChunkMetadata locates one chunk within the overall result set.
type ChunkMetadata struct {
	ChunkIndex            int    `json:"chunk_index"`
	RowOffset             int64  `json:"row_offset"`
	RowCount              int64  `json:"row_count"`
	ByteCount             *int64 `json:"byte_count,omitempty"` // absent for INLINE disposition
	NextChunkIndex        *int   `json:"next_chunk_index,omitempty"`
	NextChunkInternalLink string `json:"next_chunk_internal_link,omitempty"`
}

// ResultData carries the returned rows. Exactly one of DataArray (INLINE
// with JSON_ARRAY format) and ExternalLinks (EXTERNAL_LINKS disposition) is
// populated; cells are nullable.
type ResultData struct {
	DataArray     [][]*string    `json:"data_array,omitempty"`
	ExternalLinks []ExternalLink `json:"external_links,omitempty"`
}

// ExternalLink points at one presigned chunk of result data.
type ExternalLink struct {
	ChunkIndex            int        `json:"chunk_index"`
	RowOffset             int64      `json:"row_offset"`
	RowCount              int64      `json:"row_count"`
	ByteCount             int64      `json:"byte_count"`
	NextChunkIndex        *int       `json:"next_chunk_index,omitempty"`
	NextChunkInternalLink string     `json:"next_chunk_internal_link,omitempty"`
	ExternalLink          string     `json:"external_link"`
	Expiration            *time.Time `json:"expiration,omitempty"`
}

// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package databricks

import (
	"encoding/json"
	"testing"
)

func TestStatementRequestOmitsAbsentFields(t *testing.T) {
	req := StatementRequest{
		Statement:   "SELECT * FROM range(10)",
		WarehouseID: "abc123",
	}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(fields) != 2 {
		t.Errorf("serialized fields = %v, want only statement and warehouse_id", fields)
	}
	if _, ok := fields["statement"]; !ok {
		t.Error("statement missing from body")
	}
	if _, ok := fields["warehouse_id"]; !ok {
		t.Error("warehouse_id missing from body")
	}
}

func TestStatementRequestFullSerialization(t *testing.T) {
	value := "42"
	rowLimit := int64(100)
	req := StatementRequest{
		Statement:     "SELECT * FROM t WHERE id = :id",
		WarehouseID:   "abc123",
		Catalog:       "main",
		Schema:        "default",
		Parameters:    []StatementParameter{{Name: "id", Value: &value, Type: "INT"}},
		RowLimit:      &rowLimit,
		Disposition:   DispositionInline,
		Format:        FormatJSONArray,
		WaitTimeout:   "10s",
		OnWaitTimeout: TimeoutActionContinue,
	}
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if fields["catalog"] != "main" || fields["schema"] != "default" {
		t.Errorf("catalog/schema = %v/%v", fields["catalog"], fields["schema"])
	}
	if fields["disposition"] != "INLINE" || fields["format"] != "JSON_ARRAY" {
		t.Errorf("disposition/format = %v/%v", fields["disposition"], fields["format"])
	}
	if fields["on_wait_timeout"] != "CONTINUE" {
		t.Errorf("on_wait_timeout = %v", fields["on_wait_timeout"])
	}
	if fields["row_limit"] != float64(100) {
		t.Errorf("row_limit = %v", fields["row_limit"])
	}
	if _, ok := fields["byte_limit"]; ok {
		t.Error("unset byte_limit must not be serialized")
	}
	params, ok := fields["parameters"].([]any)
	if !ok || len(params) != 1 {
		t.Fatalf("parameters = %v", fields["parameters"])
	}
	p := params[0].(map[string]any)
	if p["name"] != "id" || p["value"] != "42" || p["type"] != "INT" {
		t.Errorf("parameter = %v", p)
	}
}

func TestStatementResponseOptionalFieldsStayAbsent(t *testing.T) {
	// A response that omits optional fields decodes with those fields
	// absent; nothing is synthesized.
	var resp StatementResponse
	if err := json.Unmarshal([]byte(`{"statement_id":"s1"}`), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.StatementID != "s1" {
		t.Errorf("StatementID = %q", resp.StatementID)
	}
	if resp.Status != nil || resp.Manifest != nil || resp.Result != nil {
		t.Errorf("optional fields synthesized: %+v", resp)
	}
}

func TestStatementResponseIgnoresUnknownFields(t *testing.T) {
	var resp StatementResponse
	body := `{"statement_id":"s1","status":{"state":"CLOSED","future_field":true},"brand_new_top_level":{}}`
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unknown fields must not break decoding: %v", err)
	}
	if resp.Status.State != StateClosed {
		t.Errorf("State = %q, want CLOSED", resp.Status.State)
	}
}

func TestStatementStateUnknownValueCarriedThrough(t *testing.T) {
	var status StatementStatus
	if err := json.Unmarshal([]byte(`{"state":"QUEUED_V2"}`), &status); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if status.State != StatementState("QUEUED_V2") {
		t.Errorf("State = %q, want the unknown value preserved", status.State)
	}
	if status.State.IsTerminal() {
		t.Error("unknown states must not be treated as terminal")
	}
}

func TestExternalLinkExpirationParsing(t *testing.T) {
	var link ExternalLink
	body := `{"chunk_index":0,"row_offset":0,"row_count":5,"byte_count":512,
		"external_link":"https://signed.example/chunk0","expiration":"2026-08-28T10:00:00Z"}`
	if err := json.Unmarshal([]byte(body), &link); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if link.Expiration == nil || link.Expiration.Hour() != 10 {
		t.Errorf("Expiration = %v", link.Expiration)
	}

	var bare ExternalLink
	if err := json.Unmarshal([]byte(`{"chunk_index":1,"external_link":"https://x"}`), &bare); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if bare.Expiration != nil {
		t.Error("absent expiration must stay nil")
	}
}

// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It masks credentials before anything is shown to the user or written to a
// terminal scrollback: Databricks personal access tokens, bearer headers and
// token-like query parameters must never survive into output verbatim.
package logging

import (
	"regexp"
	"strings"
)

var (
	reBearer = regexp.MustCompile(`(?i)(bearer\s+)([A-Za-z0-9._-]+)`)
	reToken  = regexp.MustCompile(`(?i)(token=)([^\s&;]+)`)
	rePAT    = regexp.MustCompile(`\bdapi[0-9a-f]{8,}\b`) // Databricks personal access token
	reAPIKey = regexp.MustCompile(`(?i)(apikey=|api_key=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = reBearer.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = rePAT.ReplaceAllString(out, "dapi***")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	// Env-like pairs KEY=VALUE; mask the values of known secret keys
	for _, k := range []string{"DATABRICKS_TOKEN", "ACCESS_TOKEN"} {
		if i := strings.Index(out, k+"="); i >= 0 {
			rest := out[i+len(k)+1:]
			if j := strings.IndexAny(rest, " \t\n;"); j >= 0 {
				out = out[:i+len(k)+1] + "***" + rest[j:]
			} else {
				out = out[:i+len(k)+1] + "***"
			}
		}
	}
	return out
}

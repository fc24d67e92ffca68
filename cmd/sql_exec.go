// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"brickctl/cli/internal/databricks"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	execWarehouseID   string
	execCatalog       string
	execSchema        string
	execFormat        string
	execDisposition   string
	execWaitTimeout   string
	execOnWaitTimeout string
	execRowLimit      int64
	execByteLimit     int64
	execParams        []string
)

// sqlExecCmd submits one SQL statement to a warehouse and renders the
// server's answer. The wait timeout is the server's: when the statement is
// still running after it elapses, the command prints the statement id so the
// user can check on it with `brickctl sql status`.
var sqlExecCmd = &cobra.Command{
	Use:   "exec <statement>",
	Short: "Execute a SQL statement on a warehouse",
	Long: `The exec command submits a single SQL statement to a Databricks SQL warehouse
and prints the response. The request waits server-side for up to --wait-timeout;
statements that take longer keep running and can be checked later with
'brickctl sql status <statement-id>'.

Named parameters are bound with repeatable --param name=value flags and
referenced as :name inside the statement text.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		req := databricks.StatementRequest{
			Statement:     args[0],
			WarehouseID:   execWarehouseID,
			Catalog:       execCatalog,
			Schema:        execSchema,
			Disposition:   databricks.Disposition(execDisposition),
			Format:        databricks.Format(execFormat),
			WaitTimeout:   execWaitTimeout,
			OnWaitTimeout: databricks.TimeoutAction(execOnWaitTimeout),
		}
		if execRowLimit > 0 {
			req.RowLimit = &execRowLimit
		}
		if execByteLimit > 0 {
			req.ByteLimit = &execByteLimit
		}
		params, err := parseStatementParams(execParams)
		if err != nil {
			return err
		}
		req.Parameters = params

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stderr, "Executing statement...", spinnerFrames, 100*time.Millisecond)
		resp, err := session.ExecuteStatement(cmd.Context(), req)
		stopSpinner()
		cursor.Show()
		if err != nil {
			return err
		}

		renderStatement(resp)
		return nil
	},
}

// parseStatementParams turns repeated name=value flags into typed parameters.
func parseStatementParams(raw []string) ([]databricks.StatementParameter, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	params := make([]databricks.StatementParameter, 0, len(raw))
	for _, p := range raw {
		name, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=value", p)
		}
		v := value
		params = append(params, databricks.StatementParameter{
			Name:  strings.TrimSpace(name),
			Value: &v,
		})
	}
	return params, nil
}

// renderStatement prints the statement id, state and any inline results.
func renderStatement(resp *databricks.StatementResponse) {
	pterm.Printf("Statement ID: %s\n", resp.StatementID)

	if resp.Status != nil {
		printState(resp.Status)
	}

	if resp.Manifest != nil {
		pterm.Printf("Rows: %d", resp.Manifest.TotalRowCount)
		if resp.Manifest.Truncated {
			pterm.Print("  (truncated)")
		}
		pterm.Println()
	}

	if resp.Result != nil && len(resp.Result.DataArray) > 0 {
		renderInlineRows(resp.Manifest, resp.Result)
	}
	if resp.Result != nil && len(resp.Result.ExternalLinks) > 0 {
		pterm.Println("External result links:")
		for _, link := range resp.Result.ExternalLinks {
			pterm.Printf("  chunk %d (%d rows): %s\n", link.ChunkIndex, link.RowCount, link.ExternalLink)
		}
	}
	if resp.Manifest != nil && resp.Manifest.TotalChunkCount > 1 {
		pterm.Println()
		pterm.Printf("Result has %d chunks; fetch the rest with: brickctl sql chunk %s <index>\n",
			resp.Manifest.TotalChunkCount, resp.StatementID)
	}
}

// printState shows the execution state, colored by outcome, with the server's
// error detail for failed statements.
func printState(status *databricks.StatementStatus) {
	switch {
	case status.State == databricks.StateSucceeded:
		pterm.Printf("State: %s\n", pterm.Green(string(status.State)))
	case status.State == databricks.StateFailed || status.State == databricks.StateCanceled:
		pterm.Printf("State: %s\n", pterm.Red(string(status.State)))
	default:
		pterm.Printf("State: %s\n", pterm.Yellow(string(status.State)))
	}
	if status.Error != nil {
		if status.Error.ErrorCode != "" {
			pterm.Printf("Error: [%s] %s\n", status.Error.ErrorCode, status.Error.Message)
		} else {
			pterm.Printf("Error: %s\n", status.Error.Message)
		}
	}
}

// renderInlineRows prints inline JSON_ARRAY rows as a table, with a header
// row when the manifest carries a schema.
func renderInlineRows(manifest *databricks.ResultManifest, result *databricks.ResultData) {
	data := pterm.TableData{}
	hasHeader := false
	if manifest != nil && manifest.Schema != nil && len(manifest.Schema.Columns) > 0 {
		header := make([]string, len(manifest.Schema.Columns))
		for i, col := range manifest.Schema.Columns {
			header[i] = col.Name
		}
		data = append(data, header)
		hasHeader = true
	}
	for _, row := range result.DataArray {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell == nil {
				cells[i] = "NULL"
			} else {
				cells[i] = *cell
			}
		}
		data = append(data, cells)
	}
	table := pterm.DefaultTable.WithData(data)
	if hasHeader {
		table = table.WithHasHeader()
	}
	_ = table.Render()
}

func init() {
	sqlCmd.AddCommand(sqlExecCmd)

	sqlExecCmd.Flags().StringVarP(&execWarehouseID, "warehouse-id", "w", "", "ID of the SQL warehouse to run on (required)")
	sqlExecCmd.Flags().StringVar(&execCatalog, "catalog", "", "Catalog for the statement context")
	sqlExecCmd.Flags().StringVar(&execSchema, "schema", "", "Schema for the statement context")
	sqlExecCmd.Flags().StringVar(&execFormat, "format", string(databricks.FormatJSONArray), "Result format: JSON_ARRAY, ARROW_STREAM or CSV")
	sqlExecCmd.Flags().StringVar(&execDisposition, "disposition", string(databricks.DispositionInline), "Result disposition: INLINE or EXTERNAL_LINKS")
	sqlExecCmd.Flags().StringVar(&execWaitTimeout, "wait-timeout", "10s", "How long the server waits for the statement before answering")
	sqlExecCmd.Flags().StringVar(&execOnWaitTimeout, "on-wait-timeout", string(databricks.TimeoutActionContinue), "What the server does on wait timeout: CONTINUE or CANCEL")
	sqlExecCmd.Flags().Int64Var(&execRowLimit, "row-limit", 0, "Maximum number of result rows")
	sqlExecCmd.Flags().Int64Var(&execByteLimit, "byte-limit", 0, "Maximum number of result bytes")
	sqlExecCmd.Flags().StringArrayVar(&execParams, "param", nil, "Named statement parameter as name=value (repeatable)")

	_ = sqlExecCmd.MarkFlagRequired("warehouse-id")
}

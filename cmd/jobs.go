// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"brickctl/cli/internal/databricks"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	jobsRunIdempotencyToken string
	jobsRunQueue            bool
	jobsRunNotebookParams   []string
	jobsRunJobParams        []string
)

// jobsCmd groups job-related subcommands.
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Trigger runs of existing jobs",
}

// jobsRunCmd triggers one run of a job. The command returns as soon as the
// server accepted the run; it does not wait for the run to finish.
var jobsRunCmd = &cobra.Command{
	Use:   "run <job-id>",
	Short: "Trigger a run of an existing job",
	Long: `The run command triggers one run of an existing Databricks job and prints
the run id. Pass --idempotency-token to make retried invocations safe: the
server returns the already-launched run instead of starting a second one.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		jobID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}

		session, err := newSession()
		if err != nil {
			return err
		}

		req := databricks.JobRunRequest{
			JobID:            jobID,
			IdempotencyToken: jobsRunIdempotencyToken,
		}
		if jobsRunQueue {
			req.Queue = &databricks.QueueSettings{Enabled: true}
		}
		if req.NotebookParams, err = parseKeyValuePairs(jobsRunNotebookParams, "--notebook-param"); err != nil {
			return err
		}
		if req.JobParameters, err = parseKeyValuePairs(jobsRunJobParams, "--job-param"); err != nil {
			return err
		}

		resp, err := session.RunJobNow(cmd.Context(), req)
		if err != nil {
			return err
		}

		pterm.Printf("Run ID: %d\n", resp.RunID)
		if resp.NumberInJob != nil {
			pterm.Printf("Number in job: %d\n", *resp.NumberInJob)
		}
		return nil
	},
}

// parseKeyValuePairs turns repeated key=value flags into a map.
func parseKeyValuePairs(raw []string, flag string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid %s %q, expected key=value", flag, p)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsRunCmd)

	jobsRunCmd.Flags().StringVar(&jobsRunIdempotencyToken, "idempotency-token", "", "Token making retried run requests idempotent")
	jobsRunCmd.Flags().BoolVar(&jobsRunQueue, "queue", false, "Queue the run when the job is already at capacity")
	jobsRunCmd.Flags().StringArrayVar(&jobsRunNotebookParams, "notebook-param", nil, "Notebook parameter as key=value (repeatable)")
	jobsRunCmd.Flags().StringArrayVar(&jobsRunJobParams, "job-param", nil, "Job parameter as key=value (repeatable)")
}

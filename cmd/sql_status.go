// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// sqlStatusCmd checks on a statement by id. One call per invocation; the
// user repeats it as needed, the CLI never polls.
var sqlStatusCmd = &cobra.Command{
	Use:   "status <statement-id>",
	Short: "Show the current status of a SQL statement",
	Long: `The status command fetches the current view of a statement previously
submitted with 'brickctl sql exec'. A statement that reached a terminal state
(SUCCEEDED, FAILED, CANCELED, CLOSED) will not change on further calls.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		resp, err := session.GetStatement(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		renderStatement(resp)
		return nil
	},
}

func init() {
	sqlCmd.AddCommand(sqlStatusCmd)
}

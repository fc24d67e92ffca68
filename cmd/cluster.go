// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// clusterCmd fetches and prints the current snapshot of one cluster.
var clusterCmd = &cobra.Command{
	Use:   "cluster <cluster-id>",
	Short: "Show information about a cluster",
	Long: `The cluster command fetches the current snapshot of a Databricks cluster
and prints its identity, configuration and runtime state.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}

		cursor.Hide()
		stopSpinner := startInlineSpinner(os.Stderr, "Fetching cluster info...", spinnerFrames, 100*time.Millisecond)
		info, err := session.GetCluster(cmd.Context(), args[0])
		stopSpinner()
		cursor.Show()
		if err != nil {
			return err
		}

		pterm.Print(info.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clusterCmd)
}

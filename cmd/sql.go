// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// sqlCmd groups the SQL statement subcommands (exec, status, chunk).
var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Run SQL statements on a warehouse and inspect their results",
}

func init() {
	rootCmd.AddCommand(sqlCmd)
}

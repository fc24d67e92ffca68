// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"brickctl/cli/internal/config"
	"brickctl/cli/internal/keychain"

	"github.com/spf13/cobra"
)

// logoutCmd removes the saved workspace host and access token. Removal is
// best-effort: a missing keychain entry or config file is not an error.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved workspace host and access token",
	Long: `The logout command clears the credentials saved by 'brickctl login':
the access token from the OS keychain and the workspace host from the config
directory. Environment variables are left untouched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearToken()
		}
		_ = config.ClearHost()

		fmt.Println("✅ Saved workspace credentials have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"brickctl/cli/internal/config"
	"brickctl/cli/internal/keychain"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginHost  string
	loginToken string
)

// loginCmd saves the workspace host and personal access token locally: the
// host in the config dir, the token in the OS keychain. The environment
// variables DATABRICKS_HOST and DATABRICKS_TOKEN always take precedence over
// what login stored.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save workspace host and access token for later commands",
	Long: `The login command stores the Databricks workspace URL and a personal access
token so other commands work without environment variables. The host goes to
the config directory; the token only ever goes to the OS keychain.

Generate a personal access token in the workspace under
User Settings > Developer > Access tokens.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		host := strings.TrimSpace(loginHost)
		if host == "" {
			var err error
			host, err = pterm.DefaultInteractiveTextInput.
				WithDefaultText("Workspace URL (https://...)").
				Show()
			if err != nil {
				return err
			}
		}

		token := strings.TrimSpace(loginToken)
		if token == "" {
			var err error
			token, err = pterm.DefaultInteractiveTextInput.
				WithDefaultText("Personal access token").
				WithMask("*").
				Show()
			if err != nil {
				return err
			}
			token = strings.TrimSpace(token)
		}

		if err := config.SaveHost(host); err != nil {
			return err
		}

		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system")
			pterm.Println("   Set DATABRICKS_TOKEN in the environment instead")
			return err
		}
		if err := km.SaveToken(token); err != nil {
			return err
		}

		pterm.Println("✅ Workspace credentials saved")
		pterm.Printf("   Host: %s\n", strings.TrimRight(host, "/"))
		pterm.Println("   Token stored in the OS keychain")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginHost, "host", "", "Workspace URL, e.g. https://adb-123.4.azuredatabricks.net")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Personal access token (prompted when omitted)")
}

// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the brickctl application.
// It implements subcommands for SQL statement execution, cluster inspection,
// job runs and credential management using the Cobra CLI framework, with a
// terminal UI built on pterm. Every subcommand performs a single API exchange;
// nothing polls or retries on the user's behalf.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"brickctl/cli/internal/apierr"
	"brickctl/cli/internal/config"
	"brickctl/cli/internal/databricks"
	"brickctl/cli/internal/httperrors"
	"brickctl/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	insecureTLS bool
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the brickctl application.
var rootCmd = &cobra.Command{
	Use:           "brickctl",
	Short:         "brickctl is a CLI for the Databricks REST API",
	Long:          `brickctl is a command-line tool for Databricks workspaces: run SQL statements on a warehouse, check statement status, fetch result chunks, inspect clusters and trigger job runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("brickctl %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command, presents the failure to the user and exits
// non-zero on any error. Transport failures get connectivity guidance;
// everything else is printed with credentials masked.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var trErr *apierr.TransportError
		if errors.As(err, &trErr) {
			_ = httperrors.FormatNetworkError(trErr.Unwrap(), "talking to the workspace")
		}
		fmt.Fprintln(os.Stderr, logging.PresentError("brickctl", err))
		os.Exit(1)
	}
}

// newSession resolves the configuration and builds a session for one command
// invocation. The session reuses a single HTTP client for every call the
// command makes.
func newSession() (*databricks.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if insecureTLS {
		return databricks.NewInsecure(cfg), nil
	}
	return databricks.New(cfg), nil
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().BoolVar(&insecureTLS, "insecure", false, "Skip TLS certificate verification (development workspaces only)")
}

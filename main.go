// Package main is the entry point for the brickctl application.
// It provides a command-line interface to the Databricks REST API.
package main

import (
	"brickctl/cli/cmd"
)

// main is the entry point for the brickctl application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}

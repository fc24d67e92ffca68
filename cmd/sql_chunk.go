// Copyright (c) 2025 Brickctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// sqlChunkCmd fetches one result chunk of a finished statement by index.
var sqlChunkCmd = &cobra.Command{
	Use:   "chunk <statement-id> <index>",
	Short: "Fetch one result chunk of a SQL statement",
	Long: `The chunk command retrieves a single chunk of a statement's result set by
its index, as listed in the manifest printed by 'brickctl sql exec'.`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil || index < 0 {
			return fmt.Errorf("invalid chunk index %q", args[1])
		}

		session, err := newSession()
		if err != nil {
			return err
		}

		data, err := session.GetStatementResultChunk(cmd.Context(), args[0], index)
		if err != nil {
			return err
		}

		if len(data.DataArray) == 0 && len(data.ExternalLinks) == 0 {
			pterm.Println("Chunk is empty")
			return nil
		}
		// Chunk responses carry no schema, so rows print without a header.
		renderInlineRows(nil, data)
		for _, link := range data.ExternalLinks {
			pterm.Printf("chunk %d (%d rows): %s\n", link.ChunkIndex, link.RowCount, link.ExternalLink)
		}
		return nil
	},
}

func init() {
	sqlCmd.AddCommand(sqlChunkCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridden/sudoku/internal/infrastructure/gridfile"
)

func newNewCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new playable puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := newEngine().NewPuzzle(cmd.Context())
			if err != nil {
				return err
			}
			if outPath != "" {
				return gridfile.Save(outPath, puzzle)
			}
			for _, row := range puzzle.Rows() {
				fmt.Println(row)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the puzzle to a file instead of stdout")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHintCmd() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "hint",
		Short: "Suggest one digit for a partially solved grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(inPath)
			if err != nil {
				return err
			}
			res := newEngine().Hint(cmd.Context(), g)
			if !res.Found {
				fmt.Println(res.Status)
				return nil
			}
			fmt.Printf("row %d, column %d: %d\n", res.Row, res.Col, res.Value)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "file", "f", "", "grid file (default: stdin)")
	return cmd
}

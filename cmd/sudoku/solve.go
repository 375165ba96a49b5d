package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gridden/sudoku/internal/domain"
	"github.com/gridden/sudoku/internal/infrastructure/gridfile"
)

func newSolveCmd() *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a grid read from a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(inPath)
			if err != nil {
				return err
			}
			solved, out, st := newEngine().Solve(cmd.Context(), g)
			if out != domain.Solved {
				return fmt.Errorf("%s after %v (%d nodes)", out, st.Duration.Round(time.Millisecond), st.Nodes)
			}
			log.Debug().Dur("dur", st.Duration).Int("nodes", st.Nodes).Msg("solved")
			for _, row := range solved.Rows() {
				fmt.Println(row)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "file", "f", "", "grid file (default: stdin)")
	return cmd
}

func readGrid(path string) (domain.Grid, error) {
	if path != "" {
		return gridfile.Load(path)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return domain.Grid{}, err
	}
	return gridfile.Parse(string(data))
}

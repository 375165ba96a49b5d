package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gridden/sudoku/internal/engine"
	"github.com/gridden/sudoku/internal/generator"
	"github.com/gridden/sudoku/internal/hint"
	"github.com/gridden/sudoku/internal/solver"
	"github.com/gridden/sudoku/internal/validator"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Sudoku puzzle engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(viper.GetString("log-level"))
		},
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "info", "debug|info|warn|error")
	pf.Duration("budget", solver.DefaultBudget, "solver wall-clock budget")
	pf.Int("placements", generator.DefaultPlacements, "random seed placements per generation attempt")
	pf.Int("max-attempts", 10000, "generation attempt cap (0 = unbounded)")
	_ = viper.BindPFlags(pf)
	viper.SetEnvPrefix("SUDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	root.AddCommand(newServeCmd(), newNewCmd(), newSolveCmd(), newHintCmd())
	return root
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// newEngine wires the component stack from the active configuration.
func newEngine() *engine.Engine {
	s := &solver.Backtracker{Budget: viper.GetDuration("budget")}
	g := generator.NewSeeded(s, 0)
	g.Placements = viper.GetInt("placements")
	g.MaxAttempts = viper.GetInt("max-attempts")
	return engine.New(s, g, validator.New(), hint.NewRandomScan(0))
}

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	httpadapter "github.com/gridden/sudoku/internal/adapters/http"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := gin.Default()
			httpadapter.New(newEngine()).Register(router)
			addr := viper.GetString("addr")
			log.Info().Str("addr", addr).Msg("listening")
			return router.Run(addr)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}

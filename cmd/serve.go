package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kasuboski/mediastat/pkg/logger"
	"github.com/kasuboski/mediastat/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the statistics server",
	Long:  `start the statistics api and the scheduler collecting statistics in the background`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		cfg := loadConfig()
		manager := newManager(ctx, cfg)

		go func() {
			if err := manager.Run(ctx); err != nil {
				log.Errorw("manager stopped", zap.Error(err))
			}
		}()

		srv := server.New(log, manager)
		if err := srv.Serve(ctx, cfg.Server.Port); err != nil {
			log.Errorw("server shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/geopage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the homepage builder web server",
	Long: `Starts the HTTP server. Configuration comes from the --config YAML file
(optional) and GEOPAGE_* environment variables, e.g. GEOPAGE_SESSION_SECRET
and GEOPAGE_LOG__LEVEL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := geopage.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger, err := geopage.NewLogger(cfg.Log)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		app := geopage.New(cfg, geopage.DefaultViews(), geopage.WithLogger(logger))
		defer app.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.Start(ctx); err != nil {
			logger.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

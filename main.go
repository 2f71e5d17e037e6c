package main

import (
	"context"
	"os"

	"MediConnect/config"
	"MediConnect/config/logger"
	"MediConnect/jobs"
	"MediConnect/migrations"
	"MediConnect/routes"
	"MediConnect/server"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	startServer = server.Start
	bootstrap   = server.Bootstrap
	loadConfig  = config.Load
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrate bool
	root := &cobra.Command{
		Use:           "mediconnect",
		Short:         "MediConnect patient, doctor and hospital API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConfig(func(cfg *config.Config) error { return run(cmd.Context(), cfg, migrate) })
		},
	}
	root.Flags().BoolVar(&migrate, "migrate", false, "run migrations before serving")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the jobs scheduler",
		RunE:  root.RunE,
	}
	serve.Flags().BoolVar(&migrate, "migrate", false, "run migrations before serving")

	root.AddCommand(serve, &cobra.Command{
		Use:   "migrate",
		Short: "Create indexes and backfill documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConfig(func(cfg *config.Config) error { return runMigrations(cmd.Context(), cfg) })
		},
	}, &cobra.Command{
		Use:   "reconcile",
		Short: "Repair hospital and doctor rosters from accepted requests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConfig(func(cfg *config.Config) error { return runReconcile(cmd.Context(), cfg) })
		},
	})
	return root
}

func withConfig(fn func(cfg *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Setup(cfg.LogLevel, cfg.IsDev())
	if err := fn(cfg); err != nil {
		log.Error().Err(err).Msg("Command failed")
		return err
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, migrate bool) error {
	defaultopts := server.GetDefaultOptions(cfg)

	options := server.Options{
		Config:           cfg,
		WebServerEnabled: defaultopts.WebServerEnabled,

		JobsEnabled: defaultopts.JobsEnabled,
		JobsHandler: func(app *server.App) (*cron.Cron, error) {
			return jobs.StartDailyScheduler(app.Services, cfg.ReconcileSchedule)
		},

		WebServerPreHandler: func(r *gin.Engine, app *server.App) {
			routes.Routes(r, app.Services, app.Signer)
		},

		MigrationEnabled: migrate,
		MigrationHandler: func(ctx context.Context, app *server.App) error {
			return migrations.Run(ctx, app.Database)
		},
	}
	return startServer(ctx, options)
}

func runMigrations(ctx context.Context, cfg *config.Config) error {
	app, err := bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())
	return migrations.Run(ctx, app.Database)
}

func runReconcile(ctx context.Context, cfg *config.Config) error {
	app, err := bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())
	n, err := app.Services.Reconcile(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("processed", n).Msg("Reconcile finished")
	return nil
}

package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"MediConnect/config"
	"MediConnect/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	Config *config.Config

	MigrationEnabled bool
	MigrationHandler func(ctx context.Context, app *App) error

	JobsEnabled bool
	JobsHandler func(app *App) (*cron.Cron, error)

	WebServerEnabled    bool
	WebServerPreHandler func(r *gin.Engine, app *App)
}

func GetDefaultOptions(cfg *config.Config) Options {
	return Options{
		Config:           cfg,
		JobsEnabled:      cfg.JobsEnabled,
		WebServerEnabled: true,
	}
}

/*
* Bootstrap the clients and run migrations when enabled
* Start the jobs scheduler and the web server
* On SIGINT or SIGTERM stop the scheduler first, then drain http for 10s
 */
func Start(ctx context.Context, opts Options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := Bootstrap(ctx, opts.Config)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(ctx, app); err != nil {
			return err
		}
	}

	var scheduler *cron.Cron
	if opts.JobsEnabled && opts.JobsHandler != nil {
		if scheduler, err = opts.JobsHandler(app); err != nil {
			return err
		}
	}

	if !opts.WebServerEnabled {
		<-ctx.Done()
		stopScheduler(scheduler)
		return nil
	}

	srv := &http.Server{
		Addr:              ":" + opts.Config.Port,
		Handler:           NewEngine(opts.Config, app, opts.WebServerPreHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Web server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		stopScheduler(scheduler)
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	stopScheduler(scheduler)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func stopScheduler(c *cron.Cron) {
	if c == nil {
		return
	}
	<-c.Stop().Done()
}

// NewEngine builds the gin engine with the shared middleware.
func NewEngine(cfg *config.Config, app *App, pre func(r *gin.Engine, app *App)) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log.Logger), cors.New(CORSConfig(cfg.CORSOrigins)))
	if pre != nil {
		pre(r, app)
	}
	return r
}

// CORSConfig allows any origin for "*" or an empty list, otherwise only the
// listed origins with credentials.
func CORSConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	pg "animal-rescue-portal/internal/adapters/storage/postgres"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	sessionPurgeEvery = time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var db *sql.DB
		if cfg.Database.DSN != "" {
			db, err = pg.Open(ctx, cfg.Database.DSN, cfg.Database.ConnectRetries, log)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := pg.Migrate(ctx, db, func(name string) {
				log.Info("migration applied", map[string]any{"migration": name})
			})
			if err != nil {
				return err
			}
			log.Info("database ready", map[string]any{"migrations_applied": n})
		}

		rt, err := router.NewRouter(router.Options{
			Config:  cfg,
			DB:      db,
			Logger:  log,
			Metrics: metrics.New(),
		})
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      rt,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr})
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			purgeSessions(gctx, rt, log)
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down", nil)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func purgeSessions(ctx context.Context, rt *router.Router, log logger.Logger) {
	t := time.NewTicker(sessionPurgeEvery)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := rt.PurgeExpiredSessions(ctx)
			if err != nil {
				log.Warn("session purge failed", map[string]any{"err": err})
				continue
			}
			if n > 0 {
				log.Debug("expired sessions purged", map[string]any{"count": n})
			}
		}
	}
}

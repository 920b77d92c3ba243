package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/darna-inc/darna/internal/infrastructure/database"
	"github.com/darna-inc/darna/internal/infrastructure/migration"
	"github.com/darna-inc/darna/internal/infrastructure/permission"
	"github.com/darna-inc/darna/internal/interfaces/cli/cmdutil"
	httpRouter "github.com/darna-inc/darna/internal/interfaces/http"
	"github.com/darna-inc/darna/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Darna HTTP API, the notification websocket and the subscription sweep scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	env = cmdutil.Environment(env)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, db, err := cmdutil.Bootstrap(ctx, env)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	logger.Info("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := handleMigrations(ctx, cfg.Database.MigrationStrategy, cfg.Database.MigrationsPath, env); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(db, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	if err := permission.SeedDefaultPolicies(container.Enforcer(), log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	if err := container.SetupRoutes(); err != nil {
		return err
	}
	if err := container.Start(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "address", cfg.Server.GetAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return container.RunBus(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		// Websocket connections are hijacked and not tracked by srv.
		container.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func handleMigrations(ctx context.Context, strategyName, scriptsPath, environment string) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	log := logger.NewLogger()
	strategy, err := migration.NewStrategy(strategyName, scriptsPath, log)
	if err != nil {
		return err
	}

	if autoMigrate {
		if environment == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		return migration.NewManager(strategy, log).Migrate(ctx, database.Get())
	}

	version, dirty, err := strategy.Version(database.Get())
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}
	if dirty {
		return fmt.Errorf("database schema is dirty at version %d", version)
	}
	logger.Info("current migration version", "version", version, "strategy", strategy.GetName())
	return nil
}

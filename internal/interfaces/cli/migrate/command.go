package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/infrastructure/database"
	"github.com/darna-inc/darna/internal/infrastructure/migration"
	"github.com/darna-inc/darna/internal/interfaces/cli/cmdutil"
	"github.com/darna-inc/darna/internal/shared/logger"
)

var (
	env          string
	strategyName string
	name         string
	steps        int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&strategyName, "strategy", "s", "", "Migration strategy (goose, golang-migrate, auto); defaults to database.migration_strategy")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations and seed the property type taxonomy.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// initEnv loads configuration, opens the database and picks the strategy.
func initEnv(ctx context.Context) (migration.Strategy, *gorm.DB, logger.Interface, error) {
	cfg, log, db, err := cmdutil.Bootstrap(ctx, cmdutil.Environment(env))
	if err != nil {
		return nil, nil, nil, err
	}

	chosen := strategyName
	if chosen == "" {
		chosen = cfg.Database.MigrationStrategy
	}
	strategy, err := migration.NewStrategy(chosen, cfg.Database.MigrationsPath, log)
	if err != nil {
		_ = database.Close()
		return nil, nil, nil, err
	}

	return strategy, db, log, nil
}

func runUp(cmd *cobra.Command, _ []string) error {
	strategy, db, log, err := initEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "strategy", strategy.GetName())

	if err := migration.NewManager(strategy, log).Migrate(cmd.Context(), db); err != nil {
		log.Errorw("migration failed", "error", err)
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, _ []string) error {
	strategy, db, log, err := initEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.Down(db, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	strategy, db, log, err := initEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer database.Close()

	version, dirty, err := strategy.Version(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Strategy:        %s\n", strategy.GetName())
	fmt.Fprintf(out, "  Current Version: %d\n", version)
	fmt.Fprintf(out, "  Dirty:           %t\n", dirty)

	return nil
}

func runCreate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := cmdutil.LoadConfig(cmdutil.Environment(env))
	if err != nil {
		return err
	}

	chosen := strategyName
	if chosen == "" {
		chosen = cfg.Database.MigrationStrategy
	}
	strategy, err := migration.NewStrategy(chosen, cfg.Database.MigrationsPath, log)
	if err != nil {
		return err
	}

	files, err := strategy.Create(name)
	if err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", f)
	}
	return nil
}

// Package sweep runs one subscription expiry pass from the command line,
// for deployments that schedule it externally.
package sweep

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/domain/subscription"
	"github.com/darna-inc/darna/internal/infrastructure/database"
	"github.com/darna-inc/darna/internal/infrastructure/metrics"
	"github.com/darna-inc/darna/internal/infrastructure/repository"
	"github.com/darna-inc/darna/internal/interfaces/cli/cmdutil"
)

var (
	env       string
	condition string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expire paid subscriptions once and exit",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&condition, "condition", "", "Sweep condition (past_due, literal); defaults to subscription.sweep_condition")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, log, db, err := cmdutil.Bootstrap(cmd.Context(), cmdutil.Environment(env))
	if err != nil {
		return err
	}
	defer database.Close()

	chosen := subscription.SweepCondition(cfg.Subscription.SweepCondition)
	if condition != "" {
		chosen = subscription.SweepCondition(condition)
	}
	if !chosen.IsValid() {
		return fmt.Errorf("invalid sweep condition %q", chosen)
	}

	sweeper := usecases.NewExpireSubscriptionsUseCase(
		repository.NewSubscriptionRepository(db, log),
		chosen,
		metrics.New(),
		log,
	)

	expired, err := sweeper.Execute(cmd.Context())
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "expired %d subscription(s)\n", expired)
	return nil
}

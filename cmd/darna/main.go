package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/darna-inc/darna/internal/interfaces/cli/migrate"
	"github.com/darna-inc/darna/internal/interfaces/cli/seed"
	"github.com/darna-inc/darna/internal/interfaces/cli/server"
	"github.com/darna-inc/darna/internal/interfaces/cli/sweep"
	"github.com/darna-inc/darna/internal/interfaces/cli/usercmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "darna",
		Short:        "Darna - real estate marketplace backend",
		Long:         `Darna serves the marketplace API, runs the subscription expiry sweep and provides database and account administration commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sweep.NewCommand(),
		seed.NewCommand(),
		usercmd.NewCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

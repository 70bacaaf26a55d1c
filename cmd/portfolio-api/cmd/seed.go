package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/investment-app/portfolio-api/internal/core/service"
	"github.com/investment-app/portfolio-api/internal/pkg/config"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty store with the bootstrap Admin and sample data",
	Long: `Creates the bootstrap Admin, a sample user and the sample catalog when the
store holds no accounts and no catalog entries. It does nothing otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.StoreDriver == config.StoreMemory {
			log.Warn().Msg("seeding the in-memory store has no lasting effect; use SEED_ON_START with serve")
		}

		b, err := openBackend(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer b.close(context.WithoutCancel(cmd.Context()), log)

		return runSeed(cmd.Context(), b)
	},
}

func runSeed(ctx context.Context, b *backend) error {
	seeded, err := service.NewSeeder(b.accounts, b.investments, log).Seed(ctx, service.SeedOptions{
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
	})
	if err != nil {
		return err
	}
	if !seeded {
		log.Info().Msg("store already populated; seed skipped")
	}
	return nil
}

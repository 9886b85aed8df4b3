package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	infraauth "github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/auth"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/config"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/database"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/migrations"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/seed"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

var (
	env      string
	withSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Bring the database schema up to date, optionally seeding demo data.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Seed demo data after migrating")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migrations.MigratePortalTables(database.Get()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("migrations completed")

	if withSeed {
		hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
		if err := seed.Run(cmd.Context(), database.Get(), hasher); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	return nil
}

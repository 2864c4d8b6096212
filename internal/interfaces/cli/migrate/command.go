// Package migrate provides schema convergence commands.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"folios/internal/infrastructure/config"
	"folios/internal/infrastructure/database"
	"folios/internal/infrastructure/migration"
	"folios/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema tools",
		Long:  `Converge the database schema and inspect its provisioning status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create any missing tables and indexes",
		Long:  `Bring the database schema to the expected shape. Existing tables and their data are never touched; running against a fully provisioned database is a no-op.`,
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which schema objects are missing",
		RunE:  runStatus,
	}
}

func initEnv() (database.Engine, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer db.Close()

	log.Infow("converging schema", "environment", env, "dialect", db.Dialect())

	if err := migration.Converge(cmd.Context(), db, log); err != nil {
		log.Errorw("schema convergence failed", "error", err)
		return fmt.Errorf("schema convergence failed: %w", err)
	}

	log.Infow("schema converged successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	db, log, err := initEnv()
	if err != nil {
		return err
	}
	defer db.Close()

	missing, err := migration.Missing(cmd.Context(), db)
	if err != nil {
		log.Errorw("failed to check schema status", "error", err)
		return fmt.Errorf("failed to check schema status: %w", err)
	}

	fmt.Printf("\nSchema Status:\n")
	fmt.Printf("  Environment: %s\n", env)
	fmt.Printf("  Dialect:     %s\n", db.Dialect())
	if len(missing) == 0 {
		fmt.Println("  All tables present")
		return nil
	}
	fmt.Printf("  Missing tables: %v\n", missing)
	return nil
}

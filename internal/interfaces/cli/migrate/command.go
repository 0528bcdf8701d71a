package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"jirabridge/internal/infrastructure/config"
	"jirabridge/internal/infrastructure/database"
	"jirabridge/internal/infrastructure/migration"
	"jirabridge/internal/infrastructure/persistence/migrations"
	"jirabridge/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
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
		Long:  `Display the current migration version of the database.`,
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
	cmd.MarkFlagRequired("name")

	return cmd
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Apply the schema with GORM AutoMigrate",
		Long:  `Apply the mapping table schema directly with GORM AutoMigrate. Intended for development databases only.`,
		RunE:  runAuto,
	}
}

func initEnv() (string, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return "", fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to get scripts path: %w", err)
	}

	return scriptsPath, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("running up migrations", "environment", env)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if err := strategy.Migrate(database.Get()); err != nil {
		logger.Error("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("running down migrations", "environment", env, "steps", steps)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		logger.Error("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	logger.Info("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	logger.Info("checking migration status", "environment", env)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		logger.Error("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)
	fmt.Printf("  Dirty:           %t\n", dirty)

	return nil
}

func runAuto(cmd *cobra.Command, args []string) error {
	if _, err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	logger.Info("running gorm auto-migration", "environment", env)

	if err := migrations.MigrateMappingTables(database.Get()); err != nil {
		logger.Error("auto-migration failed", "error", err)
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	logger.Info("auto-migration completed successfully")
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := initEnv()
	if err != nil {
		return err
	}

	logger.Info("creating new migration", "name", name)

	generator := migration.NewGenerator(scriptsPath)
	if err := generator.CreateMigration(name); err != nil {
		logger.Error("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Printf("Migration '%s' created successfully\n", name)
	return nil
}

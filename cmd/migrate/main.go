package main

import (
	"fmt"
	"os"

	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the job store schema",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *sqlx.DB) error {
			if err := database.RunMigrations(db.DB); err != nil {
				return err
			}
			logger.Get().Info("Migrations applied")
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		return withDB(cmd, func(db *sqlx.DB) error {
			if err := database.RollbackMigrations(db.DB, steps); err != nil {
				return err
			}
			logger.Get().Info("Migrations rolled back", zap.Int("steps", steps))
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd, func(db *sqlx.DB) error {
			version, dirty, err := database.MigrationVersion(db.DB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite job store (overrides db.path)")
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back")

	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
}

// withDB loads configuration, opens the job store and runs fn against it.
func withDB(cmd *cobra.Command, fn func(db *sqlx.DB) error) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfigFile(configPath)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DB.Path = p
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Get().Info("Opened job store", zap.String("path", cfg.DB.Path))
	return fn(db)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

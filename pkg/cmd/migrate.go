package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/pressvault/pkg/configs"
	"github.com/yeisme/pressvault/pkg/internal/model"
	"github.com/yeisme/pressvault/pkg/internal/storage/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "run database migrations for all models",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configs.InitConfig(configPath); err != nil {
			return fmt.Errorf("init config: %w", err)
		}

		client, err := db.New(cmd.Context())
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}

		if err := client.DB.AutoMigrate(model.AllModels()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")

		return nil
	},
}

// registerMigrateCommand 注册 migrate 命令.
func registerMigrateCommand() {
	rootCmd.AddCommand(migrateCmd)
}

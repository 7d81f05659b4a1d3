package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/pressvault/pkg/configs"
	ctxPkg "github.com/yeisme/pressvault/pkg/context"
	"github.com/yeisme/pressvault/pkg/internal/service"
	"github.com/yeisme/pressvault/pkg/internal/storage"
)

var (
	adminUsername string
	adminPassword string

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "admin account management",
	}

	// 幂等初始化：已有账号时不做任何修改，重复执行安全.
	adminEnsureCmd = &cobra.Command{
		Use:   "ensure",
		Short: "create the admin account if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configs.InitConfig(configPath); err != nil {
				return fmt.Errorf("init config: %w", err)
			}

			mgr, err := storage.Init(cmd.Context())
			if err != nil {
				return fmt.Errorf("init storage: %w", err)
			}

			ctx := ctxPkg.WithStorageManager(cmd.Context(), mgr)

			svc := service.NewAdminService(ctx)
			if err := svc.EnsureAdmin(ctx, adminUsername, adminPassword); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "admin account ensured")

			return nil
		},
	}
)

// registerAdminCommands 注册 admin 相关命令.
func registerAdminCommands() {
	adminEnsureCmd.Flags().StringVar(&adminUsername, "username", configs.DefaultAdminUsername, "admin username")
	adminEnsureCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (required when creating)")

	adminCmd.AddCommand(adminEnsureCmd)
	rootCmd.AddCommand(adminCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/pressvault/pkg/api"
	"github.com/yeisme/pressvault/pkg/app"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "start the HTTP server",
	Aliases: []string{"server", "run"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewApp(configPath)
		api.RegisterRoutes(a.Engine, a.Manager, a.Scheduler)

		return a.Run()
	},
}

// registerServeCommand 注册 serve 命令.
func registerServeCommand() {
	rootCmd.AddCommand(serveCmd)
}

// iikoctl — консольный клиент iiko Cloud API для проверки интеграции:
// организации, меню, группы терминалов, столы и тестовые заказы.
//
// Использование:
//
//	iikoctl [--api-url URL] [--api-login LOGIN] [--json] [<command> <subcommand>] [flags]
//
// Без команды запускается интерактивная сессия создания тестового заказа.
//
// Команды:
//
//	org       Организации
//	menu      Номенклатура
//	terminal  Группы терминалов
//	table     Столы
//	order     Статус заказа, журнал, события
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/iikoctl/internal/cli"
	"github.com/shaiso/iikoctl/internal/config"
	"github.com/shaiso/iikoctl/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger(os.Stderr)

	if err := config.LoadDotEnv(); err != nil {
		logger.Warn("failed to load .env", "error", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	reg := telemetry.NewRegistry()
	deps := cli.NewDeps(&cfg, reg, logger, os.Stdin, os.Stdout, os.Stderr)

	rootCmd := &cobra.Command{
		Use:           "iikoctl",
		Short:         "iikoctl — iiko Cloud API test client",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cli.RunSession(deps),
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "iiko API base URL")
	flags.StringVar(&cfg.APILogin, "api-login", cfg.APILogin, "iiko apiLogin (prompted in the interactive session if empty)")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")
	flags.BoolVar(&deps.JSON, "json", false, "Output in JSON format")
	flags.StringVar(&cfg.MenuDir, "menu-dir", cfg.MenuDir, "Directory for saved menus")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write client metrics to this file on exit")

	rootCmd.AddCommand(
		cli.NewOrgCmd(deps),
		cli.NewMenuCmd(deps),
		cli.NewTerminalCmd(deps),
		cli.NewTableCmd(deps),
		cli.NewOrderCmd(deps),
	)

	err = rootCmd.ExecuteContext(telemetry.WithLogger(context.Background(), logger))

	if mErr := telemetry.WriteMetrics(cfg.MetricsFile, reg); mErr != nil {
		logger.Warn("failed to write metrics", "error", mErr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ghiac/adminshell"
	"github.com/ghiac/adminshell/config"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/server"
	"github.com/ghiac/adminshell/settings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "adminshell",
		Short:         "Admin console shell",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("ADMINSHELL_CONFIG"), "path to a YAML config file")

	loadConfig := func() (*config.Config, error) {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
		if !log.SetLevel(cfg.LogLevel) {
			log.Log.Warnf("unknown log level %q, keeping info", cfg.LogLevel)
		}
		return cfg, nil
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	root.AddCommand(serve)
	root.RunE = serve.RunE

	root.AddCommand(newMenuCmd(loadConfig))

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), adminshell.Version())
		},
	})
	return root
}

func runServe(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Log.Infof("=== Admin Shell %s ===", adminshell.Version())
	log.Log.Infof("Auth mode: %s", cfg.Auth.Mode)
	log.Log.Infof("Preference storage: %s", cfg.Storage.Backend)
	log.Log.Infof("Cloud: %v, Enterprise: %v", cfg.Features.EnableCloud, cfg.Features.EnableEnterprise)

	shell, err := adminshell.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create shell: %w", err)
	}
	defer func() {
		if err := shell.Close(); err != nil {
			log.Log.Warnf("failed to close preference storage: %v", err)
		}
	}()

	return server.NewServer(cfg, shell).Start(ctx)
}

// newMenuCmd prints the navigation a given user would see, to check rule
// changes without running the server
func newMenuCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var (
		role  string
		email string
	)
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the admin navigation for a role as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			snapshot := settings.Snapshot(cmd.Context(), settings.NewFileProvider(cfg.Settings.Path))
			user := model.NewUser(email, email, model.ParseRole(role))
			flags := menu.Flags{
				EnableCloud:            cfg.Features.EnableCloud,
				EnableEnterprise:       cfg.Features.EnableEnterprise,
				KnowledgeGraphExposed:  cfg.Features.KnowledgeGraphExposed,
				CustomAnalyticsEnabled: cfg.Features.CustomAnalyticsEnabled,
			}
			sections := menu.Build(menu.NewContext(user, cfg.SuperAdminEmail, flags, snapshot))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sections)
		},
	}
	cmd.Flags().StringVar(&role, "role", "admin", "user role (admin, curator, global_curator, basic)")
	cmd.Flags().StringVar(&email, "email", "", "user email, compared against the super-admin email")
	return cmd
}

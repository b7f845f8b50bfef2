package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jdlms/operadoras-dashboard/internal/api"
	"github.com/jdlms/operadoras-dashboard/internal/app"
	"github.com/jdlms/operadoras-dashboard/internal/config"
	"github.com/jdlms/operadoras-dashboard/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flags struct {
	apiURL   string
	logFile  string
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:           "operadoras-dashboard",
	Short:         "Terminal dashboard for operadora expenses",
	Long:          "A terminal user interface for browsing operadoras, their expenses and aggregate statistics",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// This is the default behavior - start the TUI
		return startTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "API base URL (overrides DASHBOARD_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file path (overrides DASHBOARD_LOG_FILE)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides DASHBOARD_LOG_LEVEL)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.apiURL != "" {
		cfg.APIURL = flags.apiURL
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	return cfg, cfg.Validate()
}

// setup loads config, opens the log file and builds the API client
func setup() (*config.Config, *logrus.Logger, io.Closer, *api.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log, closer, err := logger.New(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	client, err := api.NewClient(cfg.APIURL, api.WithTimeout(cfg.RequestTimeout), api.WithLogger(log))
	if err != nil {
		closer.Close()
		return nil, nil, nil, nil, fmt.Errorf("create api client: %w", err)
	}
	return cfg, log, closer, client, nil
}

func startTUI() error {
	cfg, log, closer, client, err := setup()
	if err != nil {
		return err
	}
	defer closer.Close()

	log.WithField("api_url", cfg.APIURL).Info("starting dashboard")

	state := app.CreateApp(cfg, client, log)
	defer state.Cancel()

	if err := state.App.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info("dashboard stopped")
	return nil
}

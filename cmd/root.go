package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "learnsphere",
	Short: "AI-powered learning companion for your terminal",
	Long:  "LearnSphere is a terminal client for the LearnSphere platform: pick a level, follow a generated roadmap, learn in your style, and quiz your way to XP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides the default location)")
	rootCmd.PersistentFlags().String("server", "", "Server base URL (overrides config)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config path from the --config flag and
// applies the --server override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.ServerURL = server
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the API client from config, restoring any saved
// session cookies.
func newClient(cfg *config.Config) (*api.Client, error) {
	var opts []api.Option
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	client, err := api.New(cfg.ServerURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("building API client: %w", err)
	}
	if err := client.LoadCookies(cfg.CookiePath); err != nil {
		// A missing or stale cookie jar just means logging in again.
		return client, nil
	}
	return client, nil
}

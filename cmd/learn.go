package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/app"
	"github.com/learnsphere/learnsphere-cli/internal/history"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start the learning flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLearn(cmd)
	},
}

// runLearn opens the local cache, checks the saved session, and
// launches the TUI.
func runLearn(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	cache, err := history.Open(cfg.CachePath)
	if err != nil {
		// The flow works without the local cache; attempts just are
		// not recorded.
		fmt.Fprintln(os.Stderr, "Local history unavailable:", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// A successful progress fetch means the stored cookies still
	// authenticate; the auth form can be skipped.
	var seed *api.Progress
	if progress, err := client.Progress(context.Background()); err == nil {
		seed = progress
		if cache != nil {
			_ = cache.SaveProgress(progress)
		}
	}

	return app.Run(cfg, client, cache, seed)
}

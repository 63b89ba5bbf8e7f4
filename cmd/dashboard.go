package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/history"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your progress and recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		// Prefer live server progress, fall back to the local mirror.
		progress, err := client.Progress(context.Background())
		offline := false
		if err != nil {
			cache, cerr := history.Open(cfg.CachePath)
			if cerr != nil {
				return fmt.Errorf("server unreachable and no local cache: %w", err)
			}
			defer cache.Close()
			mirrored, syncedAt, ok, merr := cache.LoadProgress()
			if merr != nil || !ok {
				return fmt.Errorf("server unreachable and nothing cached: %w", err)
			}
			progress = mirrored
			offline = true
			fmt.Printf("(offline, showing progress synced %s)\n\n", syncedAt.Format("2006-01-02 15:04"))
		}

		printProgress(progress)

		cache, cerr := history.Open(cfg.CachePath)
		if cerr == nil {
			defer cache.Close()
			if !offline {
				_ = cache.SaveProgress(progress)
			}
			attempts, aerr := cache.RecentAttempts(5)
			if aerr == nil && len(attempts) > 0 {
				fmt.Println("\nRecent quizzes:")
				for _, a := range attempts {
					fmt.Printf("  %s  %-24s %3.0f%%  +%d XP\n",
						a.TakenAt.Format("Jan 02"), a.Topic, a.Percentage, a.XPEarned)
				}
			}
		}
		return nil
	},
}

func printProgress(p *api.Progress) {
	level := p.Level
	if level == "" {
		level = "not chosen yet"
	}
	fmt.Printf("Level:      %s\n", level)
	fmt.Printf("XP:         %d (level %d of the XP track, %d/%d to the next)\n",
		p.XP, p.XP/components.XPPerLevel+1, p.XP%components.XPPerLevel, components.XPPerLevel)
	fmt.Printf("Completed:  %d topics\n", len(p.TopicsCompleted))
	if len(p.TopicsCompleted) > 0 {
		fmt.Printf("            %s\n", strings.Join(p.TopicsCompleted, ", "))
	}
	if len(p.Badges) > 0 {
		fmt.Printf("Badges:     %s\n", strings.Join(p.Badges, " "))
	}
	if p.LearningStyle != "" {
		fmt.Printf("Style:      %s\n", p.LearningStyle)
	}
}

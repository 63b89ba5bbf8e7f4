package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnsphere/learnsphere-cli/internal/history"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved session and local history",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This clears your saved session and local quiz history (server progress is kept). Continue? [y/N] ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(cfg.CookiePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing session: %w", err)
		}

		cache, err := history.Open(cfg.CachePath)
		if err == nil {
			defer cache.Close()
			if err := cache.Reset(); err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}
		}

		fmt.Println("Session and local history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create an account and save the session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cfg)
		if err != nil {
			return err
		}

		username := ""
		if len(args) == 1 {
			username = args[0]
		}
		username, password, err := promptCredentials(username)
		if err != nil {
			return err
		}

		fmt.Print("Email: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading email: %w", err)
		}
		email := strings.TrimSpace(line)
		if email == "" {
			return fmt.Errorf("email is required")
		}

		result, err := client.Register(context.Background(), username, password, email)
		if err != nil {
			return fmt.Errorf("register request: %w", err)
		}
		if !result.Success {
			if result.Error != "" {
				return fmt.Errorf("registration failed: %s", result.Error)
			}
			return fmt.Errorf("registration failed")
		}

		if err := client.SaveCookies(cfg.CookiePath); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Welcome, %s! Session saved.\n", username)
		return nil
	},
}

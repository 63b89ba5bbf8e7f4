package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in and save the session",
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

		result, err := client.Login(context.Background(), username, password)
		if err != nil {
			return fmt.Errorf("login request: %w", err)
		}
		if !result.Success {
			if result.Error != "" {
				return fmt.Errorf("login failed: %s", result.Error)
			}
			return fmt.Errorf("login failed")
		}

		if err := client.SaveCookies(cfg.CookiePath); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Logged in as %s. Session saved.\n", username)
		return nil
	},
}

// promptCredentials reads the username (when not given) and the
// password, the latter with echo disabled.
func promptCredentials(username string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("reading username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return "", "", fmt.Errorf("username is required")
	}

	fmt.Print("Password: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("reading password: %w", err)
	}
	if len(secret) == 0 {
		return "", "", fmt.Errorf("password is required")
	}

	return username, string(secret), nil
}

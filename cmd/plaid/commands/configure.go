package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ledgerkit/plaid-client/internal/constants"
)

// fileConfig is the on-disk shape of ~/.plaid/config.yml.
type fileConfig struct {
	ClientID string `yaml:"client-id"`
	Secret   string `yaml:"secret"`
	Env      string `yaml:"env"`
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var (
		clientID    string
		secret      string
		environment string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store API credentials",
		Long: `Store API credentials in the config file.

Values not given as flags are prompted for interactively; the secret prompt
does not echo. The secret is stored in plain text with owner-only file
permissions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if clientID == "" {
				fmt.Print("Client ID: ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading client ID: %w", err)
				}

				clientID = strings.TrimSpace(line)
			}

			if secret == "" {
				fmt.Print("Secret: ")

				secretBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading secret: %w", err)
				}

				secret = strings.TrimSpace(string(secretBytes))
			}

			path, err := writeConfigFile(fileConfig{
				ClientID: clientID,
				Secret:   secret,
				Env:      environment,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Client ID: %s\n", clientID)
			fmt.Printf("Secret:    %s\n", constants.MaskedSecret)
			fmt.Printf("Credentials written to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "API client ID")
	cmd.Flags().StringVar(&secret, "secret", "", "API secret")
	cmd.Flags().StringVar(&environment, "env", "sandbox", "API environment (sandbox, development, production)")

	return cmd
}

func writeConfigFile(config fileConfig) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".plaid")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	path := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return path, nil
}

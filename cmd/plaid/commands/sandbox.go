package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// NewSandboxCommand creates the sandbox command group.
func NewSandboxCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Sandbox-only test helpers",
		Long:  "Create test items and simulate item states. These endpoints only exist in the sandbox environment.",
	}

	cmd.AddCommand(newSandboxPublicTokenCommand())
	cmd.AddCommand(newSandboxResetLoginCommand())
	cmd.AddCommand(newSandboxSetVerificationCommand())
	cmd.AddCommand(newSandboxFireWebhookCommand())

	return cmd
}

func newSandboxPublicTokenCommand() *cobra.Command {
	var (
		institutionID string
		products      []string
		webhook       string
		username      string
		password      string
	)

	cmd := &cobra.Command{
		Use:   "public-token",
		Short: "Create a test public token",
		Long:  "Create a public_token for a test item without going through Link",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &plaid.CreatePublicTokenRequest{
				InstitutionID:   institutionID,
				InitialProducts: products,
			}
			if webhook != "" || username != "" || password != "" {
				request.Options = &plaid.CreatePublicTokenOptions{
					Webhook:          webhook,
					OverrideUsername: username,
					OverridePassword: password,
				}
			}

			publicToken, err := client.Sandbox().CreatePublicToken(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create public token: %w", err)
			}

			fmt.Println(publicToken)

			return nil
		},
	}

	cmd.Flags().StringVar(&institutionID, "institution-id", "ins_109508", "institution to create the item against")
	cmd.Flags().StringSliceVar(&products, "products", []string{"transactions"}, "products to initialize the item with")
	cmd.Flags().StringVar(&webhook, "webhook", "", "webhook URL for the item")
	cmd.Flags().StringVar(&username, "username", "", "override the default sandbox username")
	cmd.Flags().StringVar(&password, "password", "", "override the default sandbox password")

	return cmd
}

func newSandboxResetLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-login ACCESS_TOKEN",
		Short: "Force an item into the login-required state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Sandbox().ResetLogin(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to reset login: %w", err)
			}

			fmt.Println("Item login reset; it now requires re-authentication")

			return nil
		},
	}
}

func newSandboxSetVerificationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-verification ACCESS_TOKEN ACCOUNT_ID STATUS",
		Short: "Set an account's verification status",
		Long:  "Set the verification status of a test account to simulate the micro-deposit flow. STATUS is automatically_verified or verification_required.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Sandbox().SetVerificationStatus(context.Background(), &plaid.SetVerificationStatusRequest{
				AccessToken:        args[0],
				AccountID:          args[1],
				VerificationStatus: args[2],
			})
			if err != nil {
				return fmt.Errorf("failed to set verification status: %w", err)
			}

			fmt.Println("Verification status updated")

			return nil
		},
	}
}

func newSandboxFireWebhookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fire-webhook ACCESS_TOKEN",
		Short: "Fire a test webhook for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Sandbox().FireWebhook(context.Background(), &plaid.FireWebhookRequest{
				AccessToken: args[0],
				WebhookCode: plaid.WebhookCodeDefaultUpdate,
			})
			if err != nil {
				return fmt.Errorf("failed to fire webhook: %w", err)
			}

			fmt.Printf("Webhook fired: %t\n", result.WebhookFired)

			return nil
		},
	}
}

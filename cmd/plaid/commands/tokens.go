package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// NewTokensCommand creates the tokens command group.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tokens",
		Aliases: []string{"token"},
		Short:   "Manage link and access tokens",
		Long:    "Create link tokens, exchange public tokens, and rotate access tokens",
	}

	cmd.AddCommand(newTokensCreateLinkCommand())
	cmd.AddCommand(newTokensGetLinkCommand())
	cmd.AddCommand(newTokensExchangeCommand())
	cmd.AddCommand(newTokensInvalidateCommand())

	return cmd
}

func newTokensCreateLinkCommand() *cobra.Command {
	var (
		clientName   string
		language     string
		countryCodes []string
		userID       string
		products     []string
		webhook      string
	)

	cmd := &cobra.Command{
		Use:   "create-link",
		Short: "Create a link token",
		Long:  "Create a link_token used to initialize a Link session for an end user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Tokens().CreateLinkToken(context.Background(), &plaid.CreateLinkTokenRequest{
				ClientName:   clientName,
				Language:     language,
				CountryCodes: countryCodes,
				User:         plaid.LinkUser{ClientUserID: userID},
				Products:     products,
				Webhook:      webhook,
			})
			if err != nil {
				return fmt.Errorf("failed to create link token: %w", err)
			}

			fmt.Println(result.LinkToken)

			return nil
		},
	}

	cmd.Flags().StringVar(&clientName, "client-name", "", "application name shown in Link")
	cmd.Flags().StringVar(&language, "language", "en", "Link display language")
	cmd.Flags().StringSliceVar(&countryCodes, "country-codes", []string{"US"}, "ISO 3166-1 alpha-2 country codes")
	cmd.Flags().StringVar(&userID, "user-id", "", "stable identifier for the end user")
	cmd.Flags().StringSliceVar(&products, "products", nil, "products to initialize Link for")
	cmd.Flags().StringVar(&webhook, "webhook", "", "webhook URL for item updates")

	_ = cmd.MarkFlagRequired("client-name")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newTokensGetLinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get-link LINK_TOKEN",
		Short: "Get link token details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Tokens().GetLinkToken(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get link token: %w", err)
			}

			return renderJSON(result)
		},
	}
}

func newTokensExchangeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange PUBLIC_TOKEN",
		Short: "Exchange a public token for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Tokens().ExchangePublicToken(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to exchange public token: %w", err)
			}

			fmt.Printf("Access Token: %s\n", result.AccessToken)
			fmt.Printf("Item ID:      %s\n", result.ItemID)

			return nil
		},
	}
}

func newTokensInvalidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate ACCESS_TOKEN",
		Short: "Rotate an access token",
		Long:  "Rotate the access token for an item. The previous token stops working immediately.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Tokens().InvalidateAccessToken(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to invalidate access token: %w", err)
			}

			fmt.Printf("New Access Token: %s\n", result.NewAccessToken)

			return nil
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage items",
		Long:    "Inspect, update, and remove items (linked financial accounts)",
	}

	cmd.AddCommand(newItemsGetCommand())
	cmd.AddCommand(newItemsRemoveCommand())
	cmd.AddCommand(newItemsUpdateWebhookCommand())

	return cmd
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCESS_TOKEN",
		Short: "Get item status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			item, err := client.Items().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}

			return outputItem(item)
		},
	}
}

func newItemsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ACCESS_TOKEN",
		Short: "Remove an item",
		Long:  "Remove an item. Its access token becomes invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Items().Remove(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to remove item: %w", err)
			}

			fmt.Println("Item removed")

			return nil
		},
	}
}

func newItemsUpdateWebhookCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-webhook ACCESS_TOKEN WEBHOOK_URL",
		Short: "Update an item's webhook URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			item, err := client.Items().UpdateWebhook(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to update webhook: %w", err)
			}

			return outputItem(item)
		},
	}
}

func outputItem(item *plaid.Item) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(item)
	case constants.FormatYAML:
		return renderYAML(item)
	default:
		return renderItemTable(item)
	}
}

func renderItemTable(item *plaid.Item) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Item ID", item.ItemID)
	_ = table.Append("Institution ID", orNotAvailable(item.InstitutionID))
	_ = table.Append("Webhook", orNotAvailable(item.Webhook))
	_ = table.Append("Available Products", strings.Join(item.AvailableProducts, ", "))
	_ = table.Append("Billed Products", strings.Join(item.BilledProducts, ", "))
	_ = table.Append("Update Type", orNotAvailable(item.UpdateType))

	if item.Error != nil {
		_ = table.Append("Error", fmt.Sprintf("%s: %s", item.Error.ErrorCode, item.Error.ErrorMessage))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Inspect accounts and balances",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsBalancesCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var accountIDs []string

	cmd := &cobra.Command{
		Use:   "list ACCESS_TOKEN",
		Short: "List accounts for an item",
		Long:  "List the active accounts for an item. Balances may be cached server-side; use 'accounts balances' for real-time data.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &plaid.GetAccountsRequest{AccessToken: args[0]}
			if len(accountIDs) > 0 {
				request.Options = &plaid.AccountsFilter{AccountIDs: accountIDs}
			}

			accounts, err := client.Accounts().Get(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to get accounts: %w", err)
			}

			return outputAccounts(accounts)
		},
	}

	cmd.Flags().StringSliceVar(&accountIDs, "account-ids", nil, "restrict to these account IDs")

	return cmd
}

func newAccountsBalancesCommand() *cobra.Command {
	var accountIDs []string

	cmd := &cobra.Command{
		Use:   "balances ACCESS_TOKEN",
		Short: "Get real-time balances for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &plaid.GetBalancesRequest{AccessToken: args[0]}
			if len(accountIDs) > 0 {
				request.Options = &plaid.BalancesFilter{AccountIDs: accountIDs}
			}

			accounts, err := client.Accounts().GetBalances(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to get balances: %w", err)
			}

			return outputAccounts(accounts)
		},
	}

	cmd.Flags().StringSliceVar(&accountIDs, "account-ids", nil, "restrict to these account IDs")

	return cmd
}

func outputAccounts(accounts []plaid.Account) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(accounts)
	case constants.FormatYAML:
		return renderYAML(accounts)
	default:
		return renderAccountsTable(accounts)
	}
}

func renderAccountsTable(accounts []plaid.Account) error {
	if len(accounts) == 0 {
		fmt.Println("No accounts found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Subtype", "Mask", "Available", "Current")

	for _, account := range accounts {
		_ = table.Append(
			account.AccountID,
			account.Name,
			string(account.Type),
			orNotAvailable(account.Subtype),
			orNotAvailable(account.Mask),
			formatAmount(account.Balances.Available, account.Balances.ISOCurrencyCode),
			formatAmount(account.Balances.Current, account.Balances.ISOCurrencyCode),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

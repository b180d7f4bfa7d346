package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "txns"},
		Short:   "Fetch transaction history",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsRefreshCommand())
	cmd.AddCommand(newTransactionsCategoriesCommand())

	return cmd
}

//nolint:funlen
func newTransactionsListCommand() *cobra.Command {
	var (
		startDate  string
		endDate    string
		count      int
		offset     int
		allPages   bool
		accountIDs []string
	)

	cmd := &cobra.Command{
		Use:   "list ACCESS_TOKEN",
		Short: "List transactions for an item",
		Long:  "List transactions within a date range. By default one page is fetched; --all drains the full range.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			// Default to the trailing 30 days.
			if endDate == "" {
				endDate = time.Now().Format("2006-01-02")
			}

			if startDate == "" {
				startDate = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
			}

			request := &plaid.GetTransactionsRequest{
				AccessToken: args[0],
				StartDate:   startDate,
				EndDate:     endDate,
				Options: &plaid.TransactionOptions{
					AccountIDs: accountIDs,
					Count:      count,
					Offset:     offset,
				},
			}

			ctx := context.Background()

			if allPages {
				pager := plaid.NewTransactionsPager(client.Transactions(), request)

				transactions, err := pager.All(ctx)
				if err != nil {
					return fmt.Errorf("failed to list transactions: %w", err)
				}

				return outputTransactions(transactions, len(transactions))
			}

			result, err := client.Transactions().Get(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return outputTransactions(result.Transactions, result.TotalTransactions)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "start of the date range (YYYY-MM-DD, default 30 days ago)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "end of the date range (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&count, "count", plaid.DefaultTransactionsPageSize, "transactions per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of transactions to skip")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().StringSliceVar(&accountIDs, "account-ids", nil, "restrict to these account IDs")

	return cmd
}

func newTransactionsRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh ACCESS_TOKEN",
		Short: "Trigger an on-demand transactions update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Transactions().Refresh(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to refresh transactions: %w", err)
			}

			fmt.Println("Refresh initiated")

			return nil
		},
	}
}

func newTransactionsCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the transaction category taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			categories, err := client.Transactions().Categories(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return renderJSON(categories)
			case constants.FormatYAML:
				return renderYAML(categories)
			default:
				return renderCategoriesTable(categories)
			}
		},
	}
}

func outputTransactions(transactions []plaid.Transaction, total int) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(transactions)
	case constants.FormatYAML:
		return renderYAML(transactions)
	default:
		return renderTransactionsTable(transactions, total)
	}
}

func renderTransactionsTable(transactions []plaid.Transaction, total int) error {
	if len(transactions) == 0 {
		fmt.Println("No transactions found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Date", "Name", "Amount", "Category", "Pending")

	for _, txn := range transactions {
		amount := strconv.FormatFloat(txn.Amount, 'f', 2, 64)
		if txn.ISOCurrencyCode != "" {
			amount += " " + txn.ISOCurrencyCode
		}

		_ = table.Append(
			txn.Date,
			txn.Name,
			amount,
			strings.Join(txn.Category, " > "),
			strconv.FormatBool(txn.Pending),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nShowing %d of %d transactions\n", len(transactions), total)

	return nil
}

func renderCategoriesTable(categories []plaid.Category) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Group", "Hierarchy")

	for _, category := range categories {
		_ = table.Append(category.CategoryID, category.Group, strings.Join(category.Hierarchy, " > "))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

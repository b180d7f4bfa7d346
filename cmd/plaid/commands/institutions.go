package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// NewInstitutionsCommand creates the institutions command group.
func NewInstitutionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "institutions",
		Aliases: []string{"institution", "inst"},
		Short:   "Look up financial institutions",
		Long:    "Search, get, and list the financial institutions supported by the API",
	}

	cmd.AddCommand(newInstitutionsSearchCommand())
	cmd.AddCommand(newInstitutionsGetCommand())
	cmd.AddCommand(newInstitutionsListCommand())

	return cmd
}

func newInstitutionsSearchCommand() *cobra.Command {
	var (
		countryCodes []string
		products     []string
	)

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search institutions by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			institutions, err := client.Institutions().Search(context.Background(), &plaid.InstitutionsSearchRequest{
				Query:        args[0],
				Products:     products,
				CountryCodes: countryCodes,
			})
			if err != nil {
				return fmt.Errorf("failed to search institutions: %w", err)
			}

			return outputInstitutions(institutions)
		},
	}

	cmd.Flags().StringSliceVar(&countryCodes, "country-codes", []string{"US"}, "ISO 3166-1 alpha-2 country codes")
	cmd.Flags().StringSliceVar(&products, "products", nil, "filter by supported products")

	return cmd
}

func newInstitutionsGetCommand() *cobra.Command {
	var countryCodes []string

	cmd := &cobra.Command{
		Use:   "get INSTITUTION_ID",
		Short: "Get a single institution by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			institution, err := client.Institutions().Get(context.Background(), &plaid.InstitutionGetRequest{
				InstitutionID: args[0],
				CountryCodes:  countryCodes,
				Options:       &plaid.InstitutionGetFilter{IncludeOptionalMetadata: true},
			})
			if err != nil {
				return fmt.Errorf("failed to get institution: %w", err)
			}

			switch viper.GetString("output") {
			case constants.FormatJSON:
				return renderJSON(institution)
			case constants.FormatYAML:
				return renderYAML(institution)
			default:
				return renderInstitutionDetail(institution)
			}
		},
	}

	cmd.Flags().StringSliceVar(&countryCodes, "country-codes", []string{"US"}, "ISO 3166-1 alpha-2 country codes")

	return cmd
}

func newInstitutionsListCommand() *cobra.Command {
	var (
		count        int
		offset       int
		countryCodes []string
		products     []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List supported institutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count > constants.MaxInstitutionsPerRequest {
				return fmt.Errorf("%w: at most %d institutions per request",
					ErrCountTooLarge, constants.MaxInstitutionsPerRequest)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &plaid.InstitutionsGetRequest{
				Count:        count,
				Offset:       offset,
				CountryCodes: countryCodes,
			}
			if len(products) > 0 {
				request.Options = &plaid.InstitutionsGetFilter{Products: products}
			}

			institutions, err := client.Institutions().List(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to list institutions: %w", err)
			}

			return outputInstitutions(institutions)
		},
	}

	cmd.Flags().IntVar(&count, "count", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of institutions to skip")
	cmd.Flags().StringSliceVar(&countryCodes, "country-codes", []string{"US"}, "ISO 3166-1 alpha-2 country codes")
	cmd.Flags().StringSliceVar(&products, "products", nil, "filter by supported products")

	return cmd
}

func outputInstitutions(institutions []plaid.Institution) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(institutions)
	case constants.FormatYAML:
		return renderYAML(institutions)
	default:
		return renderInstitutionsTable(institutions)
	}
}

func renderInstitutionsTable(institutions []plaid.Institution) error {
	if len(institutions) == 0 {
		fmt.Println("No institutions found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Products", "Countries", "OAuth")

	for _, institution := range institutions {
		_ = table.Append(
			institution.InstitutionID,
			institution.Name,
			strings.Join(institution.Products, ", "),
			strings.Join(institution.CountryCodes, ", "),
			strconv.FormatBool(institution.OAuth),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderInstitutionDetail(institution *plaid.Institution) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", institution.InstitutionID)
	_ = table.Append("Name", institution.Name)
	_ = table.Append("Products", strings.Join(institution.Products, ", "))
	_ = table.Append("Countries", strings.Join(institution.CountryCodes, ", "))
	_ = table.Append("URL", orNotAvailable(institution.URL))
	_ = table.Append("Primary Color", orNotAvailable(institution.PrimaryColor))
	_ = table.Append("OAuth", strconv.FormatBool(institution.OAuth))

	if len(institution.RoutingNumbers) > 0 {
		_ = table.Append("Routing Numbers", strings.Join(institution.RoutingNumbers, "\n"))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

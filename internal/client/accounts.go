package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// AccountsClient implements plaid.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// Get implements plaid.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, request *plaid.GetAccountsRequest) ([]plaid.Account, error) {
	resp, err := c.httpClient.Post(ctx, "/accounts/get", request)
	if err != nil {
		return nil, fmt.Errorf("getting accounts: %w", err)
	}

	var result plaid.GetAccountsResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing accounts response", Err: err}
	}

	return result.Accounts, nil
}

// GetBalances implements plaid.AccountsClient.GetBalances.
func (c *AccountsClient) GetBalances(ctx context.Context, request *plaid.GetBalancesRequest) ([]plaid.Account, error) {
	resp, err := c.httpClient.Post(ctx, "/accounts/balance/get", request)
	if err != nil {
		return nil, fmt.Errorf("getting balances: %w", err)
	}

	var result plaid.GetBalancesResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing balances response", Err: err}
	}

	return result.Accounts, nil
}

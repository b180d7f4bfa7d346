package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/plaid-client/internal/client"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestAccountsClient_Get(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/accounts/get", http.StatusOK, plaid.GetAccountsResponse{
		Accounts: []plaid.Account{
			{
				AccountID: "acct-1",
				Name:      "Plaid Checking",
				Type:      plaid.AccountTypeDepository,
				Subtype:   "checking",
				Balances: plaid.Balance{
					Available:       floatPtr(100),
					Current:         floatPtr(110),
					ISOCurrencyCode: "USD",
				},
			},
		},
		Item:      plaid.Item{ItemID: "item-1"},
		RequestID: "req-1",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	accounts, err := testClient.Accounts().Get(context.Background(), &plaid.GetAccountsRequest{
		AccessToken: "access-sandbox-123",
	})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acct-1", accounts[0].AccountID)
	assert.Equal(t, plaid.AccountTypeDepository, accounts[0].Type)
	require.NotNil(t, accounts[0].Balances.Available)
	assert.InEpsilon(t, 100.0, *accounts[0].Balances.Available, 0.001)
}

func TestAccountsClient_GetBalances(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/accounts/balance/get", http.StatusOK, plaid.GetBalancesResponse{
		Accounts: []plaid.Account{
			{
				AccountID: "acct-1",
				Balances: plaid.Balance{
					Current:         floatPtr(110),
					ISOCurrencyCode: "USD",
				},
			},
		},
		Item:      plaid.Item{ItemID: "item-1"},
		RequestID: "req-2",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	accounts, err := testClient.Accounts().GetBalances(context.Background(), &plaid.GetBalancesRequest{
		AccessToken: "access-sandbox-123",
	})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Nil(t, accounts[0].Balances.Available)
}

func TestAccountsClient_GetRateLimited(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/accounts/get", http.StatusTooManyRequests, plaid.Error{
		ErrorType:    plaid.ErrorTypeRateLimitExceeded,
		ErrorCode:    "ACCOUNTS_LIMIT",
		ErrorMessage: "rate limit exceeded for attempts to access this item",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	accounts, err := testClient.Accounts().Get(context.Background(), &plaid.GetAccountsRequest{
		AccessToken: "access-sandbox-123",
	})
	require.Error(t, err)
	assert.Nil(t, accounts)
	assert.True(t, plaid.IsRateLimited(err))
}

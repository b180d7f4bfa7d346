package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/plaid-client/internal/client"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// newTransactionsServer serves /transactions/get over a fixed history of
// total transactions, honoring the count and offset options of each request.
func newTransactionsServer(t *testing.T, total int, requests *[]plaid.TransactionOptions) *httptest.Server {
	t.Helper()

	history := make([]plaid.Transaction, total)
	for i := range history {
		history[i] = plaid.Transaction{
			TransactionID: fmt.Sprintf("txn-%d", i),
			AccountID:     "acct-1",
			Amount:        float64(i) + 0.5,
			Date:          "2021-06-01",
			Name:          fmt.Sprintf("Purchase %d", i),
		}
	}

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/transactions/get", request.URL.Path)

		var req plaid.GetTransactionsRequest

		client.DecodeRequest(t, request, &req)
		require.NotNil(t, req.Options)

		*requests = append(*requests, *req.Options)

		start := req.Options.Offset
		if start > total {
			start = total
		}

		end := start + req.Options.Count
		if end > total {
			end = total
		}

		_ = json.NewEncoder(writer).Encode(plaid.GetTransactionsResponse{
			Transactions:      history[start:end],
			TotalTransactions: total,
			Item:              plaid.Item{ItemID: "item-1"},
			RequestID:         "req-1",
		})
	}))
}

func TestTransactionsClient_Get(t *testing.T) {
	t.Parallel()

	var requests []plaid.TransactionOptions

	server := newTransactionsServer(t, 3, &requests)
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Transactions().Get(context.Background(), &plaid.GetTransactionsRequest{
		AccessToken: "access-sandbox-123",
		StartDate:   "2021-01-01",
		EndDate:     "2021-09-01",
		Options:     &plaid.TransactionOptions{Count: 10},
	})
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 3)
	assert.Equal(t, 3, result.TotalTransactions)
}

func TestTransactionsClient_Refresh(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/transactions/refresh", http.StatusOK, plaid.RefreshTransactionsResponse{
		RequestID: "req-1",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	err := testClient.Transactions().Refresh(context.Background(), "access-sandbox-123")
	require.NoError(t, err)
}

func TestTransactionsClient_Categories(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/categories/get", http.StatusOK, plaid.GetCategoriesResponse{
		Categories: []plaid.Category{
			{CategoryID: "10000000", Group: "special", Hierarchy: []string{"Bank Fees"}},
		},
		RequestID: "req-1",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	categories, err := testClient.Transactions().Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "10000000", categories[0].CategoryID)
}

func TestTransactionsPager_DrainsHistory(t *testing.T) {
	t.Parallel()

	var requests []plaid.TransactionOptions

	server := newTransactionsServer(t, 15, &requests)
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	pager := plaid.NewTransactionsPager(testClient.Transactions(), &plaid.GetTransactionsRequest{
		AccessToken: "access-sandbox-123",
		StartDate:   "2021-01-01",
		EndDate:     "2021-09-01",
		Options:     &plaid.TransactionOptions{Count: 10},
	})

	all, err := pager.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 15)
	assert.False(t, pager.HasMore())

	require.Len(t, requests, 2)
	assert.Equal(t, 0, requests[0].Offset)
	assert.Equal(t, 10, requests[1].Offset)
	assert.Equal(t, "txn-0", all[0].TransactionID)
	assert.Equal(t, "txn-14", all[14].TransactionID)
}

func TestTransactionsPager_StartingOffset(t *testing.T) {
	t.Parallel()

	var requests []plaid.TransactionOptions

	server := newTransactionsServer(t, 12, &requests)
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	// 12 total, starting at offset 5 with pages of 10: one page of 7
	// remains.
	pager := plaid.NewTransactionsPager(testClient.Transactions(), &plaid.GetTransactionsRequest{
		AccessToken: "access-sandbox-123",
		StartDate:   "2021-01-01",
		EndDate:     "2021-09-01",
		Options:     &plaid.TransactionOptions{Count: 10, Offset: 5},
	})

	batch, err := pager.NextPage(context.Background())
	require.NoError(t, err)
	assert.Len(t, batch, 7)
	assert.Equal(t, "txn-5", batch[0].TransactionID)
	assert.False(t, pager.HasMore())

	_, err = pager.NextPage(context.Background())
	require.ErrorIs(t, err, plaid.ErrNoMorePages)

	require.Len(t, requests, 1)
	assert.Equal(t, 5, requests[0].Offset)
	assert.Equal(t, 10, requests[0].Count)
}

func TestTransactionsPager_FirstFetchFails(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/transactions/get", http.StatusBadRequest, plaid.Error{
		ErrorType:    plaid.ErrorTypeItemError,
		ErrorCode:    "PRODUCT_NOT_READY",
		ErrorMessage: "the requested product is not yet ready",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	pager := plaid.NewTransactionsPager(testClient.Transactions(), &plaid.GetTransactionsRequest{
		AccessToken: "access-sandbox-123",
		StartDate:   "2021-01-01",
		EndDate:     "2021-09-01",
	})

	batch, err := pager.NextPage(context.Background())
	require.Error(t, err)
	assert.Nil(t, batch)
	assert.True(t, plaid.IsItemError(err))

	// The pager is terminal after an error.
	assert.False(t, pager.HasMore())

	_, err = pager.NextPage(context.Background())
	require.ErrorIs(t, err, plaid.ErrNoMorePages)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// TransactionsClient implements plaid.TransactionsClient.
type TransactionsClient struct {
	httpClient *http.Client
}

// NewTransactionsClient creates a new transactions client.
func NewTransactionsClient(httpClient *http.Client) *TransactionsClient {
	return &TransactionsClient{
		httpClient: httpClient,
	}
}

// Get implements plaid.TransactionsClient.Get.
func (c *TransactionsClient) Get(ctx context.Context, request *plaid.GetTransactionsRequest) (*plaid.GetTransactionsResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/transactions/get", request)
	if err != nil {
		return nil, fmt.Errorf("getting transactions: %w", err)
	}

	var result plaid.GetTransactionsResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing transactions response", Err: err}
	}

	return &result, nil
}

// Refresh implements plaid.TransactionsClient.Refresh.
func (c *TransactionsClient) Refresh(ctx context.Context, accessToken string) error {
	request := plaid.RefreshTransactionsRequest{AccessToken: accessToken}

	_, err := c.httpClient.Post(ctx, "/transactions/refresh", &request)
	if err != nil {
		return fmt.Errorf("refreshing transactions: %w", err)
	}

	return nil
}

// Categories implements plaid.TransactionsClient.Categories.
func (c *TransactionsClient) Categories(ctx context.Context) ([]plaid.Category, error) {
	resp, err := c.httpClient.Post(ctx, "/categories/get", &plaid.GetCategoriesRequest{})
	if err != nil {
		return nil, fmt.Errorf("getting categories: %w", err)
	}

	var result plaid.GetCategoriesResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing categories response", Err: err}
	}

	return result.Categories, nil
}

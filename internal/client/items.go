package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// ItemsClient implements plaid.ItemsClient.
type ItemsClient struct {
	httpClient *http.Client
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient *http.Client) *ItemsClient {
	return &ItemsClient{
		httpClient: httpClient,
	}
}

// Get implements plaid.ItemsClient.Get.
func (c *ItemsClient) Get(ctx context.Context, accessToken string) (*plaid.Item, error) {
	request := plaid.GetItemRequest{AccessToken: accessToken}

	resp, err := c.httpClient.Post(ctx, "/item/get", &request)
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	var result plaid.GetItemResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing item response", Err: err}
	}

	return &result.Item, nil
}

// Remove implements plaid.ItemsClient.Remove.
func (c *ItemsClient) Remove(ctx context.Context, accessToken string) error {
	request := plaid.RemoveItemRequest{AccessToken: accessToken}

	_, err := c.httpClient.Post(ctx, "/item/remove", &request)
	if err != nil {
		return fmt.Errorf("removing item: %w", err)
	}

	return nil
}

// UpdateWebhook implements plaid.ItemsClient.UpdateWebhook.
func (c *ItemsClient) UpdateWebhook(ctx context.Context, accessToken, webhook string) (*plaid.Item, error) {
	request := plaid.UpdateItemWebhookRequest{
		AccessToken: accessToken,
		Webhook:     webhook,
	}

	resp, err := c.httpClient.Post(ctx, "/item/webhook/update", &request)
	if err != nil {
		return nil, fmt.Errorf("updating item webhook: %w", err)
	}

	var result plaid.UpdateItemWebhookResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing item webhook response", Err: err}
	}

	return &result.Item, nil
}

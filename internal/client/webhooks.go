package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// WebhooksClient implements plaid.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// GetVerificationKey implements plaid.WebhooksClient.GetVerificationKey.
func (c *WebhooksClient) GetVerificationKey(ctx context.Context, keyID string) (*plaid.GetWebhookVerificationKeyResponse, error) {
	request := plaid.GetWebhookVerificationKeyRequest{KeyID: keyID}

	resp, err := c.httpClient.Post(ctx, "/webhook_verification_key/get", &request)
	if err != nil {
		return nil, fmt.Errorf("getting webhook verification key: %w", err)
	}

	var result plaid.GetWebhookVerificationKeyResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing webhook verification key response", Err: err}
	}

	return &result, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// IdentityClient implements plaid.IdentityClient.
type IdentityClient struct {
	httpClient *http.Client
}

// NewIdentityClient creates a new identity client.
func NewIdentityClient(httpClient *http.Client) *IdentityClient {
	return &IdentityClient{
		httpClient: httpClient,
	}
}

// Get implements plaid.IdentityClient.Get.
func (c *IdentityClient) Get(ctx context.Context, request *plaid.GetIdentityRequest) (*plaid.GetIdentityResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/identity/get", request)
	if err != nil {
		return nil, fmt.Errorf("getting identity data: %w", err)
	}

	var result plaid.GetIdentityResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing identity response", Err: err}
	}

	return &result, nil
}

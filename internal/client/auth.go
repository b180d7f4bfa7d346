package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// AuthClient implements plaid.AuthClient.
type AuthClient struct {
	httpClient *http.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client) *AuthClient {
	return &AuthClient{
		httpClient: httpClient,
	}
}

// Get implements plaid.AuthClient.Get.
func (c *AuthClient) Get(ctx context.Context, request *plaid.GetAuthRequest) (*plaid.GetAuthResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/auth/get", request)
	if err != nil {
		return nil, fmt.Errorf("getting auth data: %w", err)
	}

	var result plaid.GetAuthResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing auth response", Err: err}
	}

	return &result, nil
}

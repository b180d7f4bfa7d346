package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// TokensClient implements plaid.TokensClient.
type TokensClient struct {
	httpClient *http.Client
}

// NewTokensClient creates a new tokens client.
func NewTokensClient(httpClient *http.Client) *TokensClient {
	return &TokensClient{
		httpClient: httpClient,
	}
}

// CreateLinkToken implements plaid.TokensClient.CreateLinkToken.
func (c *TokensClient) CreateLinkToken(ctx context.Context, request *plaid.CreateLinkTokenRequest) (*plaid.CreateLinkTokenResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/link/token/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating link token: %w", err)
	}

	var result plaid.CreateLinkTokenResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing link token response", Err: err}
	}

	return &result, nil
}

// GetLinkToken implements plaid.TokensClient.GetLinkToken.
func (c *TokensClient) GetLinkToken(ctx context.Context, linkToken string) (*plaid.GetLinkTokenResponse, error) {
	request := plaid.GetLinkTokenRequest{LinkToken: linkToken}

	resp, err := c.httpClient.Post(ctx, "/link/token/get", &request)
	if err != nil {
		return nil, fmt.Errorf("getting link token: %w", err)
	}

	var result plaid.GetLinkTokenResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing link token response", Err: err}
	}

	return &result, nil
}

// ExchangePublicToken implements plaid.TokensClient.ExchangePublicToken.
func (c *TokensClient) ExchangePublicToken(ctx context.Context, publicToken string) (*plaid.ExchangePublicTokenResponse, error) {
	request := plaid.ExchangePublicTokenRequest{PublicToken: publicToken}

	resp, err := c.httpClient.Post(ctx, "/item/public_token/exchange", &request)
	if err != nil {
		return nil, fmt.Errorf("exchanging public token: %w", err)
	}

	var result plaid.ExchangePublicTokenResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing token exchange response", Err: err}
	}

	return &result, nil
}

// InvalidateAccessToken implements plaid.TokensClient.InvalidateAccessToken.
func (c *TokensClient) InvalidateAccessToken(ctx context.Context, accessToken string) (*plaid.InvalidateAccessTokenResponse, error) {
	request := plaid.InvalidateAccessTokenRequest{AccessToken: accessToken}

	resp, err := c.httpClient.Post(ctx, "/item/access_token/invalidate", &request)
	if err != nil {
		return nil, fmt.Errorf("invalidating access token: %w", err)
	}

	var result plaid.InvalidateAccessTokenResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing token invalidate response", Err: err}
	}

	return &result, nil
}

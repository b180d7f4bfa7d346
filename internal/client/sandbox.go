package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// SandboxClient implements plaid.SandboxClient.
type SandboxClient struct {
	httpClient *http.Client
}

// NewSandboxClient creates a new sandbox client.
func NewSandboxClient(httpClient *http.Client) *SandboxClient {
	return &SandboxClient{
		httpClient: httpClient,
	}
}

// CreatePublicToken implements plaid.SandboxClient.CreatePublicToken.
func (c *SandboxClient) CreatePublicToken(ctx context.Context, request *plaid.CreatePublicTokenRequest) (string, error) {
	resp, err := c.httpClient.Post(ctx, "/sandbox/public_token/create", request)
	if err != nil {
		return "", fmt.Errorf("creating public token: %w", err)
	}

	var result plaid.CreatePublicTokenResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return "", &plaid.ParseError{Op: "parsing public token response", Err: err}
	}

	return result.PublicToken, nil
}

// ResetLogin implements plaid.SandboxClient.ResetLogin.
func (c *SandboxClient) ResetLogin(ctx context.Context, accessToken string) error {
	request := plaid.ResetLoginRequest{AccessToken: accessToken}

	resp, err := c.httpClient.Post(ctx, "/sandbox/item/reset_login", &request)
	if err != nil {
		return fmt.Errorf("resetting login: %w", err)
	}

	var result plaid.ResetLoginResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return &plaid.ParseError{Op: "parsing reset login response", Err: err}
	}

	// The endpoint can report failure through the body while still
	// returning a success status.
	if !result.ResetLogin {
		return &plaid.Error{
			ErrorMessage: "failed to reset login",
			RequestID:    result.RequestID,
		}
	}

	return nil
}

// SetVerificationStatus implements plaid.SandboxClient.SetVerificationStatus.
func (c *SandboxClient) SetVerificationStatus(ctx context.Context, request *plaid.SetVerificationStatusRequest) error {
	_, err := c.httpClient.Post(ctx, "/sandbox/item/set_verification_status", request)
	if err != nil {
		return fmt.Errorf("setting verification status: %w", err)
	}

	return nil
}

// FireWebhook implements plaid.SandboxClient.FireWebhook.
func (c *SandboxClient) FireWebhook(ctx context.Context, request *plaid.FireWebhookRequest) (*plaid.FireWebhookResponse, error) {
	resp, err := c.httpClient.Post(ctx, "/sandbox/item/fire_webhook", request)
	if err != nil {
		return nil, fmt.Errorf("firing webhook: %w", err)
	}

	var result plaid.FireWebhookResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &plaid.ParseError{Op: "parsing fire webhook response", Err: err}
	}

	return &result, nil
}

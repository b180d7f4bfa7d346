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

func TestSandboxClient_CreatePublicToken(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/sandbox/public_token/create", http.StatusOK, plaid.CreatePublicTokenResponse{
		PublicToken: "public-sandbox-xyz",
		RequestID:   "req-1",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	publicToken, err := testClient.Sandbox().CreatePublicToken(context.Background(), &plaid.CreatePublicTokenRequest{
		InstitutionID:   "ins_109508",
		InitialProducts: []string{"transactions"},
	})
	require.NoError(t, err)
	assert.Equal(t, "public-sandbox-xyz", publicToken)
}

func TestSandboxClient_ResetLogin(t *testing.T) {
	t.Parallel()
	t.Run("successful reset", func(t *testing.T) {
		t.Parallel()

		server := client.NewEndpointServer(t, "/sandbox/item/reset_login", http.StatusOK, plaid.ResetLoginResponse{
			ResetLogin: true,
			RequestID:  "req-1",
		})
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		err := testClient.Sandbox().ResetLogin(context.Background(), "access-sandbox-123")
		require.NoError(t, err)
	})

	t.Run("reset reported false on success status", func(t *testing.T) {
		t.Parallel()

		server := client.NewEndpointServer(t, "/sandbox/item/reset_login", http.StatusOK, plaid.ResetLoginResponse{
			ResetLogin: false,
			RequestID:  "req-2",
		})
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		err := testClient.Sandbox().ResetLogin(context.Background(), "access-sandbox-123")
		require.Error(t, err)

		apiErr, ok := plaid.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "failed to reset login", apiErr.ErrorMessage)
		assert.Equal(t, "req-2", apiErr.RequestID)
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()

		server := client.NewEndpointServer(t, "/sandbox/item/reset_login", http.StatusBadRequest, plaid.Error{
			ErrorType:    plaid.ErrorTypeInvalidInput,
			ErrorCode:    "INVALID_ACCESS_TOKEN",
			ErrorMessage: "could not find matching access token",
		})
		defer server.Close()

		testClient := client.NewTestClient(server.URL)

		err := testClient.Sandbox().ResetLogin(context.Background(), "bad-token")
		require.Error(t, err)

		apiErr, ok := plaid.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_ACCESS_TOKEN", apiErr.ErrorCode)
	})
}

func TestSandboxClient_SetVerificationStatus(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/sandbox/item/set_verification_status", http.StatusOK, plaid.SetVerificationStatusResponse{
		RequestID: "req-1",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	err := testClient.Sandbox().SetVerificationStatus(context.Background(), &plaid.SetVerificationStatusRequest{
		AccessToken:        "access-sandbox-123",
		AccountID:          "acct-1",
		VerificationStatus: "automatically_verified",
	})
	require.NoError(t, err)
}

func TestSandboxClient_FireWebhook(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/sandbox/item/fire_webhook", http.StatusOK, plaid.FireWebhookResponse{
		WebhookFired: true,
		RequestID:    "req-1",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Sandbox().FireWebhook(context.Background(), &plaid.FireWebhookRequest{
		AccessToken: "access-sandbox-123",
		WebhookCode: plaid.WebhookCodeDefaultUpdate,
	})
	require.NoError(t, err)
	assert.True(t, result.WebhookFired)
}

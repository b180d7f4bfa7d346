package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/plaid-client/internal/client"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

func TestTokensClient_CreateLinkToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/link/token/create", request.URL.Path)

		var req plaid.CreateLinkTokenRequest

		client.DecodeRequest(t, request, &req)
		assert.Equal(t, "ledgerkit", req.ClientName)
		assert.Equal(t, "user-1", req.User.ClientUserID)

		_ = json.NewEncoder(writer).Encode(plaid.CreateLinkTokenResponse{
			LinkToken:  "link-sandbox-abc",
			Expiration: "2021-09-01T12:00:00Z",
			RequestID:  "req-1",
		})
	}))
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Tokens().CreateLinkToken(context.Background(), &plaid.CreateLinkTokenRequest{
		ClientName:   "ledgerkit",
		Language:     "en",
		CountryCodes: []string{"US"},
		User:         plaid.NewLinkUser("user-1"),
		Products:     []string{"transactions"},
	})
	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-abc", result.LinkToken)
}

func TestTokensClient_GetLinkToken(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/link/token/get", http.StatusOK, plaid.GetLinkTokenResponse{
		LinkToken: "link-sandbox-abc",
		RequestID: "req-2",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Tokens().GetLinkToken(context.Background(), "link-sandbox-abc")
	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-abc", result.LinkToken)
}

func TestTokensClient_ExchangePublicToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/item/public_token/exchange", request.URL.Path)

		var req plaid.ExchangePublicTokenRequest

		client.DecodeRequest(t, request, &req)
		assert.Equal(t, "public-sandbox-xyz", req.PublicToken)

		_ = json.NewEncoder(writer).Encode(plaid.ExchangePublicTokenResponse{
			AccessToken: "access-sandbox-123",
			ItemID:      "item-1",
			RequestID:   "req-3",
		})
	}))
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Tokens().ExchangePublicToken(context.Background(), "public-sandbox-xyz")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-123", result.AccessToken)
	assert.Equal(t, "item-1", result.ItemID)
}

func TestTokensClient_InvalidateAccessToken(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/item/access_token/invalidate", http.StatusOK, plaid.InvalidateAccessTokenResponse{
		NewAccessToken: "access-sandbox-456",
		RequestID:      "req-4",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Tokens().InvalidateAccessToken(context.Background(), "access-sandbox-123")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-456", result.NewAccessToken)
}

func TestTokensClient_ExchangeInvalidToken(t *testing.T) {
	t.Parallel()

	server := client.NewEndpointServer(t, "/item/public_token/exchange", http.StatusBadRequest, plaid.Error{
		ErrorType:    plaid.ErrorTypeInvalidInput,
		ErrorCode:    "INVALID_PUBLIC_TOKEN",
		ErrorMessage: "provided public token is in an invalid format",
	})
	defer server.Close()

	testClient := client.NewTestClient(server.URL)

	result, err := testClient.Tokens().ExchangePublicToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Nil(t, result)

	apiErr, ok := plaid.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_PUBLIC_TOKEN", apiErr.ErrorCode)
}

package plaidclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/plaid-client/pkg/plaid"
	"github.com/ledgerkit/plaid-client/pkg/plaidclient"
)

func TestNew(t *testing.T) {
	t.Run("creates client with config", func(t *testing.T) {
		client, err := plaidclient.New(&plaid.Config{
			ClientID: "client-id",
			Secret:   "secret",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		client, err := plaidclient.New(nil)
		require.ErrorIs(t, err, plaid.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing client ID", func(t *testing.T) {
		_, err := plaidclient.New(&plaid.Config{Secret: "secret"})
		require.ErrorIs(t, err, plaid.ErrClientIDRequired)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := plaidclient.New(&plaid.Config{ClientID: "client-id"})
		require.ErrorIs(t, err, plaid.ErrSecretRequired)
	})
}

func TestNewWithCredentials(t *testing.T) {
	client, err := plaidclient.NewWithCredentials("client-id", "secret", plaid.Sandbox)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Run("reads credentials and environment", func(t *testing.T) {
		t.Setenv("PLAID_CLIENT_ID", "client-id")
		t.Setenv("PLAID_SECRET", "secret")
		t.Setenv("PLAID_ENV", "development")

		client, err := plaidclient.NewFromEnvironment()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("PLAID_CLIENT_ID", "")
		t.Setenv("PLAID_SECRET", "")

		_, err := plaidclient.NewFromEnvironment()
		require.Error(t, err)
	})
}

func TestClientIntegration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/item/get":
			assert.Equal(t, "client-id", request.Header.Get("PLAID-CLIENT-ID"))
			assert.Equal(t, "secret", request.Header.Get("PLAID-SECRET"))

			_ = json.NewEncoder(writer).Encode(plaid.GetItemResponse{
				Item:      plaid.Item{ItemID: "item-1"},
				RequestID: "req-1",
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := plaidclient.NewWithCredentials("client-id", "secret", plaid.CustomEnvironment(server.URL))
	require.NoError(t, err)

	item, err := client.Items().Get(context.Background(), "access-sandbox-123")
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ItemID)
}

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	internalhttp "github.com/ledgerkit/plaid-client/internal/http"
)

// NewTestClient creates a client pointed at baseURL with sandbox test
// credentials.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, internalhttp.Credentials{
		ClientID: "test-client-id",
		Secret:   "test-secret",
	})

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// NewEndpointServer starts a test server that asserts the request hits
// expectedPath with a POST carrying the auth headers, then replies with
// statusCode and response encoded as JSON.
func NewEndpointServer(t *testing.T, expectedPath string, statusCode int, response interface{}) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
		assert.Equal(t, "test-client-id", request.Header.Get("PLAID-CLIENT-ID"))
		assert.Equal(t, "test-secret", request.Header.Get("PLAID-SECRET"))

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)

		if response != nil {
			_ = json.NewEncoder(writer).Encode(response)
		}
	}))
}

// DecodeRequest decodes the request body into out and fails the test on a
// decoding error.
func DecodeRequest(t *testing.T, request *http.Request, out interface{}) {
	t.Helper()

	err := json.NewDecoder(request.Body).Decode(out)
	assert.NoError(t, err)
}

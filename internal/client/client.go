// Package client implements the plaid.Client interface on top of the
// internal HTTP dispatcher, one resource client per endpoint group.
package client

import (
	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/internal/http"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// Client implements the plaid.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     plaid.Logger

	// Resource clients
	institutions plaid.InstitutionsClient
	tokens       plaid.TokensClient
	items        plaid.ItemsClient
	accounts     plaid.AccountsClient
	auth         plaid.AuthClient
	identity     plaid.IdentityClient
	transactions plaid.TransactionsClient
	sandbox      plaid.SandboxClient
	employers    plaid.EmployersClient
	webhooks     plaid.WebhooksClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *plaid.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from config. Credential validation happens in
// the public constructor; here the config is taken as given.
func New(config *plaid.Config) *Client {
	baseURL := config.Environment.BaseURL()

	credentials := http.Credentials{
		ClientID: config.ClientID,
		Secret:   config.Secret,
	}

	httpClient := http.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// Resource client accessors

// Institutions implements plaid.Client.Institutions.
func (c *Client) Institutions() plaid.InstitutionsClient {
	return c.institutions
}

// Tokens implements plaid.Client.Tokens.
func (c *Client) Tokens() plaid.TokensClient {
	return c.tokens
}

// Items implements plaid.Client.Items.
func (c *Client) Items() plaid.ItemsClient {
	return c.items
}

// Accounts implements plaid.Client.Accounts.
func (c *Client) Accounts() plaid.AccountsClient {
	return c.accounts
}

// Auth implements plaid.Client.Auth.
func (c *Client) Auth() plaid.AuthClient {
	return c.auth
}

// Identity implements plaid.Client.Identity.
func (c *Client) Identity() plaid.IdentityClient {
	return c.identity
}

// Transactions implements plaid.Client.Transactions.
func (c *Client) Transactions() plaid.TransactionsClient {
	return c.transactions
}

// Sandbox implements plaid.Client.Sandbox.
func (c *Client) Sandbox() plaid.SandboxClient {
	return c.sandbox
}

// Employers implements plaid.Client.Employers.
func (c *Client) Employers() plaid.EmployersClient {
	return c.employers
}

// Webhooks implements plaid.Client.Webhooks.
func (c *Client) Webhooks() plaid.WebhooksClient {
	return c.webhooks
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.institutions = NewInstitutionsClient(c.httpClient)
	c.tokens = NewTokensClient(c.httpClient)
	c.items = NewItemsClient(c.httpClient)
	c.accounts = NewAccountsClient(c.httpClient)
	c.auth = NewAuthClient(c.httpClient)
	c.identity = NewIdentityClient(c.httpClient)
	c.transactions = NewTransactionsClient(c.httpClient)
	c.sandbox = NewSandboxClient(c.httpClient)
	c.employers = NewEmployersClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
}

package plaid

import "context"

// Client is the top-level interface for the API. One instance holds a single
// credential pair and a fixed environment; it keeps no per-request state, so
// concurrent calls on the same instance are safe.
type Client interface {
	// Institutions returns the client for institution endpoints.
	Institutions() InstitutionsClient

	// Tokens returns the client for link and access token endpoints.
	Tokens() TokensClient

	// Items returns the client for item endpoints.
	Items() ItemsClient

	// Accounts returns the client for account and balance endpoints.
	Accounts() AccountsClient

	// Auth returns the client for the auth product.
	Auth() AuthClient

	// Identity returns the client for the identity product.
	Identity() IdentityClient

	// Transactions returns the client for transaction endpoints.
	Transactions() TransactionsClient

	// Sandbox returns the client for sandbox-only endpoints.
	Sandbox() SandboxClient

	// Employers returns the client for employer search.
	Employers() EmployersClient

	// Webhooks returns the client for webhook verification endpoints.
	Webhooks() WebhooksClient
}

// InstitutionsClient provides access to institution endpoints.
type InstitutionsClient interface {
	// Search returns institutions matching the query, up to ten per call.
	Search(ctx context.Context, request *InstitutionsSearchRequest) ([]Institution, error)

	// Get returns a single institution by its ID.
	Get(ctx context.Context, request *InstitutionGetRequest) (*Institution, error)

	// List returns supported institutions. Results are paginated by the
	// count and offset carried in the request.
	List(ctx context.Context, request *InstitutionsGetRequest) ([]Institution, error)
}

// TokensClient provides access to link token and access token endpoints.
type TokensClient interface {
	// CreateLinkToken creates a link_token required to initialize Link.
	CreateLinkToken(ctx context.Context, request *CreateLinkTokenRequest) (*CreateLinkTokenResponse, error)

	// GetLinkToken returns information about a link_token.
	GetLinkToken(ctx context.Context, linkToken string) (*GetLinkTokenResponse, error)

	// ExchangePublicToken exchanges an ephemeral public_token for an API
	// access_token.
	ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangePublicTokenResponse, error)

	// InvalidateAccessToken rotates the access_token for an item. The
	// previous token stops working immediately.
	InvalidateAccessToken(ctx context.Context, accessToken string) (*InvalidateAccessTokenResponse, error)
}

// ItemsClient provides access to item endpoints.
type ItemsClient interface {
	// Get returns the status of an item.
	Get(ctx context.Context, accessToken string) (*Item, error)

	// Remove deletes an item. The access token becomes invalid.
	Remove(ctx context.Context, accessToken string) error

	// UpdateWebhook changes the webhook URL associated with an item.
	UpdateWebhook(ctx context.Context, accessToken, webhook string) (*Item, error)
}

// AccountsClient provides access to account endpoints.
type AccountsClient interface {
	// Get returns the active accounts for an item. Responses may be cached
	// server-side; use GetBalances for real-time data.
	Get(ctx context.Context, request *GetAccountsRequest) ([]Account, error)

	// GetBalances returns real-time balance data for an item's accounts.
	GetBalances(ctx context.Context, request *GetBalancesRequest) ([]Account, error)
}

// AuthClient provides access to the auth product.
type AuthClient interface {
	// Get returns bank account and routing numbers for an item's checking
	// and savings accounts.
	Get(ctx context.Context, request *GetAuthRequest) (*GetAuthResponse, error)
}

// IdentityClient provides access to the identity product.
type IdentityClient interface {
	// Get returns account holder information on file with the institution.
	Get(ctx context.Context, request *GetIdentityRequest) (*GetIdentityResponse, error)
}

// TransactionsClient provides access to transaction endpoints.
type TransactionsClient interface {
	// Get returns one page of transaction history for an item.
	Get(ctx context.Context, request *GetTransactionsRequest) (*GetTransactionsResponse, error)

	// Refresh initiates on-demand extraction of the newest transactions.
	Refresh(ctx context.Context, accessToken string) error

	// Categories returns the taxonomy of transaction categories. Requires
	// no authentication.
	Categories(ctx context.Context) ([]Category, error)
}

// SandboxClient provides access to sandbox-only endpoints.
type SandboxClient interface {
	// CreatePublicToken creates a public_token for an institution without
	// going through Link. Sandbox environment only.
	CreatePublicToken(ctx context.Context, request *CreatePublicTokenRequest) (string, error)

	// ResetLogin forces an item into the ITEM_LOGIN_REQUIRED state.
	ResetLogin(ctx context.Context, accessToken string) error

	// SetVerificationStatus changes the verification status of an item to
	// simulate the micro-deposit flow.
	SetVerificationStatus(ctx context.Context, request *SetVerificationStatusRequest) error

	// FireWebhook triggers a DEFAULT_UPDATE webhook for an item.
	FireWebhook(ctx context.Context, request *FireWebhookRequest) (*FireWebhookResponse, error)
}

// EmployersClient provides access to employer search.
type EmployersClient interface {
	// Search queries known employers for use with deposit switch.
	Search(ctx context.Context, request *SearchEmployersRequest) ([]Employer, error)
}

// WebhooksClient provides access to webhook verification endpoints.
type WebhooksClient interface {
	// GetVerificationKey returns the JWK used to verify webhook JWTs.
	GetVerificationKey(ctx context.Context, keyID string) (*GetWebhookVerificationKeyResponse, error)
}

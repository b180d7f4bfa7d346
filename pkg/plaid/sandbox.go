package plaid

// CreatePublicTokenRequest is the request body for
// /sandbox/public_token/create.
type CreatePublicTokenRequest struct {
	InstitutionID   string                    `json:"institution_id"`
	InitialProducts []string                  `json:"initial_products"`
	Options         *CreatePublicTokenOptions `json:"options,omitempty"`
}

// CreatePublicTokenOptions configures the sandbox item created with the
// public token.
type CreatePublicTokenOptions struct {
	Webhook string `json:"webhook,omitempty"`
	// OverrideUsername replaces the default sandbox username "user_good".
	OverrideUsername string `json:"override_username,omitempty"`
	// OverridePassword replaces the default sandbox password "pass_good".
	OverridePassword string                         `json:"override_password,omitempty"`
	Transactions     *CreatePublicTokenTransactions `json:"transactions,omitempty"`
}

// CreatePublicTokenTransactions bounds the transaction history generated for
// a sandbox item.
type CreatePublicTokenTransactions struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// CreatePublicTokenResponse is the response body for
// /sandbox/public_token/create.
type CreatePublicTokenResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id,omitempty"`
}

// ResetLoginRequest is the request body for /sandbox/item/reset_login.
type ResetLoginRequest struct {
	AccessToken string `json:"access_token"`
}

// ResetLoginResponse is the response body for /sandbox/item/reset_login. A
// 2xx status with ResetLogin false still means the reset failed.
type ResetLoginResponse struct {
	ResetLogin bool   `json:"reset_login"`
	RequestID  string `json:"request_id,omitempty"`
}

// SetVerificationStatusRequest is the request body for
// /sandbox/item/set_verification_status.
type SetVerificationStatusRequest struct {
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	// VerificationStatus is one of automatically_verified or
	// verification_required.
	VerificationStatus string `json:"verification_status"`
}

// SetVerificationStatusResponse is the response body for
// /sandbox/item/set_verification_status.
type SetVerificationStatusResponse struct {
	RequestID string `json:"request_id,omitempty"`
}

// FireWebhookRequest is the request body for /sandbox/item/fire_webhook.
type FireWebhookRequest struct {
	AccessToken string      `json:"access_token"`
	WebhookCode WebhookCode `json:"webhook_code"`
}

// WebhookCode enumerates the webhook events the sandbox can fire.
type WebhookCode string

// WebhookCodeDefaultUpdate triggers a Transactions DEFAULT_UPDATE webhook.
const WebhookCodeDefaultUpdate WebhookCode = "DEFAULT_UPDATE"

// FireWebhookResponse is the response body for /sandbox/item/fire_webhook.
type FireWebhookResponse struct {
	WebhookFired bool   `json:"webhook_fired"`
	RequestID    string `json:"request_id"`
}

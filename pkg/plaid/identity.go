package plaid

// GetIdentityRequest is the request body for /identity/get.
type GetIdentityRequest struct {
	AccessToken string          `json:"access_token"`
	Options     *IdentityFilter `json:"options,omitempty"`
}

// IdentityFilter restricts identity results to the listed account IDs.
type IdentityFilter struct {
	AccountIDs []string `json:"account_ids"`
}

// GetIdentityResponse is the response body for /identity/get.
type GetIdentityResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

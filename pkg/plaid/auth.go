package plaid

// GetAuthRequest is the request body for /auth/get.
type GetAuthRequest struct {
	AccessToken string      `json:"access_token"`
	Options     *AuthFilter `json:"options,omitempty"`
}

// AuthFilter restricts auth results to the listed account IDs.
type AuthFilter struct {
	AccountIDs []string `json:"account_ids"`
}

// GetAuthResponse is the response body for /auth/get.
type GetAuthResponse struct {
	Accounts  []Account      `json:"accounts"`
	Numbers   AccountNumbers `json:"numbers"`
	Item      Item           `json:"item"`
	RequestID string         `json:"request_id"`
}

// AccountNumbers groups identifying numbers by banking scheme.
type AccountNumbers struct {
	ACH           []ACHNumber           `json:"ach"`
	EFT           []EFTNumber           `json:"eft"`
	International []InternationalNumber `json:"international"`
	BACS          []BACSNumber          `json:"bacs"`
}

// ACHNumber identifies a US account.
type ACHNumber struct {
	AccountID   string `json:"account_id"`
	Account     string `json:"account"`
	Routing     string `json:"routing"`
	WireRouting string `json:"wire_routing,omitempty"`
}

// EFTNumber identifies a Canadian account.
type EFTNumber struct {
	AccountID   string `json:"account_id"`
	Account     string `json:"account"`
	Institution string `json:"institution"`
	Branch      string `json:"branch"`
}

// InternationalNumber identifies an account by IBAN and BIC.
type InternationalNumber struct {
	AccountID string `json:"account_id"`
	IBAN      string `json:"iban"`
	BIC       string `json:"bic"`
}

// BACSNumber identifies a UK account.
type BACSNumber struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	SortCode  string `json:"sort_code"`
}

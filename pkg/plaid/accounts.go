package plaid

// Account is a financial account linked to an item. An item may carry several
// accounts for one user, for example a checking account and a credit account.
type Account struct {
	AccountID    string      `json:"account_id"              yaml:"account_id"`
	Balances     Balance     `json:"balances"                yaml:"balances"`
	Mask         string      `json:"mask,omitempty"          yaml:"mask,omitempty"`
	Name         string      `json:"name"                    yaml:"name"`
	OfficialName string      `json:"official_name,omitempty" yaml:"official_name,omitempty"`
	Type         AccountType `json:"type"                    yaml:"type"`
	Subtype      string      `json:"subtype,omitempty"       yaml:"subtype,omitempty"`
	// VerificationStatus is documented as non-nullable but is absent from
	// most payloads.
	VerificationStatus string `json:"verification_status,omitempty" yaml:"verification_status,omitempty"`
}

// AccountType enumerates the broad account categories.
type AccountType string

// Account types.
const (
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeDepository AccountType = "depository"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeBrokerage  AccountType = "brokerage"
	AccountTypeOther      AccountType = "other"
)

// Balance carries the balance figures for an account. Available and Current
// are pointers because the API distinguishes zero from unknown.
type Balance struct {
	Available              *float64 `json:"available"                          yaml:"available"`
	Current                *float64 `json:"current"                            yaml:"current"`
	ISOCurrencyCode        string   `json:"iso_currency_code,omitempty"        yaml:"iso_currency_code,omitempty"`
	Limit                  *float64 `json:"limit,omitempty"                    yaml:"limit,omitempty"`
	UnofficialCurrencyCode string   `json:"unofficial_currency_code,omitempty" yaml:"unofficial_currency_code,omitempty"`
}

// GetAccountsRequest is the request body for /accounts/get.
type GetAccountsRequest struct {
	AccessToken string          `json:"access_token"`
	Options     *AccountsFilter `json:"options,omitempty"`
}

// AccountsFilter restricts results to the listed account IDs.
type AccountsFilter struct {
	AccountIDs []string `json:"account_ids"`
}

// GetAccountsResponse is the response body for /accounts/get.
type GetAccountsResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// GetBalancesRequest is the request body for /accounts/balance/get.
type GetBalancesRequest struct {
	AccessToken string          `json:"access_token"`
	Options     *BalancesFilter `json:"options,omitempty"`
}

// BalancesFilter restricts balance results.
type BalancesFilter struct {
	AccountIDs []string `json:"account_ids,omitempty"`
	// MinLastUpdatedDatetime is an RFC 3339 timestamp; only balances
	// refreshed after it are returned.
	MinLastUpdatedDatetime string `json:"min_last_updated_datetime,omitempty"`
}

// GetBalancesResponse is the response body for /accounts/balance/get.
type GetBalancesResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

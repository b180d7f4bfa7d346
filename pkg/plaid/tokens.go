package plaid

// CreateLinkTokenRequest is the request body for /link/token/create.
type CreateLinkTokenRequest struct {
	ClientName            string              `json:"client_name"`
	Language              string              `json:"language"`
	CountryCodes          []string            `json:"country_codes"`
	User                  LinkUser            `json:"user"`
	Products              []string            `json:"products"`
	Webhook               string              `json:"webhook,omitempty"`
	AccessToken           string              `json:"access_token,omitempty"`
	LinkCustomizationName string              `json:"link_customization_name,omitempty"`
	RedirectURI           string              `json:"redirect_uri,omitempty"`
	AndroidPackageName    string              `json:"android_package_name,omitempty"`
	AccountFilters        *AccountFilters     `json:"account_filters,omitempty"`
	EUConfig              *EUConfig           `json:"eu_config,omitempty"`
	PaymentInitiation     *PaymentInitiation  `json:"payment_initiation,omitempty"`
	DepositSwitch         *DepositSwitch      `json:"deposit_switch,omitempty"`
	IncomeVerification    *IncomeVerification `json:"income_verification,omitempty"`
	Auth                  *LinkAuth           `json:"auth,omitempty"`
	InstitutionID         string              `json:"institution_id,omitempty"`
}

// LinkUser identifies the end user a link_token is created for.
type LinkUser struct {
	ClientUserID             string `json:"client_user_id"`
	LegalName                string `json:"legal_name,omitempty"`
	PhoneNumber              string `json:"phone_number,omitempty"`
	PhoneNumberVerifiedTime  string `json:"phone_number_verified_time,omitempty"`
	EmailAddress             string `json:"email_address,omitempty"`
	EmailAddressVerifiedTime string `json:"email_address_verified_time,omitempty"`
	SSN                      string `json:"ssn,omitempty"`
	DateOfBirth              string `json:"date_of_birth,omitempty"`
}

// NewLinkUser creates a LinkUser with only the required user ID set.
func NewLinkUser(userID string) LinkUser {
	return LinkUser{ClientUserID: userID}
}

// AccountFilters restricts the account types shown in Link, keyed by account
// type.
type AccountFilters struct {
	Depository *AccountFilter `json:"depository,omitempty"`
	Credit     *AccountFilter `json:"credit,omitempty"`
	Loan       *AccountFilter `json:"loan,omitempty"`
	Investment *AccountFilter `json:"investment,omitempty"`
}

// AccountFilter lists the account subtypes allowed for one account type.
type AccountFilter struct {
	AccountSubtypes []string `json:"account_subtypes"`
}

// EUConfig holds configuration for EU institutions.
type EUConfig struct {
	Headless *bool `json:"headless,omitempty"`
}

// PaymentInitiation links a link_token to a payment.
type PaymentInitiation struct {
	PaymentID string `json:"payment_id"`
}

// DepositSwitch links a link_token to a deposit switch.
type DepositSwitch struct {
	DepositSwitchID string `json:"deposit_switch_id"`
}

// IncomeVerification links a link_token to an income verification.
type IncomeVerification struct {
	IncomeVerificationID string `json:"income_verification_id"`
	AssetReportID        string `json:"asset_report_id,omitempty"`
}

// LinkAuth selects the auth flow used in Link.
type LinkAuth struct {
	FlowType string `json:"flow_type"`
}

// CreateLinkTokenResponse is the response body for /link/token/create.
type CreateLinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
	RequestID  string `json:"request_id"`
}

// GetLinkTokenRequest is the request body for /link/token/get.
type GetLinkTokenRequest struct {
	LinkToken string `json:"link_token"`
}

// GetLinkTokenResponse is the response body for /link/token/get.
type GetLinkTokenResponse struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	RequestID  string `json:"request_id"`
}

// ExchangePublicTokenRequest is the request body for
// /item/public_token/exchange.
type ExchangePublicTokenRequest struct {
	PublicToken string `json:"public_token"`
}

// ExchangePublicTokenResponse is the response body for
// /item/public_token/exchange.
type ExchangePublicTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

// InvalidateAccessTokenRequest is the request body for
// /item/access_token/invalidate.
type InvalidateAccessTokenRequest struct {
	AccessToken string `json:"access_token"`
}

// InvalidateAccessTokenResponse is the response body for
// /item/access_token/invalidate.
type InvalidateAccessTokenResponse struct {
	NewAccessToken string `json:"new_access_token"`
	RequestID      string `json:"request_id"`
}

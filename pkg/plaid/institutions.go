package plaid

// Institution describes a financial institution supported by the API.
type Institution struct {
	InstitutionID  string   `json:"institution_id"            yaml:"institution_id"`
	Name           string   `json:"name"                      yaml:"name"`
	Products       []string `json:"products"                  yaml:"products"`
	CountryCodes   []string `json:"country_codes"             yaml:"country_codes"`
	URL            string   `json:"url,omitempty"             yaml:"url,omitempty"`
	PrimaryColor   string   `json:"primary_color,omitempty"   yaml:"primary_color,omitempty"`
	Logo           string   `json:"logo,omitempty"            yaml:"logo,omitempty"`
	RoutingNumbers []string `json:"routing_numbers,omitempty" yaml:"routing_numbers,omitempty"`
	OAuth          bool     `json:"oauth"                     yaml:"oauth"`
}

// InstitutionsSearchRequest is the request body for /institutions/search.
type InstitutionsSearchRequest struct {
	Query        string                    `json:"query"`
	Products     []string                  `json:"products,omitempty"`
	CountryCodes []string                  `json:"country_codes"`
	Options      *InstitutionsSearchFilter `json:"options,omitempty"`
}

// InstitutionsSearchFilter narrows institution search results.
type InstitutionsSearchFilter struct {
	OAuth                            *bool                    `json:"oauth,omitempty"`
	IncludeOptionalMetadata          bool                     `json:"include_optional_metadata,omitempty"`
	IncludeAuthMetadata              bool                     `json:"include_auth_metadata,omitempty"`
	IncludePaymentInitiationMetadata bool                     `json:"include_payment_initiation_metadata,omitempty"`
	PaymentInitiation                *PaymentInitiationFilter `json:"payment_initiation,omitempty"`
}

// PaymentInitiationFilter filters institutions by payment initiation support.
type PaymentInitiationFilter struct {
	PaymentID string `json:"payment_id,omitempty"`
}

// InstitutionsSearchResponse is the response body for /institutions/search.
type InstitutionsSearchResponse struct {
	Institutions []Institution `json:"institutions"`
	RequestID    string        `json:"request_id,omitempty"`
}

// InstitutionGetRequest is the request body for /institutions/get_by_id.
type InstitutionGetRequest struct {
	InstitutionID string                `json:"institution_id"`
	CountryCodes  []string              `json:"country_codes"`
	Options       *InstitutionGetFilter `json:"options,omitempty"`
}

// InstitutionGetFilter selects optional metadata for a single institution.
type InstitutionGetFilter struct {
	IncludeOptionalMetadata          bool `json:"include_optional_metadata,omitempty"`
	IncludeStatus                    bool `json:"include_status,omitempty"`
	IncludeAuthMetadata              bool `json:"include_auth_metadata,omitempty"`
	IncludePaymentInitiationMetadata bool `json:"include_payment_initiation_metadata,omitempty"`
}

// InstitutionGetResponse is the response body for /institutions/get_by_id.
type InstitutionGetResponse struct {
	Institution Institution `json:"institution"`
	RequestID   string      `json:"request_id,omitempty"`
}

// InstitutionsGetRequest is the request body for /institutions/get. Paging is
// controlled by Count and Offset.
type InstitutionsGetRequest struct {
	Count        int                    `json:"count"`
	Offset       int                    `json:"offset"`
	CountryCodes []string               `json:"country_codes"`
	Options      *InstitutionsGetFilter `json:"options,omitempty"`
}

// InstitutionsGetFilter narrows the institutions listing.
type InstitutionsGetFilter struct {
	// Products filters institutions by the products they support.
	Products []string `json:"products,omitempty"`
	// RoutingNumbers only returns institutions matching all of the routing
	// numbers given.
	RoutingNumbers                   []string `json:"routing_numbers,omitempty"`
	OAuth                            bool     `json:"oauth,omitempty"`
	IncludeOptionalMetadata          bool     `json:"include_optional_metadata,omitempty"`
	IncludeAuthMetadata              bool     `json:"include_auth_metadata,omitempty"`
	IncludePaymentInitiationMetadata bool     `json:"include_payment_initiation_metadata,omitempty"`
}

// InstitutionsGetResponse is the response body for /institutions/get.
type InstitutionsGetResponse struct {
	Institutions []Institution `json:"institutions"`
	RequestID    string        `json:"request_id,omitempty"`
}

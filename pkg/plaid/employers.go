package plaid

// SearchEmployersRequest is the request body for /employers/search.
type SearchEmployersRequest struct {
	Query string `json:"query"`
	// Products must be set to ["deposit_switch"].
	Products []string `json:"products"`
}

// SearchEmployersResponse is the response body for /employers/search.
type SearchEmployersResponse struct {
	Employers []Employer `json:"employers"`
	RequestID string     `json:"request_id"`
}

// Employer is a known employer record usable with deposit switch.
type Employer struct {
	EmployerID      string   `json:"employer_id"       yaml:"employer_id"`
	Name            string   `json:"name"              yaml:"name"`
	Address         *Address `json:"address,omitempty" yaml:"address,omitempty"`
	ConfidenceScore float64  `json:"confidence_score"  yaml:"confidence_score"`
}

// Address is a postal address.
type Address struct {
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

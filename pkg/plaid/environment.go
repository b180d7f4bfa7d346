package plaid

import "strings"

// Environment selects the API host the client targets. The zero value is
// treated as Sandbox.
type Environment string

// Named environments.
const (
	Sandbox     Environment = "sandbox"
	Development Environment = "development"
	Production  Environment = "production"
)

const (
	sandboxBaseURL     = "https://sandbox.plaid.com"
	developmentBaseURL = "https://development.plaid.com"
	productionBaseURL  = "https://production.plaid.com"
)

// CustomEnvironment targets an arbitrary base URL, including scheme, for
// example http://localhost:3000.
func CustomEnvironment(baseURL string) Environment {
	return Environment(baseURL)
}

// BaseURL returns the base authority for the environment. Request URLs are
// formed by concatenating this value with an endpoint path.
func (e Environment) BaseURL() string {
	switch e {
	case Sandbox, "":
		return sandboxBaseURL
	case Development:
		return developmentBaseURL
	case Production:
		return productionBaseURL
	default:
		return strings.TrimSuffix(string(e), "/")
	}
}

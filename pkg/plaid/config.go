package plaid

import (
	"net/http"
	"time"
)

// Config holds the settings for creating a client. ClientID and Secret carry
// the authentication; they are sent as headers on every request and are never
// logged or echoed in responses.
type Config struct {
	// ClientID is the API client identifier.
	ClientID string

	// Secret is the API secret for the configured environment.
	Secret string

	// Environment selects the target API host. Defaults to Sandbox.
	Environment Environment

	// UserAgent overrides the User-Agent header sent with requests.
	UserAgent string

	// HTTPClient overrides the underlying HTTP transport. Timeout policy
	// belongs to the transport; the client threads no timeouts of its own.
	HTTPClient *http.Client

	// Logger receives debug logs when Debug is enabled.
	Logger Logger

	// Debug enables request/response logging.
	Debug bool

	// Timeout applies to the default transport. Ignored when HTTPClient is
	// set.
	Timeout time.Duration

	// RetryMax enables transparent retries in the transport when greater
	// than zero. The dispatcher itself never retries.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Logger is the interface for logging within the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

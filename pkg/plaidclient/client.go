// Package plaidclient provides the main entry point for creating Plaid API
// clients.
package plaidclient

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/ledgerkit/plaid-client/internal/client"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
)

// New creates a new API client from config. The environment defaults to
// Sandbox when unset.
func New(config *plaid.Config) (plaid.Client, error) {
	if config == nil {
		return nil, plaid.ErrConfigRequired
	}

	if config.ClientID == "" {
		return nil, plaid.ErrClientIDRequired
	}

	if config.Secret == "" {
		return nil, plaid.ErrSecretRequired
	}

	return client.New(config), nil
}

// NewWithCredentials creates a new client from a credential pair and an
// environment.
func NewWithCredentials(clientID, secret string, environment plaid.Environment) (plaid.Client, error) {
	return New(&plaid.Config{
		ClientID:    clientID,
		Secret:      secret,
		Environment: environment,
	})
}

// envSettings is the environment variable surface: PLAID_CLIENT_ID,
// PLAID_SECRET, and PLAID_ENV.
type envSettings struct {
	ClientID string `envconfig:"CLIENT_ID" required:"true"`
	Secret   string `envconfig:"SECRET"    required:"true"`
	Env      string `envconfig:"ENV"       default:"sandbox"`
}

// NewFromEnvironment creates a new client from PLAID_* environment variables.
// PLAID_ENV accepts a named environment (sandbox, development, production) or
// a full base URL.
func NewFromEnvironment() (plaid.Client, error) {
	var settings envSettings

	err := envconfig.Process("plaid", &settings)
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return New(&plaid.Config{
		ClientID:    settings.ClientID,
		Secret:      settings.Secret,
		Environment: plaid.Environment(settings.Env),
	})
}

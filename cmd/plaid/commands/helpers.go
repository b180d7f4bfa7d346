// Package commands implements the CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ledgerkit/plaid-client/internal/constants"
	"github.com/ledgerkit/plaid-client/pkg/plaid"
	"github.com/ledgerkit/plaid-client/pkg/plaidclient"
)

// Static errors
var (
	ErrCredentialsNotConfigured = errors.New("credentials not configured")
	ErrCountTooLarge            = errors.New("count exceeds the per-request maximum")
)

// stderrLogger writes the client's debug logs to stderr when --verbose is
// set.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	var parts []string
	for key, value := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", key, value))
	}

	fmt.Fprintf(os.Stderr, "[%s] %s %s\n", level, msg, strings.Join(parts, " "))
}

// createClient builds an API client from the resolved configuration: flags,
// then the config file, then PLAID_* environment variables.
func createClient() (plaid.Client, error) {
	clientID := viper.GetString("client-id")
	secret := viper.GetString("secret")

	if clientID == "" || secret == "" {
		return nil, fmt.Errorf("%w: run 'plaid configure' or set PLAID_CLIENT_ID and PLAID_SECRET",
			ErrCredentialsNotConfigured)
	}

	config := &plaid.Config{
		ClientID:    clientID,
		Secret:      secret,
		Environment: plaid.Environment(viper.GetString("env")),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	if viper.GetBool("retry") {
		config.RetryMax = constants.DefaultRetryMax
	}

	client, err := plaidclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	return yaml.NewEncoder(os.Stdout).Encode(v)
}

// formatAmount renders a nullable balance figure with its currency code.
func formatAmount(amount *float64, currencyCode string) string {
	if amount == nil {
		return constants.NotAvailable
	}

	value := strconv.FormatFloat(*amount, 'f', 2, 64)
	if currencyCode == "" {
		return value
	}

	return value + " " + currencyCode
}

// orNotAvailable substitutes a placeholder for empty table cells.
func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

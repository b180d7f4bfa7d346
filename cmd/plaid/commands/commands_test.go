package commands

import (
	"strconv"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit/plaid-client/internal/constants"
)

func TestNewInstitutionsCommand(t *testing.T) {
	cmd := NewInstitutionsCommand()
	assert.Equal(t, "institutions", cmd.Use)
	assert.Equal(t, []string{"institution", "inst"}, cmd.Aliases)

	// Check subcommands are added
	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "list")
}

func TestNewTransactionsCommand(t *testing.T) {
	cmd := NewTransactionsCommand()
	assert.Equal(t, "transactions", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "refresh")
	assert.Contains(t, commandNames, "categories")
}

func TestTransactionsListCommand(t *testing.T) {
	cmd := newTransactionsListCommand()
	assert.Equal(t, "list ACCESS_TOKEN", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	assert.NotNil(t, cmd.Flags().Lookup("start-date"))
	assert.NotNil(t, cmd.Flags().Lookup("end-date"))
	assert.NotNil(t, cmd.Flags().Lookup("all"))
}

func TestNewSandboxCommand(t *testing.T) {
	cmd := NewSandboxCommand()
	assert.Equal(t, "sandbox", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "public-token")
	assert.Contains(t, commandNames, "reset-login")
	assert.Contains(t, commandNames, "set-verification")
	assert.Contains(t, commandNames, "fire-webhook")
}

func TestInstitutionsListCommandRejectsOversizedCount(t *testing.T) {
	cmd := newInstitutionsListCommand()

	err := cmd.Flags().Set("count", strconv.Itoa(constants.MaxInstitutionsPerRequest+1))
	require.NoError(t, err)

	err = cmd.RunE(cmd, nil)
	require.ErrorIs(t, err, ErrCountTooLarge)
}

func TestCreateClient(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		_, err := createClient()
		require.ErrorIs(t, err, ErrCredentialsNotConfigured)
	})

	t.Run("retry opt-in", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)

		viper.Set("client-id", "test-client-id")
		viper.Set("secret", "test-secret")
		viper.Set("retry", true)

		client, err := createClient()
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestFormatAmount(t *testing.T) {
	amount := 1203.5

	assert.Equal(t, constants.NotAvailable, formatAmount(nil, "USD"))
	assert.Equal(t, "1203.50 USD", formatAmount(&amount, "USD"))
	assert.Equal(t, "1203.50", formatAmount(&amount, ""))
}

func TestOrNotAvailable(t *testing.T) {
	assert.Equal(t, constants.NotAvailable, orNotAvailable(""))
	assert.Equal(t, "checking", orNotAvailable("checking"))
}

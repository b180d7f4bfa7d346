package plaid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRoundTrip serializes in and deserializes the result, asserting the
// value survives unchanged.
func assertRoundTrip[T any](t *testing.T, in T) {
	t.Helper()

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out T

	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestTypesRoundTrip(t *testing.T) {
	available := 100.25
	current := 110.5
	lat := 40.74

	t.Run("error", func(t *testing.T) {
		assertRoundTrip(t, Error{
			DisplayMessage:   "please try again",
			DocumentationURL: "https://plaid.com/docs/#errors",
			ErrorCode:        "RATE_LIMIT",
			ErrorMessage:     "rate limit exceeded for attempts_per_hour",
			ErrorType:        ErrorTypeRateLimitExceeded,
			RequestID:        "req-1",
			Status:           429,
			SuggestedAction:  "wait and retry",
		})
	})

	t.Run("transactions request", func(t *testing.T) {
		assertRoundTrip(t, GetTransactionsRequest{
			AccessToken: "access-sandbox-123",
			StartDate:   "2021-01-01",
			EndDate:     "2021-09-01",
			Options: &TransactionOptions{
				AccountIDs:                 []string{"acct-1", "acct-2"},
				Count:                      50,
				Offset:                     10,
				IncludeOriginalDescription: true,
			},
		})
	})

	t.Run("transactions response", func(t *testing.T) {
		assertRoundTrip(t, GetTransactionsResponse{
			Accounts: []Account{
				{
					AccountID: "acct-1",
					Balances: Balance{
						Available:       &available,
						Current:         &current,
						ISOCurrencyCode: "USD",
					},
					Mask:    "0000",
					Name:    "Plaid Checking",
					Type:    AccountTypeDepository,
					Subtype: "checking",
				},
			},
			Transactions: []Transaction{
				{
					TransactionID:  "txn-1",
					AccountID:      "acct-1",
					Amount:         89.4,
					Date:           "2021-03-24",
					Name:           "SparkFun",
					Pending:        true,
					PaymentChannel: "in store",
					Category:       []string{"Shops", "Computers and Electronics"},
					Location: &TransactionLocation{
						City:   "New York",
						Region: "NY",
						Lat:    &lat,
					},
					PaymentMeta: &PaymentMeta{
						ReferenceNumber: "ref-1",
						PaymentMethod:   "ACH",
					},
				},
			},
			TotalTransactions: 1,
			Item:              Item{ItemID: "item-1", InstitutionID: "ins_109508"},
			RequestID:         "req-2",
		})
	})

	t.Run("link token request", func(t *testing.T) {
		assertRoundTrip(t, CreateLinkTokenRequest{
			ClientName:   "LedgerKit",
			Language:     "en",
			CountryCodes: []string{"US"},
			User:         LinkUser{ClientUserID: "user-1", LegalName: "Jo Doe"},
			Products:     []string{"transactions", "auth"},
			Webhook:      "https://example.com/webhook",
		})
	})

	t.Run("institution", func(t *testing.T) {
		assertRoundTrip(t, Institution{
			InstitutionID:  "ins_109508",
			Name:           "First Platypus Bank",
			Products:       []string{"transactions"},
			CountryCodes:   []string{"US"},
			RoutingNumbers: []string{"011401533"},
			OAuth:          true,
		})
	})
}

// Package plaidclient provides the primary entry point for constructing a
// Plaid API client that implements the plaid.Client interface.
//
// It layers configuration, credentials, and HTTP transport on top of the
// resource interfaces and types defined in the plaid package. Most
// applications should import plaidclient to build a client, then use the
// returned plaid.Client to access resource-specific clients, for example
// Accounts(), Transactions(), Items(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/ledgerkit/plaid-client/pkg/plaid"
//	  "github.com/ledgerkit/plaid-client/pkg/plaidclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := plaidclient.New(&plaid.Config{
//	    ClientID:    "client-id",
//	    Secret:      "secret",
//	    Environment: plaid.Sandbox,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  accounts, err := cli.Accounts().Get(ctx, &plaid.GetAccountsRequest{
//	    AccessToken: "access-sandbox-...",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = accounts
//	}
//
// # Environments
//
// The Environment field selects the API host: plaid.Sandbox (the default),
// plaid.Development, plaid.Production, or plaid.CustomEnvironment for a
// self-hosted mock. Credentials are environment-specific.
//
// # Helpers
//
// The package also provides convenience constructors NewWithCredentials and
// NewFromEnvironment (PLAID_CLIENT_ID, PLAID_SECRET, PLAID_ENV) that wrap New
// with the appropriate configuration.
package plaidclient

// Package plaid provides types, interfaces, and helpers for working with the
// Plaid API.
//
// # Overview
//
// The plaid package defines the request and response shapes for every
// supported endpoint (institutions, link tokens, items, accounts, auth,
// identity, transactions, sandbox helpers) and the interfaces for
// resource-oriented clients (InstitutionsClient, TokensClient, and so on). A
// concrete implementation is provided by the plaidclient package, which wires
// configuration, credentials, and transport. Most consumers should import
// plaidclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := plaidclient.NewWithCredentials("client-id", "secret", plaid.Sandbox)
//	  if err != nil { log.Fatal(err) }
//
//	  institutions, err := cli.Institutions().Search(ctx, &plaid.InstitutionsSearchRequest{
//	    Query:        "Banque Populaire",
//	    CountryCodes: []string{"FR"},
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = institutions
//	}
//
// # Pagination
//
// Transaction history is paginated. TransactionsPager hides the offset
// bookkeeping and fetches pages lazily, one NextPage call at a time:
//
//	pager := plaid.NewTransactionsPager(cli.Transactions(), &plaid.GetTransactionsRequest{
//	  AccessToken: token,
//	  StartDate:   "2021-01-01",
//	  EndDate:     "2021-09-01",
//	})
//	for pager.HasMore() {
//	  batch, err := pager.NextPage(ctx)
//	  if err != nil { break }
//	  _ = batch
//	}
//
// # Errors
//
// Every call produces exactly one of: a typed success value, an API *Error,
// a *TransportError, or a *ParseError. Helpers such as IsRateLimited,
// IsItemError, and IsInvalidRequest make it easy to branch on the API error
// taxonomy. The client never retries on its own; callers decide policy.
package plaid

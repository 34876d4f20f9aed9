// Package vapi provides types, interfaces, and helpers for working with the
// Vonix REST API.
//
// # Overview
//
// The vapi package defines the domain types (Account, Subaccount,
// Application), the ordered parameter list used to build requests, the
// Result classification contract returned by the request gateway, and the
// interfaces for resource-oriented clients. A concrete implementation is
// provided by the vclient package, which wires configuration, transport,
// and authentication. Most consumers should import vclient to construct a
// client and then interact with the resource client interfaces exposed
// here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/vonix-io/vapi/pkg/vapi"
//	  "github.com/vonix-io/vapi/pkg/vclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := vclient.NewWithCredentials("MAXXXXXXXXXXXXXXXXXX", "secret-token")
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Accounts().Get(ctx, "MAXXXXXXXXXXXXXXXXXX")
//	  if err != nil { log.Fatal(err) }
//	  _ = account
//	}
//
// # Parameters
//
// Params is an ordered key/value list. Order is preserved into query
// strings and JSON bodies so dispatched requests are deterministic:
//
//	params := vapi.NewParams().WithLimit(7).WithOffset(22)
//	subs, err := cli.Subaccounts().List(ctx, accountID, params)
//
// # Errors
//
// Transport failures and undecodable success bodies surface as
// *TransportError and *DecodeError. Non-2xx provider responses are plain
// values at the gateway level; the resource clients convert them to
// *APIError so helpers such as IsNotFound and IsUnauthorized can branch on
// common cases.
package vapi

// Package anylist is a typed client for the AnyList grocery and recipe
// service.
//
// The package is a thin surface: every method forwards to the internal
// protocol engine, which owns the credential exchange, token refresh and
// wire format, and converts the engine's wire records into the record
// types defined here. No caching or state beyond the session tokens is
// kept on the client.
//
// # Sessions
//
// Login exchanges an email and password for a token set. Tokens returns
// that set so callers can persist it; FromTokens rebuilds a client from a
// saved set without touching the network.
//
//	client, err := anylist.Login(ctx, email, password)
//	...
//	saved := client.Tokens()
//	// later
//	client, err = anylist.FromTokens(saved)
package anylist

// Package protocol speaks the AnyList wire protocol.
//
// It owns everything below the typed client surface: the credential
// exchange, bearer-token requests, token refresh, and the JSON shapes the
// service sends and receives. Callers get back wire records and errors
// classified by HTTP status; the public anylist package converts both into
// its own types.
package protocol

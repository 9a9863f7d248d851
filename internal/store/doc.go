// Package store persists AnyList session tokens on disk.
//
// Tokens are sealed with a passphrase-derived key (scrypt +
// chacha20poly1305) and written atomically under the user's configured
// home directory. All methods are concurrency-safe via internal locking.
package store

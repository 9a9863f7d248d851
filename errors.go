package anylist

import (
	"errors"

	"anylist/internal/protocol"
)

// Errors from the protocol engine are surfaced unchanged; the values
// below are the same values the engine attaches, re-exported so callers
// never import the internal package.
var (
	// ErrUnauthorized indicates rejected credentials or an unrenewable session.
	ErrUnauthorized = protocol.ErrUnauthorized

	// ErrNotFound indicates the list, item or recipe does not exist.
	ErrNotFound = protocol.ErrNotFound

	// ErrPremiumRequired indicates the operation needs a premium account.
	ErrPremiumRequired = protocol.ErrPremiumRequired

	// ErrFavouriteNotFound is returned by AddFavouriteToShoppingList when
	// the named favourite is not on the given starter list.
	ErrFavouriteNotFound = errors.New("anylist: favourite item not found")
)

package cart

import "errors"

var (
	// ErrCartNotFound means the cart session does not exist or has expired.
	ErrCartNotFound = errors.New("cart session not found or expired")
	// ErrUnknownItem means the item name references nothing in the catalog.
	ErrUnknownItem = errors.New("item is not in the catalog")
)

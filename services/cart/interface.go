package cart

import (
	"context"

	catalogRepo "washlane/database/repository/catalog"
	"washlane/models"
)

// LineSummary is one cart line with its catalog price applied.
type LineSummary struct {
	ItemName  string  `json:"itemName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Summary is the priced view of a cart.
type Summary struct {
	SessionID string        `json:"sessionId"`
	Lines     []LineSummary `json:"lines"`
	Total     float64       `json:"total"`
}

// CartService manages a session-scoped catalog cart. A cart is owned by one
// checkout session at a time; it is never shared across sessions or devices.
type CartService interface {
	Open(ctx context.Context, userID string) (*models.Cart, error)
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Increment(ctx context.Context, sessionID, itemName string) (*models.Cart, error)
	Decrement(ctx context.Context, sessionID, itemName string) (*models.Cart, error)
	SetQuantity(ctx context.Context, sessionID, itemName string, quantity int) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) (*models.Cart, error)
	Summarize(ctx context.Context, sessionID string) (*Summary, error)
}

// DefaultCartService implements CartService over the session cache and the
// read-only catalog.
type DefaultCartService struct {
	Catalog catalogRepo.CatalogRepository
}

package booking

import (
	"context"

	"washlane/models"

	"go.uber.org/zap"
)

// UpdateSessionInput carries partial checkout updates. Nil fields are left
// untouched, so the client can fill the session in any order.
type UpdateSessionInput struct {
	Service           *models.ServiceSelection `json:"service,omitempty"`
	PickupDate        *string                  `json:"pickupDate,omitempty"`
	PickupTime        *models.TimeSlot         `json:"pickupTime,omitempty"`
	Address           *string                  `json:"address,omitempty"`
	Notes             *string                  `json:"notes,omitempty"`
	PromotionDiscount *float64                 `json:"promotionDiscount,omitempty"`
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	OrderID string                `json:"orderId"`
	Payment *models.PaymentIntent `json:"payment,omitempty"`
	Request models.BookingRequest `json:"request"`
}

// CheckoutService manages the stateful checkout session:
// Empty -> ItemsSelected -> ScheduleSet -> AddressSet -> Ready -> Submitted.
type CheckoutService interface {
	InitiateSession(ctx context.Context, userID string) (*models.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
	UpdateSession(ctx context.Context, sessionID string, input UpdateSessionInput) (*models.CheckoutSession, error)
	AddExtraItem(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error)
	RemoveExtraItem(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error)
	Quote(ctx context.Context, sessionID string) (*models.PricedTotal, error)
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultCheckoutService implements CheckoutService over the session store,
// the per-session submission lock, and the order submission collaborator.
type DefaultCheckoutService struct {
	Store     SessionStore
	Locks     SubmitLocker
	Submitter OrderSubmitter
	Logger    *zap.Logger
}

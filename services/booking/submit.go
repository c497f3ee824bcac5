package booking

import (
	"context"
	"fmt"

	orderRepo "washlane/database/repository/order"
	"washlane/models"

	"go.uber.org/zap"
)

// Currency is the single currency the app operates in.
const Currency = "usd"

// OrderSubmitter is the payment/persistence collaborator boundary: it takes a
// frozen BookingRequest and yields an opaque order identifier. Retry and
// backoff are its callers' concern, never the engine's.
type OrderSubmitter interface {
	SubmitBooking(ctx context.Context, req models.BookingRequest, userID string) (*SubmitResult, error)
}

// DefaultOrderSubmitter hands the total off to the payment handler and
// persists the order record.
type DefaultOrderSubmitter struct {
	Orders  orderRepo.OrderRepository
	Payment PaymentHandler
	Logger  *zap.Logger
}

// SubmitBooking performs one non-cancellable submission: payment hand-off
// first, then the order write. Failures are surfaced as-is; nothing retries.
func (s *DefaultOrderSubmitter) SubmitBooking(ctx context.Context, req models.BookingRequest, userID string) (*SubmitResult, error) {
	order := models.Order{
		UserID:     userID,
		Status:     models.StatusPending,
		Service:    req.Service,
		Items:      req.ExtraItems,
		PickupDate: req.PickupDate,
		PickupTime: req.PickupTime,
		Address:    req.Address,
		Notes:      req.Notes,
		Total:      req.Total,
	}

	intent, err := s.Payment.CreateIntent(ctx, req.Total.FinalAmount, Currency, "")
	if err != nil {
		return nil, fmt.Errorf("payment hand-off failed: %w", err)
	}
	order.PaymentRef = intent.ID

	orderID, err := s.Orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.Logger.Info("Booking submitted",
		zap.String("orderID", orderID),
		zap.String("paymentRef", intent.ID),
		zap.Float64("total", req.Total.FinalAmount))

	return &SubmitResult{OrderID: orderID, Payment: intent}, nil
}

package booking

import (
	"context"
	"fmt"
	"math"

	"washlane/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler performs the payment hand-off for a booking total. The
// engine treats the result as opaque; confirmation arrives externally.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, amount float64, currency, orderRef string) (*models.PaymentIntent, error)
}

// StripePaymentHandler hands the amount off to Stripe as a PaymentIntent.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler returns a Stripe-backed PaymentHandler.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateIntent creates a PaymentIntent for the booking total. Amounts are
// converted to minor currency units as Stripe requires.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, amount float64, currency, orderRef string) (*models.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_ref", orderRef)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("Payment intent created",
		zap.String("intent", pi.ID),
		zap.String("orderRef", orderRef),
		zap.Float64("amount", amount))

	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
		Status:       string(pi.Status),
	}, nil
}

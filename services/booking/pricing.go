package booking

import (
	"math"

	"washlane/models"
)

// DeliveryFee is the flat fee applied to every booking, including bookings
// whose base amount is zero.
const DeliveryFee = 3.99

// extraItemRateFactor prices each extra item unit at a fraction of the primary
// service's unit rate, not the item's own catalog price. This mirrors the
// production pricing policy and must not be "corrected" to catalog pricing.
const extraItemRateFactor = 0.5

// ExtraItemAmount computes the surcharge for the extra items selected during
// booking: total unit count across all lines, billed at half the primary
// service's unit rate. Zero when no primary service is selected.
func ExtraItemAmount(service *models.ServiceSelection, extraItems []models.CartLine) float64 {
	if service == nil {
		return 0
	}
	units := 0
	for _, line := range extraItems {
		units += line.Quantity
	}
	return float64(units) * service.BasePricePerUnit * extraItemRateFactor
}

// Quote computes the full price breakdown for a booking. It is a pure
// function of its inputs: identical inputs always yield identical totals.
// Negative promotion discounts are clamped to zero, and the final amount is
// clamped at zero before rounding so a promotion can never produce a refund.
func Quote(service *models.ServiceSelection, extraItems []models.CartLine, promotionDiscount float64) models.PricedTotal {
	baseAmount := 0.0
	if service != nil {
		baseAmount = service.BasePricePerUnit * service.QuantityUnits
	}
	extraAmount := ExtraItemAmount(service, extraItems)
	if promotionDiscount < 0 {
		promotionDiscount = 0
	}

	final := baseAmount + extraAmount + DeliveryFee - promotionDiscount
	if final < 0 {
		final = 0
	}

	return models.PricedTotal{
		BaseAmount:        baseAmount,
		ExtraItemAmount:   extraAmount,
		DeliveryFee:       DeliveryFee,
		PromotionDiscount: promotionDiscount,
		FinalAmount:       round2(final),
	}
}

// round2 rounds to 2 decimal places with half-up rounding, for currency display.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

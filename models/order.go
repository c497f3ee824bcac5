package models

import "time"

// OrderStatus is the closed enum governing an order's fulfilment position.
// All comparisons go through the ordering table below; free-form string
// comparison against statuses is deliberately avoided.
type OrderStatus string

const (
	StatusPending          OrderStatus = "Pending"
	StatusProcessing       OrderStatus = "Processing"
	StatusReadyForDelivery OrderStatus = "ReadyForDelivery"
	StatusDelivered        OrderStatus = "Delivered"
	StatusCancelled        OrderStatus = "Cancelled"
)

// statusRank orders the non-terminal progression. Cancelled is outside the
// progression; it is absorbing and ranked via the status at cancellation time.
var statusRank = map[OrderStatus]int{
	StatusPending:          1,
	StatusProcessing:       2,
	StatusReadyForDelivery: 3,
	StatusDelivered:        4,
}

// Rank returns the status's position in the ordered progression. The second
// return is false for Cancelled and for any unrecognized status.
func (s OrderStatus) Rank() (int, bool) {
	rank, ok := statusRank[s]
	return rank, ok
}

// Known reports whether the status is one of the recognized enum values.
func (s OrderStatus) Known() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal reports whether the status admits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order is a persisted order record. The engine reads it from the store and
// derives the timeline; it never invents status transitions on its own.
type Order struct {
	ID         string            `bson:"id" json:"id"`
	UserID     string            `bson:"user_id" json:"userId"`
	Status     OrderStatus       `bson:"status" json:"status"`
	Service    *ServiceSelection `bson:"service,omitempty" json:"service,omitempty"`
	Items      []CartLine        `bson:"items,omitempty" json:"items,omitempty"`
	PickupDate string            `bson:"pickup_date" json:"pickupDate"`
	PickupTime TimeSlot          `bson:"pickup_time" json:"pickupTime"`
	Address    string            `bson:"address" json:"address"`
	Notes      string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Total      PricedTotal       `bson:"total" json:"total"`
	// CancelledFrom records the last non-cancelled status when the order was
	// cancelled, so the timeline keeps whatever was true at cancellation time.
	CancelledFrom OrderStatus `bson:"cancelled_from,omitempty" json:"cancelledFrom,omitempty"`
	PaymentRef    string      `bson:"payment_ref,omitempty" json:"paymentRef,omitempty"`
	CreatedAt     time.Time   `bson:"created_at" json:"createdAt"`
	DeliveryDate  *time.Time  `bson:"delivery_date,omitempty" json:"deliveryDate,omitempty"`
}

// TimelineStep is one entry of the fixed 5-step order timeline. Completed
// flags are derived from the order status, never stored independently.
type TimelineStep struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// TimelineSnapshot is the derived view of an order's progress. Two snapshots
// built from the same status are always identical.
type TimelineSnapshot struct {
	Steps           []TimelineStep `json:"steps"`
	CompletedSteps  int            `json:"completedSteps"`
	ProgressPercent int            `json:"progressPercent"` // -1 when Unknown
	Cancelled       bool           `json:"cancelled"`
	Terminal        bool           `json:"terminal"`
	Unknown         bool           `json:"unknown"`
}

package models

import "time"

// SessionState is the derived position of a checkout session.
type SessionState string

const (
	StateEmpty         SessionState = "Empty"
	StateItemsSelected SessionState = "ItemsSelected"
	StateScheduleSet   SessionState = "ScheduleSet"
	StateAddressSet    SessionState = "AddressSet"
	StateReady         SessionState = "Ready"
	StateSubmitted     SessionState = "Submitted"
)

// CheckoutSession holds checkout context between initiation and submission.
// It is stored as a JSON blob in the session cache with a TTL.
type CheckoutSession struct {
	SessionID         string              `json:"sessionId"`
	UserID            string              `json:"userId,omitempty"`
	Service           *ServiceSelection   `json:"service,omitempty"`
	ExtraItems        map[string]CartLine `json:"extraItems,omitempty"`
	PickupDate        string              `json:"pickupDate,omitempty"`
	PickupTime        TimeSlot            `json:"pickupTime,omitempty"`
	Address           string              `json:"address,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	PromotionDiscount float64             `json:"promotionDiscount,omitempty"`
	Submitted         bool                `json:"submitted"`
	OrderID           string              `json:"orderId,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
}

// HasItems reports whether anything bookable has been selected.
func (s *CheckoutSession) HasItems() bool {
	return s.Service != nil || len(s.ExtraItems) > 0
}

// hasSchedule reports whether both pickup date and time slot are set.
func (s *CheckoutSession) hasSchedule() bool {
	return s.PickupDate != "" && s.PickupTime != ""
}

// CanSubmit is the submission gate: it is true only when a service or extra
// items are selected AND pickup date, time slot, and address are all set.
func (s *CheckoutSession) CanSubmit() bool {
	return !s.Submitted && s.HasItems() && s.hasSchedule() && s.Address != ""
}

// MissingFields names whatever still blocks submission, for the caller to
// surface to the user.
func (s *CheckoutSession) MissingFields() []string {
	var missing []string
	if !s.HasItems() {
		missing = append(missing, "items")
	}
	if s.PickupDate == "" {
		missing = append(missing, "pickupDate")
	}
	if s.PickupTime == "" {
		missing = append(missing, "pickupTime")
	}
	if s.Address == "" {
		missing = append(missing, "address")
	}
	return missing
}

// State derives the session's position in the checkout flow. It is never
// stored; it always reflects the current field values.
func (s *CheckoutSession) State() SessionState {
	switch {
	case s.Submitted:
		return StateSubmitted
	case s.CanSubmit():
		return StateReady
	case s.HasItems() && s.hasSchedule() && s.Address != "":
		return StateAddressSet
	case s.HasItems() && s.hasSchedule():
		return StateScheduleSet
	case s.HasItems():
		return StateItemsSelected
	default:
		return StateEmpty
	}
}

// ExtraItemSlice returns the extra item lines as a slice for the booking payload.
func (s *CheckoutSession) ExtraItemSlice() []CartLine {
	lines := make([]CartLine, 0, len(s.ExtraItems))
	for _, line := range s.ExtraItems {
		lines = append(lines, line)
	}
	return lines
}

// ExtraItemUnits returns the summed quantity across all extra item lines.
func (s *CheckoutSession) ExtraItemUnits() int {
	units := 0
	for _, line := range s.ExtraItems {
		units += line.Quantity
	}
	return units
}

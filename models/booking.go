package models

import "time"

// TimeSlot is a pickup window as shown to the user, e.g. "09:00 - 11:00".
type TimeSlot string

// ServiceSelection is the primary service being booked.
type ServiceSelection struct {
	ServiceID        string  `bson:"service_id" json:"serviceId"`
	Name             string  `bson:"name" json:"name"`
	BasePricePerUnit float64 `bson:"base_price_per_unit" json:"basePricePerUnit"`
	QuantityUnits    float64 `bson:"quantity_units" json:"quantityUnits"` // e.g. kilograms
}

// PricedTotal is the fully derived price breakdown for a booking. It is
// recomputed from its inputs on every mutation, never stored on its own.
type PricedTotal struct {
	BaseAmount        float64 `bson:"base_amount" json:"baseAmount"`
	ExtraItemAmount   float64 `bson:"extra_item_amount" json:"extraItemAmount"`
	DeliveryFee       float64 `bson:"delivery_fee" json:"deliveryFee"`
	PromotionDiscount float64 `bson:"promotion_discount" json:"promotionDiscount"`
	FinalAmount       float64 `bson:"final_amount" json:"finalAmount"`
}

// BookingRequest is the immutable, fully validated checkout payload handed to
// the payment/persistence collaborator. Assembled once per submission attempt.
type BookingRequest struct {
	Service    *ServiceSelection `json:"service,omitempty"`
	ExtraItems []CartLine        `json:"extraItems,omitempty"`
	PickupDate string            `json:"pickupDate"` // "YYYY-MM-DD"
	PickupTime TimeSlot          `json:"pickupTime"`
	Address    string            `json:"address"`
	Notes      string            `json:"notes,omitempty"`
	Total      PricedTotal       `json:"total"`
	CreatedAt  time.Time         `json:"createdAt"`
}

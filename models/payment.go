package models

// PaymentIntent is the opaque result of the payment hand-off. The engine never
// interprets provider-specific states beyond carrying them through.
type PaymentIntent struct {
	ID           string  `json:"id"`
	ClientSecret string  `json:"clientSecret,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}

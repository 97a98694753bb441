package models

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod selects how a passenger settles a reservation
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodPass   PaymentMethod = "pass"
)

// PaymentStatusPaid is the only status a Payment is ever constructed with;
// failed charges never materialize a Payment record.
const PaymentStatusPaid = "paid"

// Payment is an immutable receipt of a successful charge
type Payment struct {
	ID          string          `json:"id"`
	RideID      string          `json:"ride_id"`
	PassengerID string          `json:"passenger_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	Status      string          `json:"status"`
	CreatedAt   int64           `json:"created_at"` // epoch millis
}

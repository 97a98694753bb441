package models

import (
	"github.com/shopspring/decimal"
)

// RevenueEntry records one platform commission taken from a settled ride
type RevenueEntry struct {
	ID          string                 `json:"id"`
	RideID      string                 `json:"ride_id"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
	CreatedAt   int64                  `json:"created_at"` // epoch millis
}

// RevenueSnapshot is a point-in-time view of accumulated commission
type RevenueSnapshot struct {
	Total  decimal.Decimal `json:"total"`
	Latest []RevenueEntry  `json:"latest"`
}

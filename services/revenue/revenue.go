package revenue

import (
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// Aggregator accumulates platform commission entries with a capped history
type Aggregator interface {
	// Record appends one commission entry; no-op if amount <= 0
	Record(rideID string, amount decimal.Decimal, description string, data map[string]interface{})

	// Snapshot returns the running total and the most recent entries
	Snapshot() models.RevenueSnapshot
}

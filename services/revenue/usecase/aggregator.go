package usecase

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/revenue"
	"github.com/shopspring/decimal"
)

// revenueAggregator implements revenue.Aggregator with a ring of the most
// recent entries; the running total covers evicted entries too.
type revenueAggregator struct {
	clock clockwork.Clock
	limit int

	mu      sync.Mutex
	total   decimal.Decimal
	entries []models.RevenueEntry
}

// NewRevenueAggregator creates a new revenue aggregator keeping at most
// limit entries
func NewRevenueAggregator(clock clockwork.Clock, limit int) revenue.Aggregator {
	return &revenueAggregator{
		clock: clock,
		limit: limit,
		total: decimal.Zero,
	}
}

func (a *revenueAggregator) Record(rideID string, amount decimal.Decimal, description string, data map[string]interface{}) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.total = a.total.Add(amount)
	a.entries = append(a.entries, models.RevenueEntry{
		ID:          uuid.New().String(),
		RideID:      rideID,
		Amount:      amount,
		Description: description,
		Data:        data,
		CreatedAt:   a.clock.Now().UnixMilli(),
	})
	if len(a.entries) > a.limit {
		a.entries = a.entries[len(a.entries)-a.limit:]
	}
}

func (a *revenueAggregator) Snapshot() models.RevenueSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return models.RevenueSnapshot{
		Total:  a.total,
		Latest: append([]models.RevenueEntry(nil), a.entries...),
	}
}

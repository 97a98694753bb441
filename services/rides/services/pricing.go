package services

import (
	"github.com/shopspring/decimal"

	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/piresc/tumpangan/services/rides"
)

// standardPricing is the config-driven per-seat estimator: a flat base fare
// plus a distance component, doubled for round-trip pricing.
type standardPricing struct {
	cfg models.PricingConfig
}

// NewStandardPricing creates the default PricingEstimator
func NewStandardPricing(cfg models.PricingConfig) rides.PricingEstimator {
	return &standardPricing{cfg: cfg}
}

func (p *standardPricing) ComputePrice(distanceKm float64, seats int, mode models.PricingMode) decimal.Decimal {
	if distanceKm < 0 {
		distanceKm = 0
	}
	price := decimal.NewFromFloat(p.cfg.BaseFare).
		Add(decimal.NewFromFloat(p.cfg.RatePerKm).Mul(decimal.NewFromFloat(distanceKm)))
	if mode == models.PricingModeDouble {
		price = price.Mul(decimal.NewFromInt(2))
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	return price.Round(2)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piresc/tumpangan/internal/pkg/models"
)

func TestComputePrice(t *testing.T) {
	pricing := NewStandardPricing(models.PricingConfig{BaseFare: 1.0, RatePerKm: 0.25})

	tests := []struct {
		name     string
		distance float64
		mode     models.PricingMode
		expected string
	}{
		{"single mode", 36, models.PricingModeSingle, "10.00"},
		{"double mode doubles", 36, models.PricingModeDouble, "20.00"},
		{"zero distance is base fare", 0, models.PricingModeSingle, "1.00"},
		{"negative distance clamped", -10, models.PricingModeSingle, "1.00"},
		{"fractional rounds to cents", 10.5, models.PricingModeSingle, "3.63"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputePrice(tt.distance, 2, tt.mode)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestStaticRoutes(t *testing.T) {
	routes := NewStaticRoutes(
		map[string]float64{"Jakarta|Bogor": 60},
		map[string]string{"Jakarta": "jabodetabek"},
		25,
	)

	assert.Equal(t, 60.0, routes.Distance("jakarta", "bogor"))
	assert.Equal(t, 60.0, routes.Distance("JAKARTA", "BOGOR"))
	// Reverse leg resolves through the same entry
	assert.Equal(t, 60.0, routes.Distance("bogor", "jakarta"))
	// Unknown routes fall back to the default
	assert.Equal(t, 25.0, routes.Distance("bandung", "malang"))

	area, ok := routes.Area(" jakarta ")
	assert.True(t, ok)
	assert.Equal(t, "jabodetabek", area)

	_, ok = routes.Area("atlantis")
	assert.False(t, ok)
}

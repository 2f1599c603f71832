package engine

import (
	"fmt"
	"math"
	"strings"

	"hotel-correlation/internal/config"
	"hotel-correlation/internal/model"
)

// PriceAdjuster applies a composite factor to a hotel's base price
// table, differentiated by room-type category.
type PriceAdjuster struct {
	rules *config.Rules
}

func NewPriceAdjuster(rules *config.Rules) *PriceAdjuster {
	return &PriceAdjuster{rules: rules}
}

// Adjust produces one entry per room type. Adjusted prices are rounded
// to the nearest integer currency unit. A zero or negative base price
// still gets an adjusted amount, but its percentage is reported as the
// N/A sentinel rather than dividing by zero.
func (a *PriceAdjuster) Adjust(basePrices map[string]float64, factor float64) map[string]model.AdjustedPrice {
	out := make(map[string]model.AdjustedPrice, len(basePrices))
	for roomType, original := range basePrices {
		applied := factor * a.roomTypeMultiplier(roomType)
		adjusted := math.Round(original * applied)

		out[roomType] = model.AdjustedPrice{
			RoomType:        roomType,
			OriginalPrice:   original,
			AdjustedAmount:  adjusted,
			PercentIncrease: formatPercent(original, adjusted),
			AppliedFactor:   fmt.Sprintf("%.2f", applied),
		}
	}
	return out
}

// Neutral returns the price table untouched (factor 1), the
// representation of "no adjustment" used to seed consolidation.
func (a *PriceAdjuster) Neutral(basePrices map[string]float64) map[string]model.AdjustedPrice {
	out := make(map[string]model.AdjustedPrice, len(basePrices))
	for roomType, original := range basePrices {
		out[roomType] = model.AdjustedPrice{
			RoomType:        roomType,
			OriginalPrice:   original,
			AdjustedAmount:  math.Round(original),
			PercentIncrease: formatPercent(original, math.Round(original)),
			AppliedFactor:   "1.00",
		}
	}
	return out
}

// roomTypeMultiplier matches the label against the differentiation
// rules: premium labels (suites, VIP) move more than the composite
// factor, economy labels move less.
func (a *PriceAdjuster) roomTypeMultiplier(label string) float64 {
	lower := strings.ToLower(label)
	for _, s := range a.rules.RoomTypes.Premium.Substrings {
		if strings.Contains(lower, strings.ToLower(s)) {
			return a.rules.RoomTypes.Premium.Multiplier
		}
	}
	for _, s := range a.rules.RoomTypes.Economy.Substrings {
		if strings.Contains(lower, strings.ToLower(s)) {
			return a.rules.RoomTypes.Economy.Multiplier
		}
	}
	return 1.0
}

func formatPercent(original, adjusted float64) string {
	if original <= 0 {
		return model.PercentNA
	}
	return fmt.Sprintf("%+.1f%%", (adjusted/original-1)*100)
}

package engine

import (
	"strings"

	"hotel-correlation/internal/config"
	"hotel-correlation/internal/model"
)

// Classifier assigns an impact tier to a single event. Tiers are
// evaluated high, then medium, then low; the first tier whose
// qualifying condition holds wins. Absent optional fields simply do
// not qualify, they never error.
type Classifier struct {
	rules *config.Rules
}

func NewClassifier(rules *config.Rules) *Classifier {
	return &Classifier{rules: rules}
}

func (c *Classifier) Classify(ev model.Event) model.ImpactTier {
	high := c.rules.Tiers.High
	medium := c.rules.Tiers.Medium

	if (ev.Capacity > 0 && ev.Capacity >= high.MinCapacity) ||
		containsAny(ev.Headliner, high.Performers) ||
		matchesType(ev.EventType, high.EventTypes) ||
		containsAny(ev.Venue, high.Venues) {
		return model.TierHigh
	}

	if (ev.Capacity > 0 && ev.Capacity >= medium.MinCapacity) ||
		matchesGenre(ev.Genre, medium.Genres) ||
		matchesType(ev.EventType, medium.EventTypes) ||
		anyPriceAbove(ev.PriceTier, medium.VIPPriceThreshold) {
		return model.TierMedium
	}

	return model.TierLow
}

// containsAny reports whether s contains any of the markers,
// case-insensitively.
func containsAny(s string, markers []string) bool {
	if s == "" {
		return false
	}
	lower := strings.ToLower(s)
	for _, m := range markers {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func matchesType(eventType string, types []string) bool {
	if eventType == "" {
		return false
	}
	for _, t := range types {
		if strings.EqualFold(eventType, t) {
			return true
		}
	}
	return false
}

func matchesGenre(genre string, genres []string) bool {
	if genre == "" {
		return false
	}
	for _, g := range genres {
		if strings.EqualFold(genre, g) {
			return true
		}
	}
	return false
}

func anyPriceAbove(prices map[string]float64, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	for _, p := range prices {
		if p > threshold {
			return true
		}
	}
	return false
}

package engine

import (
	"testing"

	"hotel-correlation/internal/config"
	"hotel-correlation/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestClassify_TierAssignment(t *testing.T) {
	c := NewClassifier(config.Default())

	tests := []struct {
		name     string
		event    model.Event
		expected model.ImpactTier
	}{
		{
			name:     "capacity at high threshold",
			event:    model.Event{Date: "2025-07-05", Title: "a", Capacity: 1000},
			expected: model.TierHigh,
		},
		{
			name:     "capacity just under high threshold falls to medium",
			event:    model.Event{Date: "2025-07-05", Title: "a", Capacity: 999},
			expected: model.TierMedium,
		},
		{
			name:     "festival type is high regardless of capacity",
			event:    model.Event{Date: "2025-07-05", Title: "a", EventType: "festival"},
			expected: model.TierHigh,
		},
		{
			name:     "international headliner is high",
			event:    model.Event{Date: "2025-07-05", Title: "a", Headliner: "Artista Internacional X"},
			expected: model.TierHigh,
		},
		{
			name:     "allowlisted venue substring is high",
			event:    model.Event{Date: "2025-07-05", Title: "a", Venue: "Palenque de Tijuana"},
			expected: model.TierHigh,
		},
		{
			name:     "CECUT venue is high",
			event:    model.Event{Date: "2025-07-26", Title: "a", Venue: "Centro Cultural Tijuana (CECUT)", Capacity: 1200},
			expected: model.TierHigh,
		},
		{
			name:     "capacity at medium threshold",
			event:    model.Event{Date: "2025-07-05", Title: "a", Capacity: 300},
			expected: model.TierMedium,
		},
		{
			name:     "capacity below medium threshold defaults low",
			event:    model.Event{Date: "2025-07-05", Title: "a", Capacity: 299},
			expected: model.TierLow,
		},
		{
			name:     "regional genre is medium",
			event:    model.Event{Date: "2025-07-05", Title: "a", Genre: "Regional Mexicano"},
			expected: model.TierMedium,
		},
		{
			name:     "concert type is medium",
			event:    model.Event{Date: "2025-07-05", Title: "a", EventType: "concierto"},
			expected: model.TierMedium,
		},
		{
			name:     "vip price above threshold is medium",
			event:    model.Event{Date: "2025-07-05", Title: "a", PriceTier: map[string]float64{"vip": 1501}},
			expected: model.TierMedium,
		},
		{
			name:     "vip price at threshold does not qualify",
			event:    model.Event{Date: "2025-07-05", Title: "a", PriceTier: map[string]float64{"vip": 1500}},
			expected: model.TierLow,
		},
		{
			name:     "bare event with no optional fields is low",
			event:    model.Event{Date: "2025-07-05", Title: "a"},
			expected: model.TierLow,
		},
		{
			name:     "workshop with tiny capacity is low",
			event:    model.Event{Date: "2025-07-05", Title: "a", EventType: "workshop", Capacity: 60},
			expected: model.TierLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.event))
		})
	}
}

// Tiers are evaluated high, then medium; an event qualifying for both
// must land in high. Loosening that order silently reclassifies
// borderline events, so it is pinned here.
func TestClassify_FirstMatchWins(t *testing.T) {
	c := NewClassifier(config.Default())

	ev := model.Event{
		Date:      "2025-07-05",
		Title:     "Luis Angel El Flaco en Tijuana",
		Capacity:  5000,
		EventType: "concierto",
		Genre:     "Regional Mexicano",
	}

	assert.Equal(t, model.TierHigh, c.Classify(ev))
}

func TestClassify_TunedRuleTableChangesOutcome(t *testing.T) {
	rules := config.Default()
	rules.Tiers.High.MinCapacity = 10000
	c := NewClassifier(rules)

	ev := model.Event{Date: "2025-07-05", Title: "a", Capacity: 5000}

	assert.Equal(t, model.TierMedium, c.Classify(ev))
}

package engine

import (
	"math"
	"time"

	"hotel-correlation/internal/config"
	"hotel-correlation/internal/model"
)

// ImpactCalculator composes the multiplicative factors for one event
// on one evaluation date. All missing fields degrade to neutral
// multipliers; there are no failure modes.
type ImpactCalculator struct {
	rules *config.Rules
}

func NewImpactCalculator(rules *config.Rules) *ImpactCalculator {
	return &ImpactCalculator{rules: rules}
}

// Assess computes the composite factor for ev, already classified into
// tier. events is the full event set, used only to detect simultaneity;
// today is the evaluation date (midnight).
func (ic *ImpactCalculator) Assess(ev model.Event, eventDate time.Time, tier model.ImpactTier, events []model.Event, today time.Time) model.ImpactAssessment {
	daysUntil := int(math.Ceil(eventDate.Sub(today).Hours() / 24))

	base := ic.rules.Tier(tier).Multiplier
	if ev.FreeEntry() {
		base *= ic.rules.Factors.FreeAdmissionDamping
	}

	anticipation := ic.anticipationFactor(daysUntil)

	weekend := 1.0
	switch eventDate.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		weekend = ic.rules.Factors.Weekend
	}

	status := 1.0
	if ev.Cancelled() {
		status = 0
	}

	simultaneity := 1.0
	if countSameDay(events, eventDate) > 1 {
		simultaneity = ic.rules.Factors.Simultaneity
	}

	composite := base * anticipation * weekend * status * simultaneity
	if composite > ic.rules.MaxFactor {
		composite = ic.rules.MaxFactor
	}

	return model.ImpactAssessment{
		Tier:            tier,
		CompositeFactor: composite,
		Breakdown: model.FactorBreakdown{
			Tier:           tier,
			BaseFactor:     base,
			Anticipation:   anticipation,
			Weekend:        weekend,
			Simultaneity:   simultaneity,
			DaysUntilEvent: daysUntil,
		},
	}
}

// anticipationFactor walks the ladder ascending and applies the first
// step the event falls within. Beyond the widest step the boost is
// neutral, not an error; past-dated events fall into the tightest step.
func (ic *ImpactCalculator) anticipationFactor(daysUntil int) float64 {
	steps := ic.rules.Anticipation
	if len(steps) == 0 || daysUntil > steps[len(steps)-1].WithinDays {
		return 1
	}
	for _, s := range steps {
		if daysUntil <= s.WithinDays {
			return 1 + s.Boost
		}
	}
	return 1
}

func countSameDay(events []model.Event, date time.Time) int {
	n := 0
	for _, e := range events {
		d, err := e.ParseDate()
		if err != nil {
			continue
		}
		if d.Equal(date) {
			n++
		}
	}
	return n
}

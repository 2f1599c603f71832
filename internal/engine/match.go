package engine

import (
	"hotel-correlation/internal/config"
	"hotel-correlation/internal/geo"
	"hotel-correlation/internal/model"
)

// HotelMatcher selects the hotels within an event tier's affect radius.
type HotelMatcher struct {
	rules *config.Rules
}

func NewHotelMatcher(rules *config.Rules) *HotelMatcher {
	return &HotelMatcher{rules: rules}
}

// Match returns the subset of hotels whose distance to the event is
// within the tier's radius, in stable input order. Events without a
// location are anchored at the configured city center.
func (m *HotelMatcher) Match(ev model.Event, tier model.ImpactTier, hotels []model.Hotel) []model.Hotel {
	origin := m.EventLocation(ev)
	radius := m.rules.Tier(tier).RadiusKm

	var matched []model.Hotel
	for _, h := range hotels {
		if geo.Distance(origin, h.Location) <= radius {
			matched = append(matched, h)
		}
	}
	return matched
}

// EventLocation resolves the event's coordinate, falling back to the
// configured city center when the record has none.
func (m *HotelMatcher) EventLocation(ev model.Event) model.Coordinate {
	if ev.Location != nil && !ev.Location.IsZero() {
		return *ev.Location
	}
	return m.rules.CityCenterCoordinate()
}

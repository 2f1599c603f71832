package analysis

import (
	"math"

	"hotel-correlation/internal/model"
)

// HotelImpactSummary aggregates one hotel's demand pressure across all
// consolidated dates of a correlation run.
type HotelImpactSummary struct {
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel"`

	AffectedDates int `json:"affected_dates"`
	EventCount    int `json:"event_count"`

	MinFactor  float64 `json:"min_factor"`
	MaxFactor  float64 `json:"max_factor"`
	MeanFactor float64 `json:"mean_factor"`

	// PeakDate is the date carrying the highest factor (earliest on
	// ties), the day the revenue team looks at first.
	PeakDate string `json:"peak_date"`
}

// Summarize folds consolidated entries into per-hotel summaries.
// Entries are expected in the orchestrator's (date, hotel) order, which
// makes PeakDate deterministic.
func Summarize(entries []model.ConsolidatedResult) []HotelImpactSummary {
	byHotel := map[string]*HotelImpactSummary{}
	order := []string{}

	for _, e := range entries {
		s, ok := byHotel[e.Hotel.ID]
		if !ok {
			s = &HotelImpactSummary{
				HotelID:   e.Hotel.ID,
				HotelName: e.Hotel.Name,
				MinFactor: math.Inf(1),
				MaxFactor: math.Inf(-1),
			}
			byHotel[e.Hotel.ID] = s
			order = append(order, e.Hotel.ID)
		}

		s.AffectedDates++
		s.EventCount += len(e.Events)
		s.MeanFactor += e.MaxFactor
		if e.MaxFactor < s.MinFactor {
			s.MinFactor = e.MaxFactor
		}
		if e.MaxFactor > s.MaxFactor {
			s.MaxFactor = e.MaxFactor
			s.PeakDate = e.Date
		}
	}

	out := make([]HotelImpactSummary, 0, len(order))
	for _, id := range order {
		s := byHotel[id]
		s.MeanFactor /= float64(s.AffectedDates)
		out = append(out, *s)
	}
	return out
}

// MarketOverview is the dashboard's headline block for one run.
type MarketOverview struct {
	HotelsAffected int     `json:"hotels_affected"`
	DatesAffected  int     `json:"dates_affected"`
	TotalEvents    int     `json:"total_events"`
	PeakFactor     float64 `json:"peak_factor"`
	MeanMaxFactor  float64 `json:"mean_max_factor"`
}

func Overview(entries []model.ConsolidatedResult) MarketOverview {
	o := MarketOverview{}
	if len(entries) == 0 {
		return o
	}

	hotels := map[string]struct{}{}
	dates := map[string]struct{}{}
	events := map[string]struct{}{}
	sum := 0.0

	for _, e := range entries {
		hotels[e.Hotel.ID] = struct{}{}
		dates[e.Date] = struct{}{}
		for _, ev := range e.Events {
			events[ev.Date+"|"+ev.Title] = struct{}{}
		}
		sum += e.MaxFactor
		if e.MaxFactor > o.PeakFactor {
			o.PeakFactor = e.MaxFactor
		}
	}

	o.HotelsAffected = len(hotels)
	o.DatesAffected = len(dates)
	o.TotalEvents = len(events)
	o.MeanMaxFactor = sum / float64(len(entries))
	return o
}

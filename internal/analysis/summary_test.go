package analysis

import (
	"testing"

	"hotel-correlation/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(date, hotelID string, factor float64, eventCount int) model.ConsolidatedResult {
	events := make([]model.Event, eventCount)
	for i := range events {
		events[i] = model.Event{Date: date, Title: date + "-evento"}
	}
	return model.ConsolidatedResult{
		Date:      date,
		Hotel:     model.Hotel{ID: hotelID, Name: "Hotel " + hotelID},
		Events:    events,
		MaxFactor: factor,
	}
}

func TestSummarize_PerHotelStats(t *testing.T) {
	entries := []model.ConsolidatedResult{
		entry("2025-07-05", "h1", 2.5, 2),
		entry("2025-07-12", "h1", 1.3, 1),
		entry("2025-07-05", "h2", 1.8, 1),
	}

	summaries := Summarize(entries)
	require.Len(t, summaries, 2)

	h1 := summaries[0]
	assert.Equal(t, "h1", h1.HotelID)
	assert.Equal(t, 2, h1.AffectedDates)
	assert.Equal(t, 3, h1.EventCount)
	assert.InDelta(t, 1.3, h1.MinFactor, 1e-9)
	assert.InDelta(t, 2.5, h1.MaxFactor, 1e-9)
	assert.InDelta(t, 1.9, h1.MeanFactor, 1e-9)
	assert.Equal(t, "2025-07-05", h1.PeakDate)
}

func TestRankByDemandPressure(t *testing.T) {
	entries := []model.ConsolidatedResult{
		entry("2025-07-05", "h1", 1.3, 1),
		entry("2025-07-05", "h2", 2.5, 1),
		entry("2025-07-06", "h3", 1.8, 1),
	}

	ranked := RankByDemandPressure(entries)
	require.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "h2", ranked[0].HotelID)
	assert.Equal(t, "h3", ranked[1].HotelID)
	assert.Equal(t, "h1", ranked[2].HotelID)
}

func TestOverview(t *testing.T) {
	entries := []model.ConsolidatedResult{
		entry("2025-07-05", "h1", 2.5, 2),
		entry("2025-07-05", "h2", 1.8, 1),
		entry("2025-07-12", "h1", 1.3, 1),
	}

	o := Overview(entries)

	assert.Equal(t, 2, o.HotelsAffected)
	assert.Equal(t, 2, o.DatesAffected)
	assert.InDelta(t, 2.5, o.PeakFactor, 1e-9)
	assert.InDelta(t, (2.5+1.8+1.3)/3, o.MeanMaxFactor, 1e-9)
}

func TestOverview_EmptyRun(t *testing.T) {
	o := Overview(nil)

	assert.Zero(t, o.HotelsAffected)
	assert.Zero(t, o.PeakFactor)
}

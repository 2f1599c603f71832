package analysis

import (
	"sort"

	"hotel-correlation/internal/model"
)

type RankedHotel struct {
	Rank int `json:"rank"`
	HotelImpactSummary
}

// RankByDemandPressure sorts hotel summaries descending by their peak
// factor, breaking ties by mean factor and then hotel id for stable
// output.
func RankByDemandPressure(entries []model.ConsolidatedResult) []RankedHotel {
	summaries := Summarize(entries)
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].MaxFactor != summaries[j].MaxFactor {
			return summaries[i].MaxFactor > summaries[j].MaxFactor
		}
		if summaries[i].MeanFactor != summaries[j].MeanFactor {
			return summaries[i].MeanFactor > summaries[j].MeanFactor
		}
		return summaries[i].HotelID < summaries[j].HotelID
	})

	out := make([]RankedHotel, len(summaries))
	for i, s := range summaries {
		out[i] = RankedHotel{Rank: i + 1, HotelImpactSummary: s}
	}
	return out
}

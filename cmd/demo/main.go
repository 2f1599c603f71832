package main

import (
	"flag"
	"fmt"
	"time"

	"hotel-correlation/internal/config"
	"hotel-correlation/internal/engine"
	"hotel-correlation/internal/model"
)

// Demo:
// - Build a small in-memory set of hotels and events
// - Run a correlation over one month
// - Print the consolidated prices to show how the pieces fit together
func main() {
	asOf := flag.String("as-of", "2025-07-01", "Evaluation date (YYYY-MM-DD)")
	flag.Parse()

	evaluation, err := time.Parse(model.DateLayout, *asOf)
	if err != nil {
		panic(err)
	}

	center := model.Coordinate{Latitude: 32.5149, Longitude: -117.0382}

	hotels := []model.Hotel{
		{
			ID:       "hotel_lucerna",
			Name:     "Hotel Lucerna Tijuana",
			Location: model.Coordinate{Latitude: 32.5283, Longitude: -117.0187},
			BasePrices: map[string]float64{
				"habitacion_sencilla": 1200,
				"habitacion_doble":    1500,
				"suite":               2200,
			},
		},
		{
			ID:       "hotel_real_inn",
			Name:     "Real Inn Tijuana",
			Location: model.Coordinate{Latitude: 32.5217, Longitude: -117.0301},
			BasePrices: map[string]float64{
				"habitacion_sencilla": 950,
				"habitacion_doble":    1180,
			},
		},
	}

	events := []model.Event{
		{
			Date:      "2025-07-05",
			Title:     "Concierto en el Palenque",
			Location:  &center,
			Capacity:  5000,
			EventType: "concierto",
			Genre:     "Regional Mexicano",
			Venue:     "Palenque de Tijuana",
			Status:    model.StatusScheduled,
		},
		{
			Date:      "2025-07-12",
			Title:     "Festival gastronomico",
			Capacity:  800,
			EventType: "festival",
			Status:    model.StatusScheduled,
		},
		{
			Date:      "2025-07-12",
			Title:     "Exposicion local",
			Capacity:  120,
			EventType: "exposicion",
			Status:    model.StatusScheduled,
		},
	}

	rules := config.Default()
	correlator := engine.New(rules, nil)

	start, _ := time.Parse(model.DateLayout, "2025-07-01")
	end, _ := time.Parse(model.DateLayout, "2025-07-31")

	result, err := correlator.Correlate(hotels, events, start, end, evaluation)
	if err != nil {
		panic(err)
	}

	for _, entry := range result.Entries {
		fmt.Printf("\n%s  %s  (factor %.2f, %d event(s))\n",
			entry.Date, entry.Hotel.Name, entry.MaxFactor, len(entry.Events))
		for room, price := range entry.FinalPrices {
			fmt.Printf("  %-22s %8.0f -> %8.0f  (%s)\n",
				room, price.OriginalPrice, price.AdjustedAmount, price.PercentIncrease)
		}
	}
}

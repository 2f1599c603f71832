package engine

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"hotel-correlation/internal/model"
)

// WriteResultsCSV flattens consolidated results to one row per
// (date, hotel, room type). This is the primary artifact the revenue
// team imports into their sheets.
func WriteResultsCSV(path string, entries []model.ConsolidatedResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"fecha",
		"hotel_id",
		"hotel",
		"eventos",
		"factor_maximo",
		"room_type",
		"precio_original",
		"precio_ajustado",
		"incremento",
		"factor_aplicado",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		roomTypes := make([]string, 0, len(e.FinalPrices))
		for rt := range e.FinalPrices {
			roomTypes = append(roomTypes, rt)
		}
		sort.Strings(roomTypes)

		for _, rt := range roomTypes {
			p := e.FinalPrices[rt]
			row := []string{
				e.Date,
				e.Hotel.ID,
				e.Hotel.Name,
				strconv.Itoa(len(e.Events)),
				fmtFloat(e.MaxFactor),
				rt,
				fmtFloat(p.OriginalPrice),
				fmtFloat(p.AdjustedAmount),
				p.PercentIncrease,
				p.AppliedFactor,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

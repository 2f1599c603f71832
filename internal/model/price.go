package model

// PercentNA is reported instead of a percentage when the original price
// is zero or negative and the increase is undefined.
const PercentNA = "N/A"

// AdjustedPrice is one room type's adjusted price with its delta.
// AdjustedAmount is rounded to the nearest integer currency unit;
// the formatted fields are intended for display as-is.
type AdjustedPrice struct {
	RoomType        string  `json:"room_type"`
	OriginalPrice   float64 `json:"original"`
	AdjustedAmount  float64 `json:"ajustado"`
	PercentIncrease string  `json:"incremento"`
	AppliedFactor   string  `json:"factor_aplicado"`
}

// ConsolidatedResult is the per-(date, hotel) outcome after folding all
// contributing events. FinalPrices always reflect exactly one winning
// event's computation (the highest composite factor seen, earliest on
// ties), never a sum or average across events.
type ConsolidatedResult struct {
	Date        string                   `json:"fecha"`
	Hotel       Hotel                    `json:"hotel"`
	Events      []Event                  `json:"eventos"`
	FinalPrices map[string]AdjustedPrice `json:"precios_finales"`
	MaxFactor   float64                  `json:"factor_maximo"`
}

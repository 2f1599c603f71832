package model

// ImpactTier is the demand-impact bucket an event is classified into.
// The tier labels are the product's original Spanish ones; they appear
// verbatim in stored rule files and dashboard output.
type ImpactTier string

const (
	TierHigh   ImpactTier = "alto"
	TierMedium ImpactTier = "medio"
	TierLow    ImpactTier = "bajo"
)

// FactorBreakdown is the traceable justification for a composite factor.
// Each component is the multiplier actually applied, so the composite
// (before the cap) is their product.
type FactorBreakdown struct {
	Tier           ImpactTier `json:"tier"`
	BaseFactor     float64    `json:"base_factor"`
	Anticipation   float64    `json:"anticipation_factor"`
	Weekend        float64    `json:"weekend_factor"`
	Simultaneity   float64    `json:"simultaneity_factor"`
	DaysUntilEvent int        `json:"days_until_event"`
}

// ImpactAssessment is computed fresh per (event, evaluation date) pair
// and never persisted by the engine.
type ImpactAssessment struct {
	Tier            ImpactTier      `json:"tier"`
	CompositeFactor float64         `json:"composite_factor"`
	Breakdown       FactorBreakdown `json:"breakdown"`
}

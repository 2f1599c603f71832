package config

import (
	"errors"
	"fmt"
	"os"

	"hotel-correlation/internal/model"

	"gopkg.in/yaml.v3"
)

// Rules is the on-disk correlation rule set (YAML). Tier parameters,
// the anticipation ladder, and room-type differentiation are data, not
// code branches, so they can be tuned without touching the algorithms.
type Rules struct {
	Tiers        TierSet          `yaml:"tiers" json:"tiers"`
	Factors      AdditionalFactors `yaml:"factors" json:"factors"`
	Anticipation []AnticipationStep `yaml:"anticipation" json:"anticipation"`
	MaxFactor    float64          `yaml:"max_factor" json:"max_factor"`
	CityCenter   Coordinate       `yaml:"city_center" json:"city_center"`
	RoomTypes    RoomTypeRules    `yaml:"room_types" json:"room_types"`
}

// TierSet fixes the evaluation order: high is always checked before
// medium, medium before low.
type TierSet struct {
	High   TierRule `yaml:"high" json:"high"`
	Medium TierRule `yaml:"medium" json:"medium"`
	Low    TierRule `yaml:"low" json:"low"`
}

// TierRule carries one tier's qualifying conditions and effect reach.
type TierRule struct {
	Multiplier        float64  `yaml:"multiplier" json:"multiplier"`
	RadiusKm          float64  `yaml:"radius_km" json:"radius_km"`
	EventTypes        []string `yaml:"event_types" json:"event_types"`
	MinCapacity       int      `yaml:"min_capacity" json:"min_capacity"`
	Performers        []string `yaml:"performers" json:"performers"`
	Venues            []string `yaml:"venues,omitempty" json:"venues,omitempty"`
	Genres            []string `yaml:"genres,omitempty" json:"genres,omitempty"`
	VIPPriceThreshold float64  `yaml:"vip_price_threshold,omitempty" json:"vip_price_threshold,omitempty"`
}

type AdditionalFactors struct {
	Weekend              float64 `yaml:"weekend" json:"weekend"`
	Simultaneity         float64 `yaml:"simultaneous_events" json:"simultaneous_events"`
	FreeAdmissionDamping float64 `yaml:"free_admission_damping" json:"free_admission_damping"`
}

// AnticipationStep says: within this many days of the event, boost the
// factor by Boost. Steps must be sorted ascending by WithinDays; the
// first step the event falls within wins.
type AnticipationStep struct {
	WithinDays int     `yaml:"within_days" json:"within_days"`
	Boost      float64 `yaml:"boost" json:"boost"`
}

type Coordinate struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// RoomTypeRules drive per-room-type differentiation. A label matching
// any premium substring (case-insensitive) gets the premium multiplier,
// an economy match gets the economy one, anything else 1.0.
type RoomTypeRules struct {
	Premium RoomTypeRule `yaml:"premium" json:"premium"`
	Economy RoomTypeRule `yaml:"economy" json:"economy"`
}

type RoomTypeRule struct {
	Substrings []string `yaml:"substrings" json:"substrings"`
	Multiplier float64  `yaml:"multiplier" json:"multiplier"`
}

// Default returns the production Tijuana rule set. Loaded files overlay
// these values, so a partial file only has to name what it changes.
func Default() *Rules {
	return &Rules{
		Tiers: TierSet{
			High: TierRule{
				Multiplier:  1.5,
				RadiusKm:    10,
				EventTypes:  []string{"festival"},
				MinCapacity: 1000,
				Performers:  []string{"internacional", "nacional_top"},
				Venues:      []string{"CECUT", "Palenque"},
			},
			Medium: TierRule{
				Multiplier:        1.25,
				RadiusKm:          5,
				EventTypes:        []string{"concierto"},
				MinCapacity:       300,
				Performers:        []string{"nacional", "regional"},
				Genres:            []string{"Regional Mexicano"},
				VIPPriceThreshold: 1500,
			},
			Low: TierRule{
				Multiplier:  1.1,
				RadiusKm:    2,
				EventTypes:  []string{"workshop", "conferencia", "evento_local"},
				MinCapacity: 50,
				Performers:  []string{"local"},
			},
		},
		Factors: AdditionalFactors{
			Weekend:              1.2,
			Simultaneity:         1.4,
			FreeAdmissionDamping: 0.8,
		},
		Anticipation: []AnticipationStep{
			{WithinDays: 1, Boost: 0.8},
			{WithinDays: 3, Boost: 0.6},
			{WithinDays: 7, Boost: 0.4},
			{WithinDays: 15, Boost: 0.2},
			{WithinDays: 30, Boost: 0.1},
		},
		MaxFactor: 2.5,
		CityCenter: Coordinate{
			Lat: 32.5149,
			Lng: -117.0382,
		},
		RoomTypes: RoomTypeRules{
			Premium: RoomTypeRule{
				Substrings: []string{"suite", "vip"},
				Multiplier: 1.2,
			},
			Economy: RoomTypeRule{
				Substrings: []string{"estandar", "sencilla", "standard", "basic"},
				Multiplier: 0.9,
			},
		},
	}
}

// Load reads a rule file, overlays it on the defaults, and validates.
func Load(path string) (*Rules, error) {
	r, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("rule file %s invalid: %w", path, err)
	}
	return r, nil
}

// LoadUnchecked loads and merges rules without validating. Useful for
// printing partial rule files while tuning.
func LoadUnchecked(path string) (*Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := Default()
	if err := yaml.Unmarshal(raw, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rules) Validate() error {
	if r == nil {
		return errors.New("rules are nil")
	}
	for _, t := range []struct {
		name string
		rule TierRule
	}{
		{"high", r.Tiers.High},
		{"medium", r.Tiers.Medium},
		{"low", r.Tiers.Low},
	} {
		if t.rule.Multiplier <= 0 {
			return fmt.Errorf("tier %s: multiplier must be > 0", t.name)
		}
		if t.rule.RadiusKm <= 0 {
			return fmt.Errorf("tier %s: radius_km must be > 0", t.name)
		}
		if t.rule.MinCapacity < 0 {
			return fmt.Errorf("tier %s: min_capacity must be >= 0", t.name)
		}
	}
	if r.MaxFactor < 1 {
		return errors.New("max_factor must be >= 1")
	}
	if r.Factors.Weekend <= 0 || r.Factors.Simultaneity <= 0 || r.Factors.FreeAdmissionDamping <= 0 {
		return errors.New("additional factors must be > 0")
	}
	if len(r.Anticipation) == 0 {
		return errors.New("anticipation ladder is empty")
	}
	for i := 1; i < len(r.Anticipation); i++ {
		if r.Anticipation[i].WithinDays <= r.Anticipation[i-1].WithinDays {
			return errors.New("anticipation steps must be sorted ascending by within_days")
		}
	}
	if r.RoomTypes.Premium.Multiplier <= 0 || r.RoomTypes.Economy.Multiplier <= 0 {
		return errors.New("room type multipliers must be > 0")
	}
	return nil
}

// Tier returns the parameters for a classified tier.
func (r *Rules) Tier(t model.ImpactTier) TierRule {
	switch t {
	case model.TierHigh:
		return r.Tiers.High
	case model.TierMedium:
		return r.Tiers.Medium
	default:
		return r.Tiers.Low
	}
}

// CityCenterCoordinate is the fallback location for events without one.
func (r *Rules) CityCenterCoordinate() model.Coordinate {
	return model.Coordinate{Latitude: r.CityCenter.Lat, Longitude: r.CityCenter.Lng}
}

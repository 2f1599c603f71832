package models

import (
	"time"

	"hotel-correlation/internal/analysis"
	"hotel-correlation/internal/engine"
	"hotel-correlation/internal/model"
)

// CorrelateResponse represents the response from a correlation run
type CorrelateResponse struct {
	ID      string                     `json:"id"`
	Status  string                     `json:"status"`
	Window  DateWindow                 `json:"window"`
	Entries []model.ConsolidatedResult `json:"entries"`
	Summary *analysis.MarketOverview   `json:"summary,omitempty"`
	Skipped []engine.Diagnostic        `json:"skipped,omitempty"`
}

// DateWindow represents the evaluated date range
type DateWindow struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	EvaluationDate string `json:"evaluation_date"`
}

// AssessResponse represents a single-event impact breakdown for one hotel
type AssessResponse struct {
	Assessment model.ImpactAssessment        `json:"assessment"`
	Prices     map[string]model.AdjustedPrice `json:"prices"`
}

// RankResponse represents the ranking of hotels by demand pressure
type RankResponse struct {
	RunID    string                 `json:"run_id"`
	Rankings []analysis.RankedHotel `json:"rankings"`
}

// RunInfo summarizes one stored correlation run
type RunInfo struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Entries    int       `json:"entries"`
	Skipped    int       `json:"skipped"`
	PeakFactor float64   `json:"peak_factor"`
}

// HotelCatalog lists the hotels known to the server
type HotelCatalog struct {
	Hotels    []model.Hotel `json:"hotels"`
	Count     int           `json:"count"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// EventCatalog lists the events known to the server
type EventCatalog struct {
	Events    []model.Event `json:"events"`
	Count     int           `json:"count"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

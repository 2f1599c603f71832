package models

import "hotel-correlation/internal/model"

// CorrelateRequest represents the request body for running a correlation
type CorrelateRequest struct {
	Hotels         []model.Hotel    `json:"hotels" binding:"required"`
	Events         []model.Event    `json:"events" binding:"required"`
	StartDate      string           `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate        string           `json:"end_date" binding:"required"`   // YYYY-MM-DD
	EvaluationDate string           `json:"evaluation_date,omitempty"`     // defaults to today
	Options        CorrelateOptions `json:"options,omitempty"`
}

// CorrelateOptions contains optional correlation parameters
type CorrelateOptions struct {
	IncludeSummary bool `json:"include_summary,omitempty"`
	IncludeSkipped bool `json:"include_skipped,omitempty"`
}

// AssessRequest represents a request to assess one event against one hotel
type AssessRequest struct {
	Hotel          model.Hotel   `json:"hotel" binding:"required"`
	Event          model.Event   `json:"event" binding:"required"`
	Events         []model.Event `json:"events,omitempty"` // same-day context for simultaneity
	EvaluationDate string        `json:"evaluation_date,omitempty"`
}

// RankRequest represents query parameters for ranking hotels of a stored run
type RankRequest struct {
	Limit int `form:"limit,omitempty"` // default: 10
}

package model

import (
	"errors"
	"time"
)

// DateLayout is the ISO calendar-date layout used by all event and
// range dates. Times of day are irrelevant to the engine.
const DateLayout = "2006-01-02"

// EventStatus distinguishes events still expected to happen from
// cancelled ones. A cancelled event still flows through the pipeline
// but contributes a zero factor.
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCancelled EventStatus = "cancelled"
)

// Admission marks free-entry events, which dampen demand impact
// without zeroing it.
type Admission string

const (
	AdmissionPaid Admission = "paid"
	AdmissionFree Admission = "free"
)

// Event is a read-only input record in the shape the event scrapers
// emit. Every field except Date and Title is optional; absent fields
// degrade to "does not qualify" during classification, never to errors.
type Event struct {
	Date      string             `json:"fecha"`
	Title     string             `json:"titulo"`
	Location  *Coordinate        `json:"ubicacion,omitempty"`
	Capacity  int                `json:"capacidad,omitempty"`
	EventType string             `json:"tipo_evento,omitempty"`
	Genre     string             `json:"genero,omitempty"`
	Headliner string             `json:"artista_principal,omitempty"`
	Venue     string             `json:"lugar,omitempty"`
	Status    EventStatus        `json:"estado,omitempty"`
	PriceTier map[string]float64 `json:"precios,omitempty"`
	Admission Admission          `json:"admission,omitempty"`
}

func (e Event) Validate() error {
	if e.Date == "" {
		return errors.New("event date is required")
	}
	if _, err := e.ParseDate(); err != nil {
		return err
	}
	return nil
}

// ParseDate returns the event's calendar date at midnight UTC.
func (e Event) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// Cancelled treats the zero value (and any unknown status) as scheduled.
func (e Event) Cancelled() bool {
	return e.Status == StatusCancelled
}

// FreeEntry reports whether the event has free admission.
func (e Event) FreeEntry() bool {
	return e.Admission == AdmissionFree
}

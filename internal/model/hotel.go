package model

import "errors"

// Hotel is a read-only input record. BasePrices keys are free-form
// room-type labels (e.g. "habitacion_doble", "suite_junior"); they are
// matched case-insensitively by substring against the differentiation
// rules when prices are adjusted.
type Hotel struct {
	ID         string             `json:"id"`
	Name       string             `json:"nombre"`
	Location   Coordinate         `json:"ubicacion"`
	BasePrices map[string]float64 `json:"precios"`
}

func (h Hotel) Validate() error {
	if h.ID == "" {
		return errors.New("hotel id is required")
	}
	if len(h.BasePrices) == 0 {
		return errors.New("hotel has no base price table")
	}
	return nil
}

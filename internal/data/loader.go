package data

import (
	"encoding/json"
	"fmt"
	"os"

	"hotel-correlation/internal/model"
)

// Dataset is one loaded snapshot of the hotel and event records the
// scrapers write under resultados/.
type Dataset struct {
	Hotels []model.Hotel `json:"hotels"`
	Events []model.Event `json:"events"`
}

// LoadHotels reads a hotel records file (hoteles_tijuana_promedios.json
// shape: a plain array).
func LoadHotels(path string) ([]model.Hotel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading hotels file: %w", err)
	}
	var hotels []model.Hotel
	if err := json.Unmarshal(raw, &hotels); err != nil {
		return nil, fmt.Errorf("parsing hotels file %s: %w", path, err)
	}
	return hotels, nil
}

// LoadEvents reads an event records file (eventos_tijuana_eventos.json
// shape: a plain array).
func LoadEvents(path string) ([]model.Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}
	var events []model.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("parsing events file %s: %w", path, err)
	}
	return events, nil
}

// LoadDataset loads both record files into one snapshot.
func LoadDataset(hotelsPath, eventsPath string) (*Dataset, error) {
	hotels, err := LoadHotels(hotelsPath)
	if err != nil {
		return nil, err
	}
	events, err := LoadEvents(eventsPath)
	if err != nil {
		return nil, err
	}
	return &Dataset{Hotels: hotels, Events: events}, nil
}

// SaveEvents writes event records back out, pretty-printed, the same
// shape the scrapers produce. Used by the refresh tooling.
func SaveEvents(path string, events []model.Event) error {
	raw, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling events: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing events file: %w", err)
	}
	return nil
}

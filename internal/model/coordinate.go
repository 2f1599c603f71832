package model

// Coordinate is an immutable WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// IsZero reports whether the coordinate was never set. The city-center
// fallback is applied by callers when an event ships without one.
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

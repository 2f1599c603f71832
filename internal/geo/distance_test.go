package geo

import (
	"testing"

	"hotel-correlation/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetry(t *testing.T) {
	a := model.Coordinate{Latitude: 32.5149, Longitude: -117.0382}
	b := model.Coordinate{Latitude: 32.5321, Longitude: -117.0190}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-12)
}

func TestDistance_IdenticalCoordinatesIsZero(t *testing.T) {
	a := model.Coordinate{Latitude: 32.5149, Longitude: -117.0382}

	assert.Zero(t, Distance(a, a))
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name       string
		a, b       model.Coordinate
		expectedKm float64
		toleranceKm float64
	}{
		{
			name:       "downtown to otay, roughly 2.6km",
			a:          model.Coordinate{Latitude: 32.5149, Longitude: -117.0382},
			b:          model.Coordinate{Latitude: 32.5321, Longitude: -117.0190},
			expectedKm: 2.6,
			toleranceKm: 0.3,
		},
		{
			name:       "one degree of latitude is about 111km",
			a:          model.Coordinate{Latitude: 32.0, Longitude: -117.0},
			b:          model.Coordinate{Latitude: 33.0, Longitude: -117.0},
			expectedKm: 111.2,
			toleranceKm: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedKm, Distance(tt.a, tt.b), tt.toleranceKm)
		})
	}
}

package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hotelsJSON = `[
  {
    "id": "hotel_1",
    "nombre": "Hotel Lucerna Tijuana",
    "ubicacion": {"lat": 32.5149, "lng": -117.0382},
    "precios": {"habitacion_doble": 1500, "suite_junior": 2200}
  }
]`

const eventsJSON = `[
  {
    "fecha": "2025-07-05",
    "titulo": "Luis Angel El Flaco en Tijuana",
    "lugar": "Palenque de Tijuana",
    "capacidad": 5000,
    "tipo_evento": "concierto",
    "genero": "Regional Mexicano",
    "precios": {"general": 800, "vip": 1500}
  }
]`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	hotelsPath := writeFixture(t, "hotels.json", hotelsJSON)
	eventsPath := writeFixture(t, "events.json", eventsJSON)

	ds, err := LoadDataset(hotelsPath, eventsPath)
	require.NoError(t, err)

	require.Len(t, ds.Hotels, 1)
	assert.Equal(t, "hotel_1", ds.Hotels[0].ID)
	assert.InDelta(t, 32.5149, ds.Hotels[0].Location.Latitude, 1e-9)
	assert.Equal(t, 1500.0, ds.Hotels[0].BasePrices["habitacion_doble"])

	require.Len(t, ds.Events, 1)
	assert.Equal(t, "2025-07-05", ds.Events[0].Date)
	assert.Equal(t, 5000, ds.Events[0].Capacity)
	assert.Equal(t, 1500.0, ds.Events[0].PriceTier["vip"])
}

func TestLoadHotels_MalformedFile(t *testing.T) {
	path := writeFixture(t, "hotels.json", "{not json")

	_, err := LoadHotels(path)
	assert.Error(t, err)
}

func TestSnapshotStore_CachesUntilTTL(t *testing.T) {
	loads := 0
	store := NewSnapshotStore(time.Hour, func() (*Dataset, error) {
		loads++
		return &Dataset{}, nil
	})

	_, err := store.Get()
	require.NoError(t, err)
	_, err = store.Get()
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
}

func TestSnapshotStore_RefreshForcesReload(t *testing.T) {
	loads := 0
	store := NewSnapshotStore(time.Hour, func() (*Dataset, error) {
		loads++
		return &Dataset{}, nil
	})

	_, err := store.Get()
	require.NoError(t, err)
	_, err = store.Refresh()
	require.NoError(t, err)

	assert.Equal(t, 2, loads)
}

func TestSnapshotStore_ServesStaleOnFailedReload(t *testing.T) {
	loads := 0
	store := NewSnapshotStore(time.Hour, func() (*Dataset, error) {
		loads++
		if loads > 1 {
			return nil, errors.New("feed down")
		}
		return &Dataset{}, nil
	})

	first, err := store.Get()
	require.NoError(t, err)

	second, err := store.Refresh()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestFeedClient_FetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-07-01", r.URL.Query().Get("desde"))
		assert.Equal(t, "2025-07-31", r.URL.Query().Get("hasta"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventsJSON))
	}))
	defer srv.Close()

	client := NewFeedClient(srv.URL)
	start, _ := time.Parse("2006-01-02", "2025-07-01")
	end, _ := time.Parse("2006-01-02", "2025-07-31")

	events, err := client.FetchEvents(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Luis Angel El Flaco en Tijuana", events[0].Title)
}

func TestFeedClient_NonOKStatusIsFeedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewFeedClient(srv.URL)
	_, err := client.FetchEvents(context.Background(), time.Now(), time.Now())

	var feedErr *FeedError
	require.ErrorAs(t, err, &feedErr)
	assert.Equal(t, http.StatusTooManyRequests, feedErr.StatusCode)
	assert.Equal(t, "60", feedErr.RetryAfter)
}

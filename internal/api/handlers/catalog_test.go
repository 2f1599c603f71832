package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hotel-correlation/internal/api/models"
	"hotel-correlation/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	hotelsPath := filepath.Join(dir, "hotels.json")
	eventsPath := filepath.Join(dir, "events.json")

	hotelsJSON := `[
		{"id": "hotel_lucerna", "nombre": "Hotel Lucerna",
		 "ubicacion": {"lat": 32.5283, "lng": -117.0187},
		 "precios": {"habitacion_doble": 1500}}
	]`
	eventsJSON := `[
		{"fecha": "2025-07-05", "titulo": "Concierto en el Palenque",
		 "capacidad": 5000, "tipo_evento": "concierto"}
	]`
	require.NoError(t, os.WriteFile(hotelsPath, []byte(hotelsJSON), 0o644))
	require.NoError(t, os.WriteFile(eventsPath, []byte(eventsJSON), 0o644))

	store := data.NewSnapshotStore(time.Hour, func() (*data.Dataset, error) {
		return data.LoadDataset(hotelsPath, eventsPath)
	})
	h := NewCatalogHandler(store)

	router := gin.New()
	router.GET("/api/v1/hotels", h.ListHotels)
	router.GET("/api/v1/events", h.ListEvents)
	router.POST("/api/v1/catalog/refresh", h.RefreshCatalog)
	return router
}

func TestListHotels(t *testing.T) {
	router := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hotels", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HotelCatalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "hotel_lucerna", resp.Hotels[0].ID)
	assert.False(t, resp.UpdatedAt.IsZero())
}

func TestListEvents(t *testing.T) {
	router := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EventCatalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Concierto en el Palenque", resp.Events[0].Title)
}

func TestRefreshCatalog(t *testing.T) {
	router := setupCatalogRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/refresh", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["hotels"])
	assert.EqualValues(t, 1, resp["events"])
}

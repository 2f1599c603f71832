package handlers

import (
	"net/http"

	"hotel-correlation/internal/api/models"
	"hotel-correlation/internal/data"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the hotels and events the server knows about,
// read through the snapshot store so repeated calls do not hit disk.
type CatalogHandler struct {
	store *data.SnapshotStore
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(store *data.SnapshotStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListHotels handles GET /api/v1/hotels
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	ds, err := h.store.Get()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.HotelCatalog{
		Hotels:    ds.Hotels,
		Count:     len(ds.Hotels),
		UpdatedAt: h.store.LoadedAt(),
	})
}

// ListEvents handles GET /api/v1/events
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	ds, err := h.store.Get()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EventCatalog{
		Events:    ds.Events,
		Count:     len(ds.Events),
		UpdatedAt: h.store.LoadedAt(),
	})
}

// RefreshCatalog handles POST /api/v1/catalog/refresh
func (h *CatalogHandler) RefreshCatalog(c *gin.Context) {
	ds, err := h.store.Refresh()
	if err != nil {
		catalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hotels":     len(ds.Hotels),
		"events":     len(ds.Events),
		"updated_at": h.store.LoadedAt(),
	})
}

func catalogError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "CATALOG_LOAD_ERROR",
			Message: err.Error(),
		},
	})
}

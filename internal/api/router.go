package api

import (
	"net/http"

	"hotel-correlation/internal/api/handlers"
	"hotel-correlation/internal/api/middleware"
	"hotel-correlation/internal/config"
	"hotel-correlation/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter wires the full API surface. The snapshot store may be nil
// when the process has no local dataset; the catalog endpoints then
// respond 404.
func NewRouter(rules *config.Rules, store *data.SnapshotStore, app *config.App, log *zap.Logger) *gin.Engine {
	if app.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS(app.Server.AllowedOrigins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	correlateHandler := handlers.NewCorrelateHandler(rules, log)
	rulesHandler := handlers.NewRulesHandler(rules)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.POST("/correlate", correlateHandler.RunCorrelation)
		api.GET("/correlations", correlateHandler.ListRuns)
		api.GET("/correlations/:id", correlateHandler.GetRun)
		api.GET("/correlations/:id/rankings", correlateHandler.RankRun)
		api.POST("/assess", correlateHandler.AssessEvent)

		api.GET("/rules", rulesHandler.GetRules)

		if store != nil {
			catalogHandler := handlers.NewCatalogHandler(store)
			api.GET("/hotels", catalogHandler.ListHotels)
			api.GET("/events", catalogHandler.ListEvents)
			api.POST("/catalog/refresh", catalogHandler.RefreshCatalog)
		}
	}

	return router
}

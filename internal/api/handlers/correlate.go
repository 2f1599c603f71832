package handlers

import (
	"net/http"
	"sync"
	"time"

	"hotel-correlation/internal/analysis"
	"hotel-correlation/internal/api/models"
	"hotel-correlation/internal/config"
	"hotel-correlation/internal/engine"
	"hotel-correlation/internal/metrics"
	"hotel-correlation/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// storedRun keeps one finished correlation in memory so its entries can
// be fetched and ranked later without recomputing.
type storedRun struct {
	id        string
	createdAt time.Time
	window    models.DateWindow
	result    *engine.Result
}

// CorrelateHandler handles correlation-related requests
type CorrelateHandler struct {
	correlator *engine.Correlator
	adjuster   *engine.PriceAdjuster
	log        *zap.Logger

	mu   sync.RWMutex
	runs map[string]*storedRun
}

// NewCorrelateHandler creates a new correlate handler
func NewCorrelateHandler(rules *config.Rules, log *zap.Logger) *CorrelateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CorrelateHandler{
		correlator: engine.New(rules, log),
		adjuster:   engine.NewPriceAdjuster(rules),
		log:        log,
		runs:       make(map[string]*storedRun),
	}
}

// RunCorrelation handles POST /api/v1/correlate
func (h *CorrelateHandler) RunCorrelation(c *gin.Context) {
	var req models.CorrelateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	start, err := time.Parse(model.DateLayout, req.StartDate)
	if err != nil {
		badDate(c, "start_date")
		return
	}
	end, err := time.Parse(model.DateLayout, req.EndDate)
	if err != nil {
		badDate(c, "end_date")
		return
	}

	evaluation := time.Now().UTC()
	if req.EvaluationDate != "" {
		evaluation, err = time.Parse(model.DateLayout, req.EvaluationDate)
		if err != nil {
			badDate(c, "evaluation_date")
			return
		}
	}

	began := time.Now()
	result, err := h.correlator.Correlate(req.Hotels, req.Events, start, end, evaluation)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_RANGE",
				Message: err.Error(),
			},
		})
		return
	}
	metrics.CorrelationRuns.WithLabelValues("api").Inc()
	metrics.CorrelationDuration.Observe(time.Since(began).Seconds())
	metrics.ConsolidatedEntries.Set(float64(len(result.Entries)))

	run := &storedRun{
		id:        uuid.NewString(),
		createdAt: time.Now().UTC(),
		window: models.DateWindow{
			Start:          start.Format(model.DateLayout),
			End:            end.Format(model.DateLayout),
			EvaluationDate: evaluation.Format(model.DateLayout),
		},
		result: result,
	}
	h.mu.Lock()
	h.runs[run.id] = run
	h.mu.Unlock()

	h.log.Info("correlation run stored",
		zap.String("run_id", run.id),
		zap.Int("entries", len(result.Entries)),
		zap.Int("skipped", len(result.Skipped)))

	c.JSON(http.StatusOK, h.buildResponse(run, req.Options))
}

// GetRun handles GET /api/v1/correlations/:id
func (h *CorrelateHandler) GetRun(c *gin.Context) {
	run, ok := h.lookup(c.Param("id"))
	if !ok {
		runNotFound(c)
		return
	}
	c.JSON(http.StatusOK, h.buildResponse(run, models.CorrelateOptions{
		IncludeSummary: true,
		IncludeSkipped: true,
	}))
}

// ListRuns handles GET /api/v1/correlations
func (h *CorrelateHandler) ListRuns(c *gin.Context) {
	h.mu.RLock()
	infos := make([]models.RunInfo, 0, len(h.runs))
	for _, run := range h.runs {
		peak := 0.0
		for _, entry := range run.result.Entries {
			if entry.MaxFactor > peak {
				peak = entry.MaxFactor
			}
		}
		infos = append(infos, models.RunInfo{
			ID:         run.id,
			CreatedAt:  run.createdAt,
			Entries:    len(run.result.Entries),
			Skipped:    len(run.result.Skipped),
			PeakFactor: peak,
		})
	}
	h.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{"runs": infos, "count": len(infos)})
}

// RankRun handles GET /api/v1/correlations/:id/rankings
func (h *CorrelateHandler) RankRun(c *gin.Context) {
	run, ok := h.lookup(c.Param("id"))
	if !ok {
		runNotFound(c)
		return
	}

	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	ranked := analysis.RankByDemandPressure(run.result.Entries)
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	c.JSON(http.StatusOK, models.RankResponse{
		RunID:    run.id,
		Rankings: ranked[:limit],
	})
}

// AssessEvent handles POST /api/v1/assess
func (h *CorrelateHandler) AssessEvent(c *gin.Context) {
	var req models.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	evaluation := time.Now().UTC()
	if req.EvaluationDate != "" {
		var err error
		evaluation, err = time.Parse(model.DateLayout, req.EvaluationDate)
		if err != nil {
			badDate(c, "evaluation_date")
			return
		}
	}

	assessment, err := h.correlator.Assess(req.Event, req.Events, evaluation)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_EVENT",
				Message: err.Error(),
			},
		})
		return
	}
	if err := req.Hotel.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_HOTEL",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.AssessResponse{
		Assessment: assessment,
		Prices:     h.adjuster.Adjust(req.Hotel.BasePrices, assessment.CompositeFactor),
	})
}

func (h *CorrelateHandler) lookup(id string) (*storedRun, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	run, ok := h.runs[id]
	return run, ok
}

func (h *CorrelateHandler) buildResponse(run *storedRun, opts models.CorrelateOptions) models.CorrelateResponse {
	resp := models.CorrelateResponse{
		ID:      run.id,
		Status:  "completed",
		Window:  run.window,
		Entries: run.result.Entries,
	}
	if opts.IncludeSummary {
		overview := analysis.Overview(run.result.Entries)
		resp.Summary = &overview
	}
	if opts.IncludeSkipped {
		resp.Skipped = run.result.Skipped
	}
	return resp
}

func badDate(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_DATE",
			Message: field + " must be in YYYY-MM-DD format",
		},
	})
}

func runNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "RUN_NOT_FOUND",
			Message: "No correlation run with that id",
		},
	})
}

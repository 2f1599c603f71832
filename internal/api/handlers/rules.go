package handlers

import (
	"net/http"

	"hotel-correlation/internal/config"

	"github.com/gin-gonic/gin"
)

// RulesHandler exposes the active rule set for inspection
type RulesHandler struct {
	rules *config.Rules
}

// NewRulesHandler creates a new rules handler
func NewRulesHandler(rules *config.Rules) *RulesHandler {
	return &RulesHandler{rules: rules}
}

// GetRules handles GET /api/v1/rules
func (h *RulesHandler) GetRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.rules)
}

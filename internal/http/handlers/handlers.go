package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/aidlink/backend/internal/discovery"
	"github.com/aidlink/backend/internal/eligibility"
	"github.com/aidlink/backend/internal/models"
	"github.com/aidlink/backend/internal/places"
)

type Handler struct {
	Discovery       *discovery.Orchestrator
	Navigator       *eligibility.Navigator
	Validator       *validator.Validate
	Logger          zerolog.Logger
	DefaultLocation string
	RequestTimeout  time.Duration
	GoogleAvailable bool
	GeminiAvailable bool
}

type SearchRequest struct {
	Query      string  `json:"query"`
	Location   string  `json:"location"`
	Category   string  `json:"category" validate:"omitempty,oneof=food housing healthcare employment financial general"`
	MaxResults int     `json:"max_results" validate:"omitempty,min=1,max=50"`
	Radius     float64 `json:"radius" validate:"omitempty,gt=0,lte=100"`
}

type SearchResponse struct {
	Success         bool              `json:"success"`
	Query           string            `json:"query"`
	Recommendations []models.Resource `json:"recommendations"`
	TotalResults    int               `json:"total_results"`
	Source          string            `json:"source"`
	Confidence      float64           `json:"confidence"`
	Verified        bool              `json:"verified"`
}

type AnalyzeRequest struct {
	Situation string            `json:"situation" validate:"required"`
	Resources []models.Resource `json:"resources"`
	Location  string            `json:"location"`
}

type AnalyzeResponse struct {
	Success           bool              `json:"success"`
	Analysis          models.Analysis   `json:"analysis"`
	ActionPlan        models.ActionPlan `json:"action_plan"`
	DocumentChecklist []string          `json:"document_checklist"`
	AIModel           string            `json:"ai_model"`
	Confidence        float64           `json:"confidence"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Service status
// @Description Reports which upstream providers are configured
// @Tags status
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/status [get]
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                  "running",
		"data_source":             "live_providers_with_verified_fallback",
		"google_places_available": h.GoogleAvailable,
		"gemini_available":        h.GeminiAvailable,
		"timestamp":               time.Now().Format(time.RFC3339),
	})
}

// @Summary Search assistance resources
// @Description Finds assistance organizations near a location, falling back through providers
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "search parameters"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]any
// @Router /api/search [post]
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid search parameters", err.Error())
		return
	}

	if req.Location == "" {
		req.Location = h.DefaultLocation
	}
	if req.Category == "" {
		req.Category = models.CategoryGeneral
	}
	if req.MaxResults == 0 {
		req.MaxResults = 10
	}
	if req.Radius == 0 {
		req.Radius = 10
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result := h.Discovery.Search(ctx, places.Query{
		Text:        req.Query,
		Category:    req.Category,
		Location:    req.Location,
		MaxResults:  req.MaxResults,
		RadiusMiles: req.Radius,
	})

	c.JSON(http.StatusOK, SearchResponse{
		Success:         true,
		Query:           req.Query,
		Recommendations: result.Resources,
		TotalResults:    len(result.Resources),
		Source:          result.Source,
		Confidence:      result.Confidence,
		Verified:        result.Source == models.SourceVerifiedFallback,
	})
}

// @Summary Analyze eligibility
// @Description Turns a situation description into an analysis, action plan and document checklist
// @Tags eligibility
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "situation"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} map[string]any
// @Router /api/analyze-eligibility [post]
func (h *Handler) AnalyzeEligibility(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON body", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Situation description is required", err.Error())
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	analysis := h.Navigator.Analyze(ctx, req.Situation, req.Location)

	var plan models.ActionPlan
	var aiModel string
	if len(req.Resources) > 0 {
		plan, aiModel = h.Navigator.ActionPlanFromResources(ctx, analysis.Analysis, req.Resources, req.Location)
	} else {
		plan, aiModel = h.Navigator.ActionPlan(ctx, analysis.Analysis, req.Location)
	}
	checklist := h.Navigator.DocumentChecklist(ctx, analysis.Analysis)

	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:           true,
		Analysis:          analysis.Analysis,
		ActionPlan:        plan,
		DocumentChecklist: checklist,
		AIModel:           aiModel,
		Confidence:        analysis.Confidence,
	})
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := h.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

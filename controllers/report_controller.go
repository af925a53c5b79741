package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"monumentwatch/services"
	"monumentwatch/utils"
	"monumentwatch/validation"
)

// ReportController exposes the sighting-report and page-view operations over
// HTTP. The service is injected at construction time so tests can substitute
// a differently backed one.
type ReportController struct {
	svc *services.ReportService
}

// NewReportController creates a new ReportController instance.
func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{svc: svc}
}

// RecordPageView handles POST /api/page-view. The body may carry a page path;
// anything else about the body is ignored.
func (r *ReportController) RecordPageView(ctx *gin.Context) {
	var req struct {
		Page string `json:"page"`
	}
	// A missing or malformed body just means "no page given".
	_ = ctx.ShouldBindJSON(&req)

	if err := r.svc.RecordPageView(ctx.Request.Context(), req.Page); err != nil {
		utils.Sugar.Errorf("record page view failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to record page view")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats handles GET /api/stats.
func (r *ReportController) GetStats(ctx *gin.Context) {
	stats, err := r.svc.GetStats(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Errorf("fetch stats failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ListSightings handles GET /api/sightings?limit=N. A missing or unparsable
// limit falls back to the service default.
func (r *ReportController) ListSightings(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	sightings, err := r.svc.ListSightings(ctx.Request.Context(), limit)
	if err != nil {
		utils.Sugar.Errorf("list sightings failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to fetch sightings")
		return
	}
	ctx.JSON(http.StatusOK, sightings)
}

// CreateSighting handles POST /api/sightings. The body is run through the
// validation gate before the store is touched; a rejection renders as 400
// with a single descriptive message.
func (r *ReportController) CreateSighting(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, "failed to read request body")
		return
	}

	payload, verr := validation.ParseInsertSighting(body)
	if verr != nil {
		utils.Error(ctx, http.StatusBadRequest, verr.Error())
		return
	}

	sighting, err := r.svc.CreateSighting(ctx.Request.Context(), payload)
	if err != nil {
		utils.Sugar.Errorf("create sighting failed: %v", err)
		utils.Error(ctx, http.StatusInternalServerError, "Failed to create sighting")
		return
	}
	ctx.JSON(http.StatusCreated, sighting)
}

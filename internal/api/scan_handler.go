package api

import (
	"errors"
	"fmt"
	"net/http"

	"alcyxob/coach-diet/internal/service"

	"github.com/gin-gonic/gin"
)

// ScanHandler holds the scan service dependency.
type ScanHandler struct {
	scanService service.ScanService
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scanService service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// ScanRequest carries the photo as a data URI or bare base64 string.
type ScanRequest struct {
	Image string `json:"image" binding:"required"`
}

// ScanFood godoc
// @Summary Analyze a food photo
// @Description Estimates nutrition values for a photographed meal. Unlike
// @Description plan generation there is no fallback: analysis failures are
// @Description returned as errors.
// @Tags Scan
// @Accept json
// @Produce json
// @Param scan body ScanRequest true "Base64 or data-URI encoded image"
// @Success 200 {object} domain.FoodAnalysis "Nutrition estimate"
// @Failure 400 {object} gin.H "Invalid payload"
// @Failure 502 {object} gin.H "Analysis failed"
// @Router /scan [post]
func (h *ScanHandler) ScanFood(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	analysis, err := h.scanService.AnalyzeFood(c.Request.Context(), req.Image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImagePayload) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, "No se pudo analizar la imagen.")
		}
		return
	}
	c.JSON(http.StatusOK, analysis)
}

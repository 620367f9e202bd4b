package api

import (
	"errors"
	"net/http"

	"alcyxob/coach-diet/internal/diet"
	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GenerationResponse is the canonical generation envelope. A degraded
// (fallback-origin) plan is still a success; operational failures never
// surface here, only validation does.
type GenerationResponse struct {
	OK        bool              `json:"ok"`
	Plan      *domain.DietPlan  `json:"plan,omitempty"`
	Origin    domain.PlanOrigin `json:"origin,omitempty"`
	ErrorKind string            `json:"errorKind,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// GeneratePlan godoc
// @Summary Generate a one-day diet plan for a client
// @Description Runs the AI generation pipeline and saves the resulting plan.
// @Description When the model is unavailable a static fallback plan is served
// @Description and tagged with origin "fallback".
// @Tags Plans
// @Produce json
// @Param id path string true "Client's ObjectID Hex"
// @Success 200 {object} GenerationResponse "Generated or fallback plan"
// @Failure 400 {object} GenerationResponse "Invalid client ID"
// @Failure 404 {object} GenerationResponse "Client not found"
// @Failure 500 {object} GenerationResponse "Internal Server Error"
// @Router /clients/{id}/plans [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	id, err := clientIDFromPath(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, GenerationResponse{
			OK:        false,
			ErrorKind: string(diet.KindValidation),
			Message:   "Invalid client ID format.",
		})
		return
	}

	result, err := h.planService.GeneratePlan(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		kind := diet.KindOf(err)
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			status = http.StatusNotFound
			kind = diet.KindValidation
		case kind == diet.KindValidation:
			status = http.StatusBadRequest
		}
		c.JSON(status, GenerationResponse{
			OK:        false,
			ErrorKind: string(kind),
			Message:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, GenerationResponse{
		OK:     true,
		Plan:   &result.Plan,
		Origin: result.Origin,
	})
}

// ListPlans godoc
// @Summary List saved diet plans for a client
// @Tags Plans
// @Produce json
// @Param id path string true "Client's ObjectID Hex"
// @Success 200 {array} domain.DietPlan "Saved plans, newest first"
// @Failure 400 {object} gin.H "Invalid client ID format"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id}/plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	plans, err := h.planService.GetPlansForClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve plans.")
		}
		return
	}
	if plans == nil {
		plans = []domain.DietPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientHandler holds the client service dependency.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// --- Request/Response Structs ---

type ClientRequest struct {
	Name                string  `json:"name" binding:"required"`
	Age                 int     `json:"age" binding:"required,gt=0,lte=120"`
	Weight              float64 `json:"weight" binding:"required,gt=0"`
	Height              float64 `json:"height" binding:"required,gt=0"`
	Gender              string  `json:"gender" binding:"required,oneof=male female other"`
	Goal                string  `json:"goal"`
	DietaryRestrictions string  `json:"dietaryRestrictions"`
	ActivityLevel       string  `json:"activityLevel"`
	MealsPerDay         int     `json:"mealsPerDay" binding:"omitempty,min=3,max=6"`
}

type ClientResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Age                 int       `json:"age"`
	Weight              float64   `json:"weight"`
	Height              float64   `json:"height"`
	Gender              string    `json:"gender"`
	Goal                string    `json:"goal,omitempty"`
	DietaryRestrictions string    `json:"dietaryRestrictions,omitempty"`
	ActivityLevel       string    `json:"activityLevel,omitempty"`
	MealsPerDay         int       `json:"mealsPerDay"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func mapClientToResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:                  client.ID.Hex(),
		Name:                client.Name,
		Age:                 client.Age,
		Weight:              client.Weight,
		Height:              client.Height,
		Gender:              string(client.Gender),
		Goal:                client.Goal,
		DietaryRestrictions: client.DietaryRestrictions,
		ActivityLevel:       client.ActivityLevel,
		MealsPerDay:         client.MealsPerDay,
		CreatedAt:           client.CreatedAt,
		UpdatedAt:           client.UpdatedAt,
	}
}

func mapClientsToResponse(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, mapClientToResponse(&clients[i]))
	}
	return responses
}

func clientFromRequest(req ClientRequest) *domain.Client {
	return &domain.Client{
		Name:                req.Name,
		Age:                 req.Age,
		Weight:              req.Weight,
		Height:              req.Height,
		Gender:              domain.Gender(req.Gender),
		Goal:                req.Goal,
		DietaryRestrictions: req.DietaryRestrictions,
		ActivityLevel:       req.ActivityLevel,
		MealsPerDay:         req.MealsPerDay,
	}
}

// --- Handler Methods ---

// CreateClient godoc
// @Summary Create a client profile
// @Description Stores a new coached client profile.
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body ClientRequest true "Client profile"
// @Success 201 {object} ClientResponse "Client created"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), clientFromRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidClientData) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create client.")
		}
		return
	}
	c.JSON(http.StatusCreated, mapClientToResponse(client))
}

// ListClients godoc
// @Summary List client profiles
// @Tags Clients
// @Produce json
// @Success 200 {array} ClientResponse "All clients, newest first"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients.")
		return
	}
	c.JSON(http.StatusOK, mapClientsToResponse(clients))
}

// GetClient godoc
// @Summary Get a client profile
// @Tags Clients
// @Produce json
// @Param id path string true "Client's ObjectID Hex"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} gin.H "Invalid client ID format"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve client.")
		}
		return
	}
	c.JSON(http.StatusOK, mapClientToResponse(client))
}

// UpdateClient godoc
// @Summary Update a client profile
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path string true "Client's ObjectID Hex"
// @Param client body ClientRequest true "Updated profile"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	client := clientFromRequest(req)
	client.ID = id

	updated, err := h.clientService.UpdateClient(c.Request.Context(), client)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else if errors.Is(err, service.ErrInvalidClientData) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update client.")
		}
		return
	}
	c.JSON(http.StatusOK, mapClientToResponse(updated))
}

// DeleteClient godoc
// @Summary Delete a client profile
// @Description Deletes the profile and all of the client's saved diet plans.
// @Tags Clients
// @Param id path string true "Client's ObjectID Hex"
// @Success 204 "Client deleted"
// @Failure 400 {object} gin.H "Invalid client ID format"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := clientIDParam(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete client.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// clientIDParam parses the :id path parameter, aborting with 400 on bad input.
func clientIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid client ID format.")
		return primitive.NilObjectID, false
	}
	return id, true
}

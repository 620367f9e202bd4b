package api

import (
	"net/http"

	"alcyxob/coach-diet/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the API handlers onto the router.
func SetupRoutes(
	router *gin.Engine,
	clientService service.ClientService,
	planService service.PlanService,
	scanService service.ScanService,
) {
	clientHandler := NewClientHandler(clientService)
	planHandler := NewPlanHandler(planService)
	scanHandler := NewScanHandler(scanService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		clientGroup := apiV1.Group("/clients")
		{
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)
			clientGroup.DELETE("/:id", clientHandler.DeleteClient)

			// Plan generation and history live under the owning client.
			clientGroup.POST("/:id/plans", planHandler.GeneratePlan)
			clientGroup.GET("/:id/plans", planHandler.ListPlans)
		}

		apiV1.POST("/scan", scanHandler.ScanFood)
	}
}

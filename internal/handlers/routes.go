package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the DataForge API routes with the given Gin router.
func RegisterRoutes(router *gin.Engine) {
	router.GET("/", Root)
	router.GET("/health", Health)

	v1 := router.Group("/api/v1")
	{
		recordRoutes := v1.Group("/records")
		{
			recordRoutes.GET("", ListRecords)
			recordRoutes.POST("", CreateRecord)
			recordRoutes.GET("/:id", GetRecord)
			recordRoutes.DELETE("/:id", DeleteRecord)
		}

		jobRoutes := v1.Group("/jobs")
		{
			jobRoutes.GET("", ListJobs)
			jobRoutes.GET("/:id", GetJob)
		}

		v1.POST("/upload", UploadFile)
		v1.GET("/stats", GetStats)
	}
}

// Root godoc
// @Summary API info
// @Description Root endpoint with service information.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string "Service info"
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "DataForge API",
		"version": "1.0.0",
		"docs":    "/swagger/index.html",
		"health":  "/health",
	})
}

// Health godoc
// @Summary Health check
// @Description Liveness probe for the service.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string "Health status"
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dataforge",
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dataforge/internal/database"
	"dataforge/internal/models"
)

// ListJobs godoc
// @Summary List processing jobs
// @Description Get all processing jobs, newest first.
// @Tags jobs
// @Produce json
// @Success 200 {array} models.ProcessingJob "Processing jobs"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /jobs [get]
func ListJobs(c *gin.Context) {
	db := database.GetDB()
	var jobs []models.ProcessingJob
	if err := db.Order("created_at desc").Find(&jobs).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to list processing jobs.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a processing job by ID
// @Description Get a single processing job using its UUID.
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} models.ProcessingJob "Processing job"
// @Failure 400 {object} models.APIError "Bad Request (e.g., invalid ID format)"
// @Failure 404 {object} models.APIError "Job not found"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /jobs/{id} [get]
func GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat, "Invalid job ID format.", gin.H{"id": c.Param("id")})
		return
	}

	db := database.GetDB()
	var job models.ProcessingJob
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondWithError(c, http.StatusNotFound, models.ErrorCodeJobNotFound, "Job not found.", gin.H{"id": id})
			return
		}
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to fetch job.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, job)
}

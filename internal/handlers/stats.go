package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dataforge/internal/database"
	"dataforge/internal/models"
)

// GetStats godoc
// @Summary Get processing statistics
// @Description Get record and job counters across all processing runs.
// @Tags stats
// @Produce json
// @Success 200 {object} models.StatsResponse "Statistics"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /stats [get]
func GetStats(c *gin.Context) {
	db := database.GetDB()

	var stats models.StatsResponse
	if err := db.Model(&models.Record{}).Count(&stats.TotalRecords).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to count records.", nil)
		return
	}
	if err := db.Model(&models.Record{}).Where("is_valid = ?", true).Count(&stats.ValidRecords).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to count valid records.", nil)
		return
	}
	stats.InvalidRecords = stats.TotalRecords - stats.ValidRecords

	if err := db.Model(&models.ProcessingJob{}).Count(&stats.TotalJobs).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to count jobs.", nil)
		return
	}
	if err := db.Model(&models.ProcessingJob{}).Where("status = ?", models.JobStatusCompleted).Count(&stats.CompletedJobs).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to count completed jobs.", nil)
		return
	}
	if err := db.Model(&models.ProcessingJob{}).Where("status = ?", models.JobStatusFailed).Count(&stats.FailedJobs).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to count failed jobs.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, stats)
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dataforge/internal/database"
	"dataforge/internal/models"
	"dataforge/internal/pipeline"
)

// UploadFile godoc
// @Summary Upload and process a CSV file
// @Description Upload a CSV file, run it through the ingestion and validation pipeline, and persist every row together with its validation outcome. A processing job tracks the run.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to process"
// @Success 200 {object} models.UploadResponse "File processed"
// @Failure 400 {object} models.APIError "Bad Request (e.g., missing file or unsupported format - see 'code' for specifics like UNSUPPORTED_FORMAT)"
// @Failure 500 {object} models.APIError "Internal Server Error (see 'code' for specifics like DECODE_FAILURE or PROCESSING_FAILED)"
// @Router /upload [post]
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "No file provided.", gin.H{"reason": err.Error()})
		return
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeUnsupportedFormat, "Only CSV files are supported.", gin.H{"filename": fileHeader.Filename})
		return
	}

	db := database.GetDB()
	now := time.Now().UTC()
	job := models.ProcessingJob{
		ID:        uuid.New(),
		Filename:  fileHeader.Filename,
		Status:    models.JobStatusProcessing,
		StartedAt: &now,
	}
	if err := db.Create(&job).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to create processing job.", nil)
		return
	}

	// Materialize the upload to a temporary path so the pipeline can stat
	// and load it like any local file.
	tmp, err := os.CreateTemp("", "dataforge-upload-*.csv")
	if err != nil {
		failJob(db, &job, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to buffer uploaded file.", nil)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		failJob(db, &job, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to save uploaded file.", nil)
		return
	}

	ingester := pipeline.NewIngester(pipeline.Options{})
	table, _, _, err := ingester.Ingest(tmpPath)
	if err != nil {
		failJob(db, &job, err)
		status, code := mapPipelineError(err)
		RespondWithError(c, status, code, err.Error(), gin.H{"filename": fileHeader.Filename})
		return
	}

	validated := pipeline.NewValidator().ValidateTable(table)

	validCount := 0
	invalidCount := 0
	records := make([]models.Record, 0, len(validated.Rows))
	for _, row := range validated.Rows {
		record := models.FromRow(row, fileHeader.Filename)
		if record.IsValid {
			validCount++
		} else {
			invalidCount++
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		if err := db.Create(&records).Error; err != nil {
			failJob(db, &job, err)
			RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to store records.", nil)
			return
		}
	}

	completed := time.Now().UTC()
	job.Status = models.JobStatusCompleted
	job.TotalRows = len(validated.Rows)
	job.ValidRows = validCount
	job.InvalidRows = invalidCount
	job.CompletedAt = &completed
	if err := db.Save(&job).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to finish processing job.", nil)
		return
	}

	log.Printf("Processed %s: %d rows (%d valid, %d invalid), job %s", fileHeader.Filename, len(validated.Rows), validCount, invalidCount, job.ID)

	RespondWithSuccess(c, http.StatusOK, models.UploadResponse{
		Message:       "File processed successfully",
		JobID:         job.ID,
		Filename:      fileHeader.Filename,
		RowsProcessed: len(validated.Rows),
		ValidRows:     validCount,
		InvalidRows:   invalidCount,
	})
}

// failJob marks an in-flight job as failed, recording the failure reason
// verbatim.
func failJob(db *gorm.DB, job *models.ProcessingJob, cause error) {
	msg := cause.Error()
	completed := time.Now().UTC()
	job.Status = models.JobStatusFailed
	job.ErrorMessage = &msg
	job.CompletedAt = &completed
	if err := db.Save(job).Error; err != nil {
		log.Printf("Failed to mark job %s as failed: %v", job.ID, err)
	}
}

// mapPipelineError translates the pipeline's fatal error taxonomy into an
// HTTP status and application error code. Unsupported formats are client
// errors; everything else is a server-side failure.
func mapPipelineError(err error) (int, string) {
	var unsupported *pipeline.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest, models.ErrorCodeUnsupportedFormat
	}
	var decode *pipeline.DecodeError
	if errors.As(err, &decode) {
		return http.StatusInternalServerError, models.ErrorCodeDecodeFailure
	}
	var notFound *pipeline.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusInternalServerError, models.ErrorCodeNotFound
	}
	return http.StatusInternalServerError, models.ErrorCodeProcessingFailed
}

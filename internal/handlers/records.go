package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dataforge/internal/database"
	"dataforge/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// ListRecords godoc
// @Summary List records
// @Description Get a paginated list of processed records, optionally restricted to valid ones.
// @Tags records
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size (1-100)" default(50)
// @Param valid_only query bool false "Return only valid records" default(false)
// @Success 200 {object} models.RecordListResponse "Paginated records"
// @Failure 400 {object} models.APIError "Bad Request (see 'code' in response for specifics like VALIDATION_ERROR)"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /records [get]
func ListRecords(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid page parameter.", gin.H{"page": c.Query("page")})
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid page_size parameter.", gin.H{"page_size": c.Query("page_size")})
		return
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	validOnly := c.DefaultQuery("valid_only", "false") == "true"

	db := database.GetDB()
	query := db.Model(&models.Record{})
	if validOnly {
		query = query.Where("is_valid = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to count records.", nil)
		return
	}

	var records []models.Record
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&records).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to list records.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, models.RecordListResponse{
		Records:  records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetRecord godoc
// @Summary Get a record by ID
// @Description Get a single processed record using its UUID.
// @Tags records
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} models.Record "Record"
// @Failure 400 {object} models.APIError "Bad Request (e.g., invalid ID format)"
// @Failure 404 {object} models.APIError "Record not found"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /records/{id} [get]
func GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat, "Invalid record ID format.", gin.H{"id": c.Param("id")})
		return
	}

	db := database.GetDB()
	var record models.Record
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondWithError(c, http.StatusNotFound, models.ErrorCodeRecordNotFound, "Record not found.", gin.H{"id": id})
			return
		}
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to fetch record.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, record)
}

// CreateRecord godoc
// @Summary Create a record
// @Description Create a new record directly, bypassing the ingestion pipeline.
// @Tags records
// @Accept json
// @Produce json
// @Param record body models.CreateRecordRequest true "Record to create"
// @Success 201 {object} models.Record "Successfully created record"
// @Failure 400 {object} models.APIError "Bad Request (e.g., validation error)"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /records [post]
func CreateRecord(c *gin.Context) {
	var req models.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}

	db := database.GetDB()
	record := models.Record{
		ID:       uuid.New(),
		Email:    req.Email,
		Date:     req.Date,
		Amount:   req.Amount,
		Name:     req.Name,
		Category: req.Category,
		Status:   req.Status,
		IsValid:  true,
	}

	if err := db.Create(&record).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to create record.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusCreated, record)
}

// DeleteRecord godoc
// @Summary Delete a record
// @Description Delete a processed record by its UUID.
// @Tags records
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 400 {object} models.APIError "Bad Request (e.g., invalid ID format)"
// @Failure 404 {object} models.APIError "Record not found"
// @Failure 500 {object} models.APIError "Internal Server Error"
// @Router /records/{id} [delete]
func DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidIDFormat, "Invalid record ID format.", gin.H{"id": c.Param("id")})
		return
	}

	db := database.GetDB()
	var record models.Record
	if err := db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondWithError(c, http.StatusNotFound, models.ErrorCodeRecordNotFound, "Record not found.", gin.H{"id": id})
			return
		}
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to fetch record.", nil)
		return
	}

	if err := db.Delete(&record).Error; err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to delete record.", nil)
		return
	}

	RespondWithSuccess(c, http.StatusOK, gin.H{"message": "Record " + id.String() + " deleted"})
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus values for ProcessingJob.Status.
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// Record represents one processed data record.
// @Description Record represents one processed data record with its validation outcome.
type Record struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`

	// Validated data fields
	Email  *string  `json:"email,omitempty" gorm:"type:varchar(255)"`
	Date   *string  `json:"date,omitempty" gorm:"type:varchar(50)"`
	Amount *float64 `json:"amount,omitempty"`

	// Additional pass-through fields
	Name     *string `json:"name,omitempty" gorm:"type:varchar(255)"`
	Category *string `json:"category,omitempty" gorm:"type:varchar(100)"`
	Status   *string `json:"status,omitempty" gorm:"type:varchar(50)"`

	// Validation outcome
	IsValid          bool    `json:"is_valid" gorm:"default:true"`
	ValidationErrors *string `json:"validation_errors,omitempty" gorm:"type:text"`

	SourceFile *string   `json:"source_file,omitempty" gorm:"type:varchar(255)"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ProcessingJob tracks one ingestion+validation run.
// @Description ProcessingJob tracks the outcome of one ingestion and validation run.
type ProcessingJob struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Filename     string     `json:"filename" gorm:"type:varchar(255);not null"`
	Status       string     `json:"status" gorm:"type:varchar(50);default:pending"`
	TotalRows    int        `json:"total_rows" gorm:"default:0"`
	ValidRows    int        `json:"valid_rows" gorm:"default:0"`
	InvalidRows  int        `json:"invalid_rows" gorm:"default:0"`
	ErrorMessage *string    `json:"error_message,omitempty" gorm:"type:text"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// CreateRecordRequest defines the request payload for creating a record
// directly through the API.
type CreateRecordRequest struct {
	Email    *string  `json:"email,omitempty" binding:"omitempty,max=255"`
	Date     *string  `json:"date,omitempty" binding:"omitempty,max=50"`
	Amount   *float64 `json:"amount,omitempty"`
	Name     *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Category *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Status   *string  `json:"status,omitempty" binding:"omitempty,max=50"`
}

// RecordListResponse is the paginated response for record listings.
type RecordListResponse struct {
	Records  []Record `json:"records"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// StatsResponse reports record and job counters.
type StatsResponse struct {
	TotalRecords   int64 `json:"total_records"`
	ValidRecords   int64 `json:"valid_records"`
	InvalidRecords int64 `json:"invalid_records"`
	TotalJobs      int64 `json:"total_jobs"`
	CompletedJobs  int64 `json:"completed_jobs"`
	FailedJobs     int64 `json:"failed_jobs"`
}

// UploadResponse is returned after a CSV upload has been processed.
type UploadResponse struct {
	Message       string    `json:"message"`
	JobID         uuid.UUID `json:"job_id"`
	Filename      string    `json:"filename"`
	RowsProcessed int       `json:"rows_processed"`
	ValidRows     int       `json:"valid_rows"`
	InvalidRows   int       `json:"invalid_rows"`
}

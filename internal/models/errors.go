package models

// APIError represents a standardized error response format for the API.
// @Description APIError represents a standardized error response format, including an application-specific error code, a human-readable message, and optional details.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes
const (
	// Generic errors
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"

	// Input validation & data errors
	ErrorCodeValidation        = "VALIDATION_ERROR"   // General validation failure
	ErrorCodeInvalidIDFormat   = "INVALID_ID_FORMAT"  // e.g., UUID format error
	ErrorCodeUnsupportedFormat = "UNSUPPORTED_FORMAT" // File extension not recognized
	ErrorCodeDecodeFailure     = "DECODE_FAILURE"     // Neither UTF-8 nor Latin-1 decoding succeeded

	// Resource specific errors
	ErrorCodeNotFound       = "NOT_FOUND"
	ErrorCodeRecordNotFound = "RECORD_NOT_FOUND"
	ErrorCodeJobNotFound    = "JOB_NOT_FOUND"

	// Processing errors
	ErrorCodeProcessingFailed = "PROCESSING_FAILED"
)

package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataforge/internal/models"
)

func multipartUpload(t *testing.T, filename string, contents []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadProcessesFile(t *testing.T) {
	clearTables(t)

	csv := []byte("email,date,amount,name\n" +
		"A@B.COM,31/01/2024,\"$1,200.50\",Ada\n" +
		"not-an-email,2024-13-40,-5,Bob\n")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "orders.csv", csv))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "orders.csv", resp.Filename)
	assert.Equal(t, 2, resp.RowsProcessed)
	assert.Equal(t, 1, resp.ValidRows)
	assert.Equal(t, 1, resp.InvalidRows)

	var records []models.Record
	require.NoError(t, testDB.Order("created_at").Find(&records).Error)
	require.Len(t, records, 2)

	var valid, invalid *models.Record
	for i := range records {
		if records[i].IsValid {
			valid = &records[i]
		} else {
			invalid = &records[i]
		}
	}
	require.NotNil(t, valid)
	require.NotNil(t, invalid)

	require.NotNil(t, valid.Email)
	assert.Equal(t, "a@b.com", *valid.Email)
	require.NotNil(t, valid.Date)
	assert.Equal(t, "2024-01-31", *valid.Date)
	require.NotNil(t, valid.Amount)
	assert.Equal(t, 1200.50, *valid.Amount)
	require.NotNil(t, valid.SourceFile)
	assert.Equal(t, "orders.csv", *valid.SourceFile)
	assert.Nil(t, valid.ValidationErrors)

	assert.Nil(t, invalid.Email)
	assert.Nil(t, invalid.Date)
	require.NotNil(t, invalid.Amount)
	assert.Equal(t, -5.0, *invalid.Amount)
	require.NotNil(t, invalid.ValidationErrors)
	assert.Contains(t, *invalid.ValidationErrors, "Invalid email format: not-an-email")
	assert.Contains(t, *invalid.ValidationErrors, "Unable to parse date: 2024-13-40")
	assert.Contains(t, *invalid.ValidationErrors, "Negative amount: -5.0")

	var job models.ProcessingJob
	require.NoError(t, testDB.First(&job).Error)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, 2, job.TotalRows)
	assert.Equal(t, 1, job.ValidRows)
	assert.Equal(t, 1, job.InvalidRows)
	assert.NotNil(t, job.CompletedAt)
}

func TestUploadRejectsNonCSV(t *testing.T) {
	clearTables(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "notes.txt", []byte("hello")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrorCodeUnsupportedFormat, apiErr.Code)

	// Rejected before any job was created.
	var count int64
	testDB.Model(&models.ProcessingJob{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUploadRequiresFile(t *testing.T) {
	clearTables(t)

	req, _ := http.NewRequest("POST", "/api/v1/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHeaderOnlyFile(t *testing.T) {
	clearTables(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "empty.csv", []byte("email,date,amount\n")))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.RowsProcessed)
	assert.Equal(t, 0, resp.ValidRows)
	assert.Equal(t, 0, resp.InvalidRows)

	var job models.ProcessingJob
	require.NoError(t, testDB.First(&job).Error)
	assert.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, 0, job.TotalRows)
}

func TestUploadLatin1File(t *testing.T) {
	clearTables(t)

	// Latin-1 encoded name column; the pipeline falls back transparently.
	latin1 := []byte("email,name\na@b.com,Jos\xe9\n")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "latin1.csv", latin1))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.RowsProcessed)
	assert.Equal(t, 1, resp.ValidRows)

	var record models.Record
	require.NoError(t, testDB.First(&record).Error)
	require.NotNil(t, record.Name)
	assert.Equal(t, "José", *record.Name)
}

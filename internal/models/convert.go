package models

import (
	"github.com/google/uuid"

	"dataforge/internal/pipeline"
)

// FromRow maps one validated pipeline row to its storage record. The
// pipeline only guarantees compatible column names; everything else about
// the storage schema is owned here.
func FromRow(row pipeline.Row, sourceFile string) Record {
	isValid := true
	if v, ok := row["is_valid"].(bool); ok {
		isValid = v
	}

	return Record{
		ID:               uuid.New(),
		Email:            stringField(row, "email"),
		Date:             stringField(row, "date"),
		Amount:           floatField(row, "amount"),
		Name:             stringField(row, "name"),
		Category:         stringField(row, "category"),
		Status:           stringField(row, "status"),
		IsValid:          isValid,
		ValidationErrors: stringField(row, "validation_errors"),
		SourceFile:       &sourceFile,
	}
}

func stringField(row pipeline.Row, key string) *string {
	value, ok := row[key]
	if !ok || value == nil {
		return nil
	}
	if s, ok := value.(string); ok {
		return &s
	}
	return nil
}

func floatField(row pipeline.Row, key string) *float64 {
	value, ok := row[key]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

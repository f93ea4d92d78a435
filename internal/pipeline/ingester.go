package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultMissingTokens are the literal cell values treated as missing when
// no override is supplied.
var DefaultMissingTokens = []string{"", "NA", "N/A", "null", "NULL", "None"}

// Options configures a single ingestion run. The zero value uses the
// defaults; set fields individually to override them. Each pipeline
// invocation carries its own Options, so differently configured batches can
// run side by side without coordination.
type Options struct {
	// MissingTokens overrides DefaultMissingTokens when non-nil.
	MissingTokens []string
	// MaxRows limits how many data rows are read from the file. Zero or
	// negative means no limit. The limit is applied while reading, not
	// after, so previewing a large file stays cheap.
	MaxRows int
}

// FileMetadata describes the source file as seen at ingestion time. It is
// derived from a filesystem stat and never mutated afterwards.
type FileMetadata struct {
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
	Extension  string    `json:"extension"`
}

// IngestMetadata is FileMetadata enriched with the row and column counts
// computed after loading. Only Ingest produces it.
type IngestMetadata struct {
	FileMetadata
	RowCount    int `json:"row_count"`
	ColumnCount int `json:"column_count"`
}

// ColumnProfile holds descriptive statistics for one column of an ingested
// table. It is computed once and used for diagnostics and preview only.
type ColumnProfile struct {
	DType          string  `json:"dtype"`
	NullCount      int     `json:"null_count"`
	NullPercentage float64 `json:"null_percentage"`
	UniqueCount    int     `json:"unique_count"`
	SampleValues   []any   `json:"sample_values"`
}

// Ingester loads delimited text files into in-memory tables. It holds no
// mutable state, so a single instance may serve concurrent callers
// operating on distinct files.
type Ingester struct {
	opts Options
}

// NewIngester creates an Ingester with the given options.
func NewIngester(opts Options) *Ingester {
	return &Ingester{opts: opts}
}

// Load reads a CSV file into a Table. The header row is mandatory and
// defines the column set for every row. Cells matching a missing token
// become nulls. Files that are not valid UTF-8 are retried once with a
// Latin-1 decoding before giving up.
func (ing *Ingester) Load(path string) (*Table, error) {
	return ing.load(path, ing.opts.MaxRows)
}

// Preview loads at most n data rows from the file. Row limiting happens
// during the read loop, so the full file is never materialized.
func (ing *Ingester) Preview(path string, n int) (*Table, error) {
	return ing.load(path, n)
}

func (ing *Ingester) load(path string, maxRows int) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	if strings.ToLower(ext) != ".csv" {
		return nil, &UnsupportedFormatError{Extension: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := decodeContents(path, data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("file %s has no header row", path)
		}
		return nil, fmt.Errorf("failed to read header row from %s: %w", path, err)
	}

	missing := ing.opts.MissingTokens
	if missing == nil {
		missing = DefaultMissingTokens
	}
	missingSet := make(map[string]bool, len(missing))
	for _, token := range missing {
		missingSet[token] = true
	}

	table := NewTable(header)
	for {
		if maxRows > 0 && len(table.Rows) >= maxRows {
			break
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			if missingSet[cell] {
				row[col] = nil
			} else {
				row[col] = cell
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// decodeContents returns the file contents as a string, falling back from
// UTF-8 to Latin-1. There is no further fallback; a Latin-1 failure is a
// fatal DecodeError.
func decodeContents(path string, data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}
	return string(decoded), nil
}

// FileMetadata extracts metadata for a file without loading it.
func (ing *Ingester) FileMetadata(path string) (FileMetadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileMetadata{}, &NotFoundError{Path: path}
		}
		return FileMetadata{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return FileMetadata{
		Filename:   filepath.Base(path),
		SizeBytes:  info.Size(),
		ModifiedAt: info.ModTime(),
		Extension:  filepath.Ext(path),
	}, nil
}

// ColumnProfile computes per-column statistics for an ingested table. The
// null percentage is defined as 0 for a table with zero rows.
func (ing *Ingester) ColumnProfile(t *Table) map[string]ColumnProfile {
	profiles := make(map[string]ColumnProfile, len(t.Columns))

	for _, col := range t.Columns {
		nullCount := 0
		seen := make(map[string]bool)
		samples := make([]any, 0, 3)
		allInt := true
		allFloat := true
		nonNull := 0

		for _, row := range t.Rows {
			value := row[col]
			if value == nil {
				nullCount++
				continue
			}
			nonNull++
			repr := valueToString(value)
			if !seen[repr] {
				seen[repr] = true
				if len(samples) < 3 {
					samples = append(samples, value)
				}
			}
			switch v := value.(type) {
			case int:
				// still both int and float candidate
			case float64:
				allInt = allInt && v == math.Trunc(v)
			case string:
				if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
					allInt = false
				}
				if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
					allFloat = false
				}
			default:
				allInt = false
				allFloat = false
			}
		}

		dtype := "object"
		switch {
		case nonNull == 0:
			dtype = "float64"
		case allInt:
			dtype = "int64"
		case allFloat:
			dtype = "float64"
		}

		pct := 0.0
		if len(t.Rows) > 0 {
			pct = math.Round(float64(nullCount)/float64(len(t.Rows))*100*100) / 100
		}

		profiles[col] = ColumnProfile{
			DType:          dtype,
			NullCount:      nullCount,
			NullPercentage: pct,
			UniqueCount:    len(seen),
			SampleValues:   samples,
		}
	}

	return profiles
}

// Ingest is the convenience composite: load the file, stat it, and profile
// the resulting table. Row and column counts are merged into the returned
// metadata.
func (ing *Ingester) Ingest(path string) (*Table, IngestMetadata, map[string]ColumnProfile, error) {
	table, err := ing.Load(path)
	if err != nil {
		return nil, IngestMetadata{}, nil, err
	}

	fileMeta, err := ing.FileMetadata(path)
	if err != nil {
		return nil, IngestMetadata{}, nil, err
	}

	meta := IngestMetadata{
		FileMetadata: fileMeta,
		RowCount:     table.RowCount(),
		ColumnCount:  table.ColumnCount(),
	}

	return table, meta, ing.ColumnProfile(table), nil
}

package pipeline

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPattern matches local@domain.tld where the top-level domain is at
// least two alphabetic characters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// dateFormats is the ordered list of accepted date layouts. The order is
// the tie-break for inputs that match more than one layout (01/02/2024 is
// read day-first); changing it would silently change validation results.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// Validator applies field-level rules to rows. It holds no mutable state
// and may be shared across goroutines.
type Validator struct{}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEmail checks an email value. The cleaned value is the trimmed,
// lowercased string. An empty errMsg means the value passed.
func (v *Validator) ValidateEmail(value any) (cleaned string, errMsg string) {
	s := valueToString(value)
	if value == nil || s == "" {
		return "", "Email is empty"
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return "", fmt.Sprintf("Invalid email format: %s", s)
	}
	return s, ""
}

// ValidateDate checks a date value against the ordered format list and
// standardizes it. The cleaned value is always rendered as YYYY-MM-DD
// regardless of the input layout.
func (v *Validator) ValidateDate(value any) (standardized string, errMsg string) {
	s := valueToString(value)
	if value == nil || s == "" {
		return "", "Date is empty"
	}

	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed.Format("2006-01-02"), ""
		}
	}
	return "", fmt.Sprintf("Unable to parse date: %s", s)
}

// ValidateAmount checks a monetary value. Textual amounts are stripped of a
// leading currency symbol, thousands separators and surrounding whitespace
// before parsing. Negative amounts are invalid but the parsed value is
// still returned (hasCleaned true) so callers keep it for audit; this
// asymmetry with email/date is deliberate. Valid amounts are rounded to 2
// decimal places.
func (v *Validator) ValidateAmount(value any) (cleaned float64, hasCleaned bool, errMsg string) {
	if value == nil {
		return 0, false, "Amount is empty"
	}

	var amount float64
	switch raw := value.(type) {
	case float64:
		amount = raw
	case int:
		amount = float64(raw)
	case string:
		stripped := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "$", ""), ",", ""))
		parsed, err := strconv.ParseFloat(stripped, 64)
		if err != nil {
			return 0, false, fmt.Sprintf("Invalid amount: %s", raw)
		}
		amount = parsed
	default:
		return 0, false, fmt.Sprintf("Invalid amount: %v", value)
	}

	if amount < 0 {
		return amount, true, fmt.Sprintf("Negative amount: %s", formatFloat(amount))
	}
	return math.Round(amount*100) / 100, true, ""
}

// ValidateRecord runs every applicable field check on a row. Fields absent
// from the row are skipped entirely; the row is valid iff all present-field
// checks pass. There is no early exit, so the error list reflects every
// violation. The returned row carries the cleaned values; fields that
// failed validation are nulled out except for negative amounts, which keep
// the parsed value.
func (v *Validator) ValidateRecord(row Row) (isValid bool, errors []string, cleaned Row) {
	isValid = true
	errors = make([]string, 0)
	cleaned = make(Row, len(row))
	for k, val := range row {
		cleaned[k] = val
	}

	if raw, ok := row["email"]; ok {
		email, errMsg := v.ValidateEmail(raw)
		if errMsg != "" {
			errors = append(errors, errMsg)
			isValid = false
			cleaned["email"] = nil
		} else {
			cleaned["email"] = email
		}
	}

	if raw, ok := row["date"]; ok {
		date, errMsg := v.ValidateDate(raw)
		if errMsg != "" {
			errors = append(errors, errMsg)
			isValid = false
			cleaned["date"] = nil
		} else {
			cleaned["date"] = date
		}
	}

	if raw, ok := row["amount"]; ok {
		amount, hasCleaned, errMsg := v.ValidateAmount(raw)
		if errMsg != "" {
			errors = append(errors, errMsg)
			isValid = false
			if hasCleaned {
				cleaned["amount"] = amount
			} else {
				cleaned["amount"] = nil
			}
		} else {
			cleaned["amount"] = amount
		}
	}

	return isValid, errors, cleaned
}

// ValidateTable validates every row of a table in original order and
// appends the is_valid flag and the semicolon-joined validation_errors
// string (null when the row is clean) as two synthetic columns. No rows are
// dropped; invalid rows are retained with their errors.
func (v *Validator) ValidateTable(t *Table) *Table {
	columns := make([]string, 0, len(t.Columns)+2)
	columns = append(columns, t.Columns...)
	columns = append(columns, "is_valid", "validation_errors")

	out := NewTable(columns)
	for _, row := range t.Rows {
		isValid, errs, cleaned := v.ValidateRecord(row)
		cleaned["is_valid"] = isValid
		if len(errs) > 0 {
			cleaned["validation_errors"] = strings.Join(errs, "; ")
		} else {
			cleaned["validation_errors"] = nil
		}
		out.Rows = append(out.Rows, cleaned)
	}
	return out
}

// valueToString renders a cell for pattern matching and error messages.
func valueToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatFloat(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat renders a float with a trailing .0 for integral values, so
// -5 reads as -5.0 in messages about parsed amounts.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

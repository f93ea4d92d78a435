package pipeline

import "fmt"

// The three fatal file-level conditions are distinct types so callers can
// tell them apart with errors.As and map each to a different user-facing
// response. Row-level validation failures are never returned as errors;
// they are recorded on the row itself.

// NotFoundError indicates the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// UnsupportedFormatError indicates the file extension is not a recognized
// delimited-text extension.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// DecodeError indicates the file contents could not be decoded as UTF-8 or
// with the Latin-1 fallback.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

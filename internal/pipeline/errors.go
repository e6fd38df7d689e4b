package pipeline

import (
	"fmt"
	"strings"
)

// ValidationError rejects an analyze call before any conversion or network
// activity: there was nothing to analyze.
type ValidationError struct{}

func (e *ValidationError) Error() string {
	return "tambahkan minimal satu file atau tulis instruksi terlebih dahulu"
}

// AllFilesFailedError is fatal: every supplied file failed to convert, so no
// extraction call is made.
type AllFilesFailedError struct {
	Filenames []string
}

func (e *AllFilesFailedError) Error() string {
	return fmt.Sprintf("semua file gagal diproses: %s", strings.Join(e.Filenames, ", "))
}

// ExtractionServiceError wraps a failed strategy call: service error, schema
// mismatch, or unparsable result. Nothing is merged.
type ExtractionServiceError struct {
	Cause error
}

func (e *ExtractionServiceError) Error() string {
	return fmt.Sprintf("ekstraksi gagal: %v", e.Cause)
}

func (e *ExtractionServiceError) Unwrap() error { return e.Cause }

package usecase

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownTemplate is returned when a caller selects a template tag
	// outside the five offered ones.
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrExportNotReady is returned when the PDF of an export is requested
	// before the job completed.
	ErrExportNotReady = errors.New("export not completed")
	// ErrInvalidPDF is returned when the renderer output is not a readable PDF.
	ErrInvalidPDF = errors.New("renderer output is not a valid pdf")
	// ErrInterrupted is returned by Run when its context ends mid-export.
	// The job is left processing so it can be run again.
	ErrInterrupted = errors.New("export interrupted")
)

// NotReadyError lists why a resume cannot be exported yet.
type NotReadyError struct {
	Problems []string
}

func (e *NotReadyError) Error() string {
	return "resume not ready for export: " + strings.Join(e.Problems, "; ")
}

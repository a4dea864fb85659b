package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExportStatus string

const (
	ExportPending    ExportStatus = "pending"
	ExportProcessing ExportStatus = "processing"
	ExportCompleted  ExportStatus = "completed"
	ExportFailed     ExportStatus = "failed"
)

// ExportJob tracks one PDF export of a session.
type ExportJob struct {
	ID         uuid.UUID    `json:"id"`
	SessionID  uuid.UUID    `json:"session_id"`
	Status     ExportStatus `json:"status"`
	FileName   string       `json:"file_name,omitempty"`
	StorageKey string       `json:"storage_key,omitempty"`
	Pages      int          `json:"pages,omitempty"`
	SizeBytes  int          `json:"size_bytes,omitempty"`
	Error      string       `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Done reports whether the job reached a terminal status.
func (j *ExportJob) Done() bool {
	return j.Status == ExportCompleted || j.Status == ExportFailed
}

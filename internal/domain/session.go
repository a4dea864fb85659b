package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// Session is one stored resume snapshot being edited.
type Session struct {
	ID        uuid.UUID        `json:"id"`
	Resume    model.ResumeData `json:"resume"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

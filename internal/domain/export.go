package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportJob is the audit record of a single PDF export. It carries
// operation metadata only, never the resume content itself.
type ExportJob struct {
	ID        uuid.UUID              `json:"id"`
	Filename  string                 `json:"filename"`
	Template  string                 `json:"template"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

const (
	ExportStatusPending   = "pending"
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

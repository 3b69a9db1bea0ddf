package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission kinds accepted by the intake endpoints.
const (
	SubmissionKindLead  = "lead"
	SubmissionKindQuote = "quote"
)

// Submission is an ephemeral lead-capture or quote-request payload. It is
// never read back by the serving path; persistence is fire-and-forget.
type Submission struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ZipCode       string    `json:"zip_code,omitempty"`
	ServiceOption string    `json:"service_option,omitempty"`
	Message       string    `json:"message,omitempty"`
	CompanyName   string    `json:"company_name,omitempty"`
	CompanySlug   string    `json:"company_slug,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

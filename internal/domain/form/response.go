package form

import (
	"time"

	"gorm.io/datatypes"
)

type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "draft"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionReviewed  SubmissionStatus = "reviewed"
	SubmissionApproved  SubmissionStatus = "approved"
	SubmissionRejected  SubmissionStatus = "rejected"
)

const RespondentTypeUser = "user"

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionDraft, SubmissionSubmitted, SubmissionReviewed, SubmissionApproved, SubmissionRejected:
		return true
	}
	return false
}

// IsReview reports whether the status is set by a reviewer rather than the respondent.
func (s SubmissionStatus) IsReview() bool {
	return s == SubmissionReviewed || s == SubmissionApproved || s == SubmissionRejected
}

// IsCompleted is true once the respondent has handed the response in.
func (s SubmissionStatus) IsCompleted() bool {
	return s == SubmissionSubmitted || s == SubmissionReviewed || s == SubmissionApproved
}

type FormResponse struct {
	ID               uint                `json:"id" gorm:"primaryKey"`
	FormID           uint                `json:"form_id" gorm:"index;not null"`
	RespondentID     *uint               `json:"respondent_id" gorm:"index"`
	RespondentType   string              `json:"respondent_type" gorm:"size:30;default:'user'"`
	SubmissionStatus SubmissionStatus    `json:"submission_status" gorm:"size:20;default:'draft';index"`
	SubmittedAt      *time.Time          `json:"submitted_at"`
	ReviewedAt       *time.Time          `json:"reviewed_at"`
	ReviewedBy       *uint               `json:"reviewed_by"`
	ReviewNotes      *string             `json:"review_notes"`
	Metadata         datatypes.JSON      `json:"metadata,omitempty"`
	CreatedAt        time.Time           `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time           `json:"updated_at"`
	FieldResponses   []FormFieldResponse `json:"field_responses,omitempty" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
}

// FormFieldResponse holds either a scalar FieldValue or a structured FieldValues document.
type FormFieldResponse struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ResponseID  uint           `json:"response_id" gorm:"index;not null"`
	FieldID     uint           `json:"field_id" gorm:"index;not null"`
	FieldValue  *string        `json:"field_value"`
	FieldValues datatypes.JSON `json:"field_values,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ApplyStatus moves r to next and stamps the lifecycle timestamps.
// submitted_at is written only on the first submission.
func (r *FormResponse) ApplyStatus(next SubmissionStatus, actor uint, now time.Time) {
	r.SubmissionStatus = next
	if next == SubmissionSubmitted && r.SubmittedAt == nil {
		t := now
		r.SubmittedAt = &t
	}
	if next.IsReview() {
		t := now
		r.ReviewedAt = &t
		r.ReviewedBy = &actor
	}
}

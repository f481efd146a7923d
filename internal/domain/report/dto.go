package report

import (
	"time"

	"github.com/linskybing/form-platform/internal/domain/form"
	"gorm.io/datatypes"
)

type Respondent struct {
	ID    *uint  `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FieldAnswer is one respondent's answer inside a field grouping.
type FieldAnswer struct {
	ResponseID       uint                  `json:"response_id"`
	Respondent       Respondent            `json:"respondent"`
	FieldValue       *string               `json:"field_value"`
	FieldValues      datatypes.JSON        `json:"field_values,omitempty" swaggertype:"object"`
	SubmissionStatus form.SubmissionStatus `json:"submission_status"`
	CreatedAt        time.Time             `json:"created_at"`
}

type FieldSummary struct {
	FieldID       uint           `json:"field_id"`
	FieldName     string         `json:"field_name"`
	FieldLabel    string         `json:"field_label"`
	FieldType     form.FieldType `json:"field_type"`
	ResponseCount int            `json:"response_count"`
	Responses     []FieldAnswer  `json:"responses"`
}

type Overview struct {
	FormID         uint           `json:"form_id"`
	Title          string         `json:"title"`
	TotalResponses int            `json:"total_responses"`
	Fields         []FieldSummary `json:"fields"`
}

type Answer struct {
	FieldID     uint           `json:"field_id"`
	FieldName   string         `json:"field_name"`
	FieldLabel  string         `json:"field_label"`
	FieldType   form.FieldType `json:"field_type"`
	FieldValue  *string        `json:"field_value"`
	FieldValues datatypes.JSON `json:"field_values,omitempty" swaggertype:"object"`
}

// IndividualResponse is one response with its answers, for the response-major view.
type IndividualResponse struct {
	ResponseID       uint                  `json:"response_id"`
	Respondent       Respondent            `json:"respondent"`
	SubmissionStatus form.SubmissionStatus `json:"submission_status"`
	SubmittedAt      *time.Time            `json:"submitted_at"`
	CreatedAt        time.Time             `json:"created_at"`
	Answers          []Answer              `json:"answers"`
}

package form

import (
	"time"

	"gorm.io/datatypes"
)

type FieldOptionInput struct {
	Value        string `json:"value" binding:"required"`
	Label        string `json:"label"`
	DisplayOrder *int   `json:"display_order"`
}

type GridItemInput struct {
	Value string `json:"value" binding:"required"`
	Label string `json:"label"`
}

type GridOptionsInput struct {
	Rows    []GridItemInput `json:"rows"`
	Columns []GridItemInput `json:"columns"`
}

type SectionInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Order       *int   `json:"order"`
}

// FieldInput describes one field in a submitted definition. ID is only honored by
// updates, where it identifies the existing field to reconcile against.
type FieldInput struct {
	ID                  *uint              `json:"id"`
	SectionIndex        *int               `json:"section_index"`
	FieldName           string             `json:"field_name" binding:"required"`
	FieldLabel          string             `json:"field_label" binding:"required"`
	FieldType           FieldType          `json:"field_type" binding:"required,field_type"`
	DisplayOrder        *int               `json:"display_order"`
	IsRequired          bool               `json:"is_required"`
	Placeholder         string             `json:"placeholder"`
	HelpText            string             `json:"help_text"`
	ValidationRules     datatypes.JSON     `json:"validation_rules" swaggertype:"object"`
	ConditionalLogic    datatypes.JSON     `json:"conditional_logic" swaggertype:"object"`
	DefaultValue        *string            `json:"default_value"`
	MinLength           *int               `json:"min_length"`
	MaxLength           *int               `json:"max_length"`
	Pattern             *string            `json:"pattern"`
	StudentFieldMapping *string            `json:"student_field_mapping"`
	AutoPopulateFrom    *string            `json:"auto_populate_from"`
	UploadFolderID      *string            `json:"upload_folder_id"`
	Options             []FieldOptionInput `json:"options"`
	GridOptions         *GridOptionsInput  `json:"grid_options"`
}

type CreateFormDTO struct {
	Title                    string         `json:"title" binding:"required,notblank"`
	Description              string         `json:"description"`
	FormType                 string         `json:"form_type"`
	Status                   *FormStatus    `json:"status" binding:"omitempty,oneof=draft active inactive archived"`
	IsRequired               bool           `json:"is_required"`
	AllowMultipleSubmissions bool           `json:"allow_multiple_submissions"`
	SubmissionDeadline       *time.Time     `json:"submission_deadline"`
	Sections                 []SectionInput `json:"sections" binding:"dive"`
	Fields                   []FieldInput   `json:"fields" binding:"dive"`
}

// UpdateFormDTO is a partial update; nil members are left untouched.
type UpdateFormDTO struct {
	Title                    *string       `json:"title"`
	Description              *string       `json:"description"`
	FormType                 *string       `json:"form_type"`
	Status                   *FormStatus   `json:"status" binding:"omitempty,oneof=draft active inactive archived"`
	IsRequired               *bool         `json:"is_required"`
	AllowMultipleSubmissions *bool         `json:"allow_multiple_submissions"`
	SubmissionDeadline       *time.Time    `json:"submission_deadline"`
	Fields                   *[]FieldInput `json:"fields"`
}

type ListQuery struct {
	FormType string
	Status   string
	Search   string
	Page     int
	Limit    int
}

type FieldResponseInput struct {
	FieldID     uint           `json:"field_id" binding:"required"`
	FieldValue  *string        `json:"field_value"`
	FieldValues datatypes.JSON `json:"field_values" swaggertype:"object"`
}

type CreateResponseDTO struct {
	FormID           uint                 `json:"form_id" binding:"required"`
	RespondentID     *uint                `json:"respondent_id"`
	RespondentType   string               `json:"respondent_type"`
	SubmissionStatus SubmissionStatus     `json:"submission_status" binding:"omitempty,oneof=draft submitted"`
	FieldResponses   []FieldResponseInput `json:"field_responses" binding:"dive"`
	Metadata         datatypes.JSON       `json:"metadata" swaggertype:"object"`
}

type UpdateResponseDTO struct {
	SubmissionStatus *SubmissionStatus     `json:"submission_status" binding:"omitempty,oneof=draft submitted reviewed approved rejected"`
	ReviewNotes      *string               `json:"review_notes"`
	Metadata         datatypes.JSON        `json:"metadata" swaggertype:"object"`
	FieldResponses   *[]FieldResponseInput `json:"field_responses"`
}

type ResponseQuery struct {
	FormID           *uint
	RespondentID     *uint
	RespondentType   string
	SubmissionStatus string
	Page             int
	Limit            int
}

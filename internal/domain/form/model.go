package form

import (
	"time"

	"gorm.io/datatypes"
)

type FormStatus string

const (
	FormStatusDraft    FormStatus = "draft"
	FormStatusActive   FormStatus = "active"
	FormStatusInactive FormStatus = "inactive"
	FormStatusArchived FormStatus = "archived"
)

// FormTypeTask marks forms managed through the task endpoints.
const FormTypeTask = "task"

type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeTextarea     FieldType = "textarea"
	FieldTypeEmail        FieldType = "email"
	FieldTypeNumber       FieldType = "number"
	FieldTypePhone        FieldType = "phone"
	FieldTypeURL          FieldType = "url"
	FieldTypeDate         FieldType = "date"
	FieldTypeTime         FieldType = "time"
	FieldTypeSelect       FieldType = "select"
	FieldTypeRadio        FieldType = "radio"
	FieldTypeCheckbox     FieldType = "checkbox"
	FieldTypeFileUpload   FieldType = "file_upload"
	FieldTypeRadioGrid    FieldType = "radio_grid"
	FieldTypeCheckboxGrid FieldType = "checkbox_grid"
)

var knownFieldTypes = map[FieldType]bool{
	FieldTypeText: true, FieldTypeTextarea: true, FieldTypeEmail: true, FieldTypeNumber: true,
	FieldTypePhone: true, FieldTypeURL: true, FieldTypeDate: true, FieldTypeTime: true,
	FieldTypeSelect: true, FieldTypeRadio: true, FieldTypeCheckbox: true,
	FieldTypeFileUpload: true, FieldTypeRadioGrid: true, FieldTypeCheckboxGrid: true,
}

func (t FieldType) Known() bool { return knownFieldTypes[t] }

func (t FieldType) IsGrid() bool {
	return t == FieldTypeRadioGrid || t == FieldTypeCheckboxGrid
}

func (t FieldType) IsChoice() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio || t == FieldTypeCheckbox
}

type OptionType string

const (
	OptionTypeStandard   OptionType = "standard"
	OptionTypeGridRow    OptionType = "grid_row"
	OptionTypeGridColumn OptionType = "grid_column"
)

type Form struct {
	ID                       uint          `json:"id" gorm:"primaryKey"`
	Title                    string        `json:"title" gorm:"size:255;not null"`
	Description              string        `json:"description" gorm:"type:text"`
	FormType                 string        `json:"form_type" gorm:"size:50;index"`
	Status                   FormStatus    `json:"status" gorm:"size:20;default:'draft'"`
	IsRequired               bool          `json:"is_required"`
	AllowMultipleSubmissions bool          `json:"allow_multiple_submissions"`
	SubmissionDeadline       *time.Time    `json:"submission_deadline"`
	CreatedBy                uint          `json:"created_by" gorm:"index"`
	ReminderSentAt           *time.Time    `json:"-"`
	CreatedAt                time.Time     `json:"created_at"`
	UpdatedAt                time.Time     `json:"updated_at"`
	Sections                 []FormSection `json:"sections,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Fields                   []FormField   `json:"fields,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

type FormSection struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FormID      uint      `json:"form_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Order       int       `json:"order" gorm:"column:section_order;default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FormField rows are never hard-deleted by an edit; removal sets IsActive=false so
// earlier answers keep pointing at a valid field.
type FormField struct {
	ID                  uint              `json:"id" gorm:"primaryKey"`
	FormID              uint              `json:"form_id" gorm:"index;not null"`
	FormSectionID       *uint             `json:"form_section_id" gorm:"index"`
	FieldName           string            `json:"field_name" gorm:"size:100;not null"`
	FieldLabel          string            `json:"field_label" gorm:"size:255;not null"`
	FieldType           FieldType         `json:"field_type" gorm:"size:30;not null"`
	DisplayOrder        int               `json:"display_order" gorm:"default:0"`
	IsRequired          bool              `json:"is_required"`
	IsActive            bool              `json:"is_active" gorm:"default:true"`
	Placeholder         string            `json:"placeholder"`
	HelpText            string            `json:"help_text" gorm:"type:text"`
	ValidationRules     datatypes.JSON    `json:"validation_rules,omitempty"`
	ConditionalLogic    datatypes.JSON    `json:"conditional_logic,omitempty"`
	DefaultValue        *string           `json:"default_value"`
	MinLength           *int              `json:"min_length"`
	MaxLength           *int              `json:"max_length"`
	Pattern             *string           `json:"pattern"`
	StudentFieldMapping *string           `json:"student_field_mapping"`
	AutoPopulateFrom    *string           `json:"auto_populate_from"`
	UploadFolderID      *string           `json:"upload_folder_id"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
	Options             []FormFieldOption `json:"options,omitempty" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}

type FormFieldOption struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	FieldID      uint       `json:"field_id" gorm:"index;not null"`
	OptionValue  string     `json:"option_value" gorm:"size:255;not null"`
	OptionLabel  string     `json:"option_label" gorm:"size:255"`
	DisplayOrder int        `json:"display_order" gorm:"default:0"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	OptionType   OptionType `json:"option_type" gorm:"size:20;default:'standard'"`
	RowLabel     *string    `json:"row_label,omitempty"`
	ColumnLabel  *string    `json:"column_label,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AccessDetail is a form together with the caller's resolved access level.
type AccessDetail struct {
	Form
	AccessType AccessType `json:"access_type"`
}

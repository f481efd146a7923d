package task

import (
	"time"

	"github.com/linskybing/form-platform/internal/domain/form"
)

// RequirementInput is the task-facing view of a field.
type RequirementInput struct {
	ID          *uint    `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=text textarea file select radio checkbox date number url email"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Options     []string `json:"options"`
}

type CreateTaskDTO struct {
	Title                    string             `json:"title" binding:"required,notblank"`
	Description              string             `json:"description"`
	Status                   *form.FormStatus   `json:"status" binding:"omitempty,oneof=draft active inactive archived"`
	SubmissionDeadline       *time.Time         `json:"submission_deadline"`
	AllowMultipleSubmissions bool               `json:"allow_multiple_submissions"`
	Requirements             []RequirementInput `json:"requirements" binding:"dive"`
}

type UpdateTaskDTO struct {
	Title                    *string             `json:"title"`
	Description              *string             `json:"description"`
	Status                   *form.FormStatus    `json:"status" binding:"omitempty,oneof=draft active inactive archived"`
	SubmissionDeadline       *time.Time          `json:"submission_deadline"`
	AllowMultipleSubmissions *bool               `json:"allow_multiple_submissions"`
	Requirements             *[]RequirementInput `json:"requirements"`
}

type AssignDTO struct {
	UserIDs          []uint `json:"user_ids" binding:"required,min=1"`
	SendNotification bool   `json:"send_notification"`
}

type UnassignDTO struct {
	UserIDs []uint `json:"user_ids" binding:"required,min=1"`
}

type NotifyDTO struct {
	UserIDs                []uint  `json:"user_ids"`
	IncludeUnsubmittedOnly bool    `json:"include_unsubmitted_only"`
	Subject                *string `json:"subject"`
	Message                *string `json:"message"`
}

type Requirement struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Label          string   `json:"label"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Required       bool     `json:"required"`
	Order          int      `json:"order"`
	Options        []string `json:"options,omitempty"`
	UploadFolderID *string  `json:"upload_folder_id,omitempty"`
}

type TaskView struct {
	ID                       uint            `json:"id"`
	Title                    string          `json:"title"`
	Description              string          `json:"description"`
	Status                   form.FormStatus `json:"status"`
	SubmissionDeadline       *time.Time      `json:"submission_deadline"`
	AllowMultipleSubmissions bool            `json:"allow_multiple_submissions"`
	CreatedBy                uint            `json:"created_by"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
	Requirements             []Requirement   `json:"requirements"`
	AccessType               form.AccessType `json:"access_type,omitempty"`
}

type AssignResult struct {
	AssignedCount        int    `json:"assigned_count"`
	AlreadyAssignedCount int    `json:"already_assigned_count"`
	AssignedUserIDs      []uint `json:"assigned_user_ids"`
	NotificationSent     int    `json:"notification_sent"`
	NotificationFailed   int    `json:"notification_failed"`
	NotificationError    string `json:"notification_error,omitempty"`
}

type UnassignResult struct {
	UnassignedCount int `json:"unassigned_count"`
}

type NotifyResult struct {
	TotalRecipients int    `json:"total_recipients"`
	SentCount       int    `json:"sent_count"`
	FailedCount     int    `json:"failed_count"`
	Warning         string `json:"warning,omitempty"`
}

type Assignment struct {
	UserID           uint                   `json:"user_id"`
	Username         string                 `json:"username"`
	FullName         string                 `json:"full_name"`
	Email            string                 `json:"email"`
	AssignedAt       time.Time              `json:"assigned_at"`
	IsActive         bool                   `json:"is_active"`
	SubmissionStatus *form.SubmissionStatus `json:"submission_status"`
}

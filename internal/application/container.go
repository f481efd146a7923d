package application

import (
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/email"
	"github.com/linskybing/form-platform/pkg/storage"
)

type Services struct {
	Audit        *AuditService
	Access       *AccessService
	Form         *FormService
	Response     *ResponseService
	Task         *TaskService
	Assignment   *AssignmentService
	Report       *ReportService
	Notification *NotificationService
}

// Deps are the external collaborators the services delegate to.
type Deps struct {
	Mailer    email.BatchSender
	Folders   storage.FolderCreator
	Publisher Publisher
}

func New(repos *repository.Repos, deps Deps) *Services {
	access := NewAccessService(repos)
	forms := NewFormService(repos, access)
	notifications := NewNotificationService(repos, deps.Publisher)
	return &Services{
		Audit:        NewAuditService(repos),
		Access:       access,
		Form:         forms,
		Response:     NewResponseService(repos, access),
		Task:         NewTaskService(repos, access, forms, deps.Folders),
		Assignment:   NewAssignmentService(repos, access, deps.Mailer, notifications),
		Report:       NewReportService(repos, access),
		Notification: notifications,
	}
}

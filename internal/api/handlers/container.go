package handlers

import (
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/ws"
)

type Handlers struct {
	Audit        *AuditHandler
	Form         *FormHandler
	Response     *ResponseHandler
	Task         *TaskHandler
	Notification *NotificationHandler
}

func New(svc *application.Services, repos *repository.Repos, hub *ws.Hub) *Handlers {
	return &Handlers{
		Audit:        NewAuditHandler(svc.Audit),
		Form:         NewFormHandler(svc.Form, svc.Report, repos.Audit),
		Response:     NewResponseHandler(svc.Response, repos.Audit),
		Task:         NewTaskHandler(svc.Task, svc.Assignment, repos.Audit),
		Notification: NewNotificationHandler(svc.Notification, hub),
	}
}

package application

import (
	"fmt"
	"log"
	"time"

	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/linskybing/form-platform/pkg/utils"
)

// Publisher pushes an event to a user's live connections.
type Publisher interface {
	Publish(userID uint, event notification.Event)
}

type NotificationService struct {
	Repos     *repository.Repos
	Publisher Publisher
	Now       func() time.Time
}

func NewNotificationService(repos *repository.Repos, publisher Publisher) *NotificationService {
	return &NotificationService{
		Repos:     repos,
		Publisher: publisher,
		Now:       time.Now,
	}
}

// Notify stores one in-app notification per user and pushes each to live clients.
func (s *NotificationService) Notify(userIDs []uint, formID *uint, title, body, link string) error {
	if len(userIDs) == 0 {
		return nil
	}
	items := make([]notification.Notification, 0, len(userIDs))
	for _, id := range userIDs {
		items = append(items, notification.Notification{
			UserID: id,
			FormID: formID,
			Title:  title,
			Body:   body,
			Link:   link,
		})
	}
	if err := s.Repos.Notification.CreateNotifications(items); err != nil {
		return fmt.Errorf("create notifications: %w", err)
	}
	if s.Publisher == nil {
		return nil
	}
	for _, n := range items {
		s.Publisher.Publish(n.UserID, notification.Event{Type: notification.EventCreated, Notification: n})
	}
	return nil
}

func (s *NotificationService) List(rc types.RequestContext, unreadOnly bool, page, limit int) ([]notification.Notification, int64, error) {
	items, total, err := s.Repos.Notification.ListByUser(rc.UserID, unreadOnly, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, 0, storeError("list notifications", err)
	}
	return items, total, nil
}

func (s *NotificationService) MarkRead(rc types.RequestContext, id uint) error {
	n, err := s.Repos.Notification.MarkRead(id, rc.UserID, s.Now())
	if err != nil {
		return storeError("mark notification read", err)
	}
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// notifyQuietly is used where in-app delivery must not fail the caller.
func (s *NotificationService) notifyQuietly(userIDs []uint, formID *uint, title, body, link string) {
	if s == nil {
		return
	}
	if err := s.Notify(userIDs, formID, title, body, link); err != nil {
		log.Printf("[Notification] %v", err)
	}
}

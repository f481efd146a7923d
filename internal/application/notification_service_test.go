package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/audit"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_ListAndMarkRead(t *testing.T) {
	f := newFixture(t)
	sam := f.students[0]
	require.NoError(t, f.svc.Notification.Notify([]uint{sam.UserID}, nil, "One", "body", "/a"))
	require.NoError(t, f.svc.Notification.Notify([]uint{sam.UserID}, nil, "Two", "body", "/b"))

	items, total, err := f.svc.Notification.List(sam, false, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Two", items[0].Title)
	assert.Len(t, f.publisher.events[sam.UserID], 2)

	require.NoError(t, f.svc.Notification.MarkRead(sam, items[0].ID))
	unread, total, err := f.svc.Notification.List(sam, true, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "One", unread[0].Title)

	// another user's notification is not visible
	err = f.svc.Notification.MarkRead(f.students[1], items[1].ID)
	assert.ErrorIs(t, err, application.ErrNotificationNotFound)
}

func TestNotification_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.Fail("CreateNotifications", errors.New("down"))
	err := f.svc.Notification.Notify([]uint{f.students[0].UserID}, nil, "x", "y", "z")
	assert.Error(t, err)
	assert.Empty(t, f.publisher.events)
}

func TestAudit_QueryAndCleanup(t *testing.T) {
	f := newFixture(t)
	repos := f.store.Repos()
	now := time.Now()
	old := audit.AuditLog{UserID: 1, Action: "create", ResourceType: "form", ResourceID: "1", CreatedAt: now.AddDate(0, 0, -40)}
	fresh := audit.AuditLog{UserID: 2, Action: "update", ResourceType: "form", ResourceID: "1", CreatedAt: now}
	require.NoError(t, repos.Audit.CreateAuditLog(&old))
	require.NoError(t, repos.Audit.CreateAuditLog(&fresh))

	action := "update"
	logs, total, err := f.svc.Audit.QueryAuditLogs(repository.AuditQueryParams{Action: &action})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, fresh.ID, logs[0].ID)

	removed, err := f.svc.Audit.CleanupOldLogs(30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
	assert.Len(t, f.store.AuditLogs(), 1)
}

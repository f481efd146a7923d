package application_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository/memory"
	"github.com/linskybing/form-platform/pkg/email"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	mu       sync.Mutex
	messages []email.Message
	failFor  map[string]bool
	err      error
}

func (m *fakeMailer) SendBatch(_ context.Context, msg email.Message) (email.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	if m.err != nil {
		return email.Result{}, m.err
	}
	var res email.Result
	for _, r := range msg.Recipients {
		if m.failFor[r.Email] {
			res.Failed++
			continue
		}
		res.Sent++
	}
	return res, nil
}

func (m *fakeMailer) sent() []email.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.Message(nil), m.messages...)
}

type fakeFolders struct {
	calls []string
	err   error
}

func (f *fakeFolders) CreateFolder(_ context.Context, name string) (string, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return "", f.err
	}
	return "folder-" + name, nil
}

type fakePublisher struct {
	events map[uint][]notification.Event
}

func (p *fakePublisher) Publish(userID uint, ev notification.Event) {
	if p.events == nil {
		p.events = map[uint][]notification.Event{}
	}
	p.events[userID] = append(p.events[userID], ev)
}

type fixture struct {
	store     *memory.Store
	svc       *application.Services
	mailer    *fakeMailer
	folders   *fakeFolders
	publisher *fakePublisher

	admin    types.RequestContext
	manager  types.RequestContext
	reviewer types.RequestContext
	students []types.RequestContext
	users    map[uint]user.User
}

func asContext(u user.User, r user.Role) types.RequestContext {
	id := r.ID
	return types.RequestContext{UserID: u.ID, Username: u.Username, Role: r.Name, RoleID: &id}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	adminRole := store.AddRole(user.RoleAdmin, 0)
	managerRole := store.AddRole(user.RoleManager, 1)
	pmRole := store.AddRole(user.RoleProjectManager, 2)
	studentRole := store.AddRole(user.RoleStudent, 3)

	f := &fixture{
		store:     store,
		mailer:    &fakeMailer{failFor: map[string]bool{}},
		folders:   &fakeFolders{},
		publisher: &fakePublisher{},
		users:     map[uint]user.User{},
	}
	add := func(name string, role user.Role) types.RequestContext {
		u := store.AddUser(name, name+"@example.com", &role)
		f.users[u.ID] = u
		return asContext(u, role)
	}
	f.admin = add("alice", adminRole)
	f.manager = add("mike", managerRole)
	f.reviewer = add("paula", pmRole)
	for _, name := range []string{"sam", "sue", "sid"} {
		f.students = append(f.students, add(name, studentRole))
	}

	f.svc = application.New(store.Repos(), application.Deps{
		Mailer:    f.mailer,
		Folders:   f.folders,
		Publisher: f.publisher,
	})
	return f
}

func (f *fixture) studentIDs() []uint {
	ids := make([]uint, 0, len(f.students))
	for _, s := range f.students {
		ids = append(ids, s.UserID)
	}
	return ids
}

func strPtr(s string) *string { return &s }

func statusPtr(s form.FormStatus) *form.FormStatus { return &s }

// activeForm creates an active single-submission form owned by the manager.
func (f *fixture) activeForm(t *testing.T, fields ...form.FieldInput) form.AccessDetail {
	t.Helper()
	if len(fields) == 0 {
		fields = []form.FieldInput{{FieldName: "q1", FieldLabel: "Q1", FieldType: form.FieldTypeText, IsRequired: true}}
	}
	d, err := f.svc.Form.CreateForm(f.manager, form.CreateFormDTO{
		Title:    "Survey",
		FormType: "survey",
		Status:   statusPtr(form.FormStatusActive),
		Fields:   fields,
	})
	require.NoError(t, err)
	return d
}

func requireKind(t *testing.T, err error, kind application.Kind) {
	t.Helper()
	require.Error(t, err)
	var appErr *application.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, kind, appErr.Kind, appErr.Message)
}

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

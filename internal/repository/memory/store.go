// Package memory is an in-process implementation of the repository interfaces used by
// tests. ExecTx snapshots every table and restores it when the unit of work fails.
package memory

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/linskybing/form-platform/internal/domain/audit"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"gorm.io/gorm"
)

type tables struct {
	roles         map[uint]user.Role
	users         map[uint]user.User
	forms         map[uint]form.Form
	sections      map[uint]form.FormSection
	fields        map[uint]form.FormField
	options       map[uint]form.FormFieldOption
	grants        map[uint]form.UserFormAccess
	responses     map[uint]form.FormResponse
	answers       map[uint]form.FormFieldResponse
	notifications map[uint]notification.Notification
	audits        map[uint]audit.AuditLog
	seq           uint
}

func newTables() tables {
	return tables{
		roles:         map[uint]user.Role{},
		users:         map[uint]user.User{},
		forms:         map[uint]form.Form{},
		sections:      map[uint]form.FormSection{},
		fields:        map[uint]form.FormField{},
		options:       map[uint]form.FormFieldOption{},
		grants:        map[uint]form.UserFormAccess{},
		responses:     map[uint]form.FormResponse{},
		answers:       map[uint]form.FormFieldResponse{},
		notifications: map[uint]notification.Notification{},
		audits:        map[uint]audit.AuditLog{},
	}
}

func (t tables) clone() tables {
	return tables{
		roles:         maps.Clone(t.roles),
		users:         maps.Clone(t.users),
		forms:         maps.Clone(t.forms),
		sections:      maps.Clone(t.sections),
		fields:        maps.Clone(t.fields),
		options:       maps.Clone(t.options),
		grants:        maps.Clone(t.grants),
		responses:     maps.Clone(t.responses),
		answers:       maps.Clone(t.answers),
		notifications: maps.Clone(t.notifications),
		audits:        maps.Clone(t.audits),
		seq:           t.seq,
	}
}

// Store holds every table in memory.
type Store struct {
	mu    sync.Mutex
	t     tables
	fails map[string]error

	// Now stamps CreatedAt/UpdatedAt like the database would.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		t:     newTables(),
		fails: map[string]error{},
		Now:   time.Now,
	}
}

// Fail makes the named repository method return err until cleared with a nil err.
func (s *Store) Fail(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fails, method)
		return
	}
	s.fails[method] = err
}

func (s *Store) failure(method string) error {
	return s.fails[method]
}

func (s *Store) nextID() uint {
	s.t.seq++
	return s.t.seq
}

func (s *Store) now() time.Time {
	return s.Now()
}

// Repos wires every repository to s, with ExecTx backed by snapshot and restore.
func (s *Store) Repos() *repository.Repos {
	repos := &repository.Repos{
		Form:         &formRepo{s},
		Access:       &accessRepo{s},
		Response:     &responseRepo{s},
		User:         &userRepo{s},
		Notification: &notificationRepo{s},
		Audit:        &auditRepo{s},
	}
	repos.SetTxRunner(func(fn func(*repository.Repos) error) error {
		s.mu.Lock()
		snapshot := s.t.clone()
		s.mu.Unlock()

		if err := fn(repos); err != nil {
			s.mu.Lock()
			s.t = snapshot
			s.mu.Unlock()
			return err
		}
		return nil
	})
	return repos
}

// Seeding helpers.

func (s *Store) AddRole(name string, rank int) user.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := user.Role{ID: s.nextID(), Name: name, Rank: rank}
	s.t.roles[r.ID] = r
	return r
}

func (s *Store) AddUser(username, email string, role *user.Role) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user.User{ID: s.nextID(), Username: username, Email: email, FullName: username, CreatedAt: s.now(), UpdatedAt: s.now()}
	if role != nil {
		id := role.ID
		u.RoleID = &id
	}
	s.t.users[u.ID] = u
	return u
}

// Inspection helpers.

func (s *Store) CountForms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.t.forms)
}

func (s *Store) CountResponses(formID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.t.responses {
		if r.FormID == formID {
			n++
		}
	}
	return n
}

func (s *Store) Grants(formID uint) []form.UserFormAccess {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []form.UserFormAccess
	for _, g := range s.t.grants {
		if g.FormID == formID {
			out = append(out, g)
		}
	}
	sortByID(out, func(g form.UserFormAccess) uint { return g.ID })
	return out
}

func (s *Store) Fields(formID uint) []form.FormField {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldsOf(formID, false)
}

func (s *Store) Notifications(userID uint) []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notification.Notification
	for _, n := range s.t.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sortByID(out, func(n notification.Notification) uint { return n.ID })
	return out
}

func (s *Store) AuditLogs() []audit.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]audit.AuditLog, 0, len(s.t.audits))
	for _, a := range s.t.audits {
		out = append(out, a)
	}
	sortByID(out, func(a audit.AuditLog) uint { return a.ID })
	return out
}

func notFound(table string, id uint) error {
	return fmt.Errorf("%s %d: %w", table, id, gorm.ErrRecordNotFound)
}

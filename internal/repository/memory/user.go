package memory

import (
	"cmp"
	"slices"
	"time"

	"github.com/linskybing/form-platform/internal/domain/audit"
	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"gorm.io/gorm"
)

type userRepo struct{ s *Store }

func (r *userRepo) withRole(u user.User) user.User {
	if u.RoleID != nil {
		if role, ok := r.s.t.roles[*u.RoleID]; ok {
			u.Role = &role
		}
	}
	return u
}

func (r *userRepo) GetUserByID(id uint) (user.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.t.users[id]
	if !ok {
		return user.User{}, notFound("user", id)
	}
	return r.withRole(u), nil
}

func (r *userRepo) GetUserByUsername(username string) (user.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.t.users {
		if u.Username == username {
			return r.withRole(u), nil
		}
	}
	return user.User{}, gorm.ErrRecordNotFound
}

func (r *userRepo) ListUsersByIDs(ids []uint) ([]user.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListUsersByIDs"); err != nil {
		return nil, err
	}
	var out []user.User
	for _, u := range s.t.users {
		if slices.Contains(ids, u.ID) {
			out = append(out, u)
		}
	}
	sortByID(out, func(u user.User) uint { return u.ID })
	return out, nil
}

func (r *userRepo) ListRolesByNames(names []string) ([]user.Role, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []user.Role
	for _, role := range s.t.roles {
		if slices.Contains(names, role.Name) {
			out = append(out, role)
		}
	}
	slices.SortFunc(out, func(a, b user.Role) int {
		if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *userRepo) GetRoleByName(name string) (user.Role, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, role := range s.t.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return user.Role{}, gorm.ErrRecordNotFound
}

func (r *userRepo) SaveUser(u *user.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.nextID()
		u.CreatedAt = s.now()
	}
	u.UpdatedAt = s.now()
	row := *u
	row.Role = nil
	s.t.users[u.ID] = row
	return nil
}

func (r *userRepo) SaveRole(role *user.Role) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if role.ID == 0 {
		role.ID = s.nextID()
	}
	s.t.roles[role.ID] = *role
	return nil
}

func (r *userRepo) WithTx(*gorm.DB) repository.UserRepo { return r }

type notificationRepo struct{ s *Store }

func (r *notificationRepo) CreateNotifications(items []notification.Notification) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateNotifications"); err != nil {
		return err
	}
	for i := range items {
		items[i].ID = s.nextID()
		items[i].CreatedAt = s.now()
		s.t.notifications[items[i].ID] = items[i]
	}
	return nil
}

func (r *notificationRepo) ListByUser(userID uint, unreadOnly bool, offset, limit int) ([]notification.Notification, int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notification.Notification
	for _, n := range s.t.notifications {
		if n.UserID == userID && (!unreadOnly || n.ReadAt == nil) {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b notification.Notification) int { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return page(out, offset, limit), int64(len(out)), nil
}

func (r *notificationRepo) MarkRead(id, userID uint, at time.Time) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.t.notifications[id]
	if !ok || n.UserID != userID {
		return 0, nil
	}
	n.ReadAt = &at
	s.t.notifications[id] = n
	return 1, nil
}

func (r *notificationRepo) WithTx(*gorm.DB) repository.NotificationRepo { return r }

type auditRepo struct{ s *Store }

func (r *auditRepo) GetAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []audit.AuditLog
	for _, a := range s.t.audits {
		if params.UserID != nil && a.UserID != *params.UserID {
			continue
		}
		if params.ResourceType != nil && a.ResourceType != *params.ResourceType {
			continue
		}
		if params.ResourceID != nil && a.ResourceID != *params.ResourceID {
			continue
		}
		if params.Action != nil && a.Action != *params.Action {
			continue
		}
		if params.StartTime != nil && a.CreatedAt.Before(*params.StartTime) {
			continue
		}
		if params.EndTime != nil && a.CreatedAt.After(*params.EndTime) {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b audit.AuditLog) int { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return page(out, params.Offset, params.Limit), int64(len(out)), nil
}

func (r *auditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextID()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}
	s.t.audits[entry.ID] = *entry
	return nil
}

func (r *auditRepo) DeleteAuditLogsBefore(cutoff time.Time) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, a := range s.t.audits {
		if a.CreatedAt.Before(cutoff) {
			delete(s.t.audits, id)
			n++
		}
	}
	return n, nil
}

func (r *auditRepo) WithTx(*gorm.DB) repository.AuditRepo { return r }

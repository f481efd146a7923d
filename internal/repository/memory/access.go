package memory

import (
	"slices"
	"time"

	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"gorm.io/gorm"
)

type accessRepo struct{ s *Store }

func (r *accessRepo) ListGrantsByForm(formID uint) ([]form.UserFormAccess, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListGrantsByForm"); err != nil {
		return nil, err
	}
	var out []form.UserFormAccess
	for _, g := range s.t.grants {
		if g.FormID == formID {
			out = append(out, g)
		}
	}
	sortByID(out, func(g form.UserFormAccess) uint { return g.ID })
	return out, nil
}

func (r *accessRepo) ListGrantedFormIDs(roleID *uint, userID uint, now time.Time) ([]uint, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint
	for _, g := range s.t.grants {
		if !g.IsActive || (g.ExpiresAt != nil && !g.ExpiresAt.After(now)) {
			continue
		}
		roleMatch := roleID != nil && g.RoleID != nil && *g.RoleID == *roleID
		userMatch := g.RoleID == nil && g.UserID != nil && *g.UserID == userID
		if (roleMatch || userMatch) && !slices.Contains(ids, g.FormID) {
			ids = append(ids, g.FormID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *accessRepo) CreateGrants(grants []form.UserFormAccess) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateGrants"); err != nil {
		return err
	}
	for i := range grants {
		grants[i].ID = s.nextID()
		s.t.grants[grants[i].ID] = grants[i]
	}
	return nil
}

func (r *accessRepo) ListUserGrants(formID uint) ([]form.UserFormAccess, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListUserGrants"); err != nil {
		return nil, err
	}
	var out []form.UserFormAccess
	for _, g := range s.t.grants {
		if g.FormID == formID && g.RoleID == nil && g.UserID != nil {
			out = append(out, g)
		}
	}
	sortByID(out, func(g form.UserFormAccess) uint { return g.ID })
	return out, nil
}

func (r *accessRepo) DeleteUserGrants(formID uint, userIDs []uint) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteUserGrants"); err != nil {
		return 0, err
	}
	var n int64
	for id, g := range s.t.grants {
		if g.FormID == formID && g.RoleID == nil && g.UserID != nil && slices.Contains(userIDs, *g.UserID) {
			delete(s.t.grants, id)
			n++
		}
	}
	return n, nil
}

func (r *accessRepo) WithTx(*gorm.DB) repository.AccessRepo { return r }

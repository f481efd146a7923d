package application

import (
	"slices"
	"time"

	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/types"
)

type AccessService struct {
	Repos *repository.Repos
	Now   func() time.Time
}

func NewAccessService(repos *repository.Repos) *AccessService {
	return &AccessService{
		Repos: repos,
		Now:   time.Now,
	}
}

func IsSuper(rc types.RequestContext) bool {
	return rc.HasRole(config.SuperRoles...)
}

func subjectOf(rc types.RequestContext) form.Subject {
	return form.Subject{UserID: rc.UserID, RoleID: rc.RoleID, Super: IsSuper(rc)}
}

// Evaluate resolves rc's access to f, loading grants only when the creator and role
// rules do not already decide.
func (s *AccessService) Evaluate(rc types.RequestContext, f *form.Form) (form.AccessType, error) {
	subject := subjectOf(rc)
	if f.CreatedBy == rc.UserID || subject.Super {
		return form.AccessEdit, nil
	}

	rows, err := s.Repos.Access.ListGrantsByForm(f.ID)
	if err != nil {
		return form.AccessNone, storeError("list grants", err)
	}
	grants := make([]form.AccessGrant, 0, len(rows))
	for _, row := range rows {
		if g := row.Grant(); g != nil {
			grants = append(grants, g)
		}
	}
	return form.Evaluate(subject, f, grants, s.Now()), nil
}

// AccessibleFormIDs lists forms rc created or holds an active grant for.
func (s *AccessService) AccessibleFormIDs(rc types.RequestContext) ([]uint, error) {
	created, err := s.Repos.Form.ListFormIDsByCreator(rc.UserID)
	if err != nil {
		return nil, storeError("list created forms", err)
	}
	granted, err := s.Repos.Access.ListGrantedFormIDs(rc.RoleID, rc.UserID, s.Now())
	if err != nil {
		return nil, storeError("list granted forms", err)
	}

	ids := append(created, granted...)
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Require loads the form and fails unless rc holds at least need.
func (s *AccessService) Require(rc types.RequestContext, formID uint, need form.AccessType) (form.Form, form.AccessType, error) {
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return form.Form{}, form.AccessNone, notFoundOr("get form", err, ErrFormNotFound)
	}
	access, err := s.Evaluate(rc, &f)
	if err != nil {
		return form.Form{}, form.AccessNone, err
	}
	if access == form.AccessNone || !access.Allows(need) {
		return form.Form{}, access, ErrAccessDenied
	}
	return f, access, nil
}

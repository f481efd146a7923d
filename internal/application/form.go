package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/linskybing/form-platform/pkg/utils"
)

type FormService struct {
	Repos  *repository.Repos
	Access *AccessService
	Now    func() time.Time
}

func NewFormService(repos *repository.Repos, access *AccessService) *FormService {
	return &FormService{
		Repos:  repos,
		Access: access,
		Now:    time.Now,
	}
}

func definitionError(err error) error {
	return &AppError{Kind: KindValidation, Message: err.Error()}
}

func (s *FormService) CreateForm(rc types.RequestContext, in form.CreateFormDTO) (form.AccessDetail, error) {
	if !rc.HasRole(config.FormCreatorRoles...) {
		return form.AccessDetail{}, ErrCreateForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return form.AccessDetail{}, ErrTitleRequired
	}
	if err := form.ValidateDefinition(in.Fields, len(in.Sections)); err != nil {
		return form.AccessDetail{}, definitionError(err)
	}

	status := form.FormStatusDraft
	if in.Status != nil {
		status = *in.Status
	}
	f := form.Form{
		Title:                    strings.TrimSpace(in.Title),
		Description:              in.Description,
		FormType:                 in.FormType,
		Status:                   status,
		IsRequired:               in.IsRequired,
		AllowMultipleSubmissions: in.AllowMultipleSubmissions,
		SubmissionDeadline:       in.SubmissionDeadline,
		CreatedBy:                rc.UserID,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.CreateForm(&f); err != nil {
			return fmt.Errorf("create form: %w", err)
		}
		if err := writeDefinition(tx, f.ID, in.Sections, in.Fields); err != nil {
			return err
		}
		return grantDefaultRoles(tx, f.ID, rc.UserID, s.Now())
	})
	if err != nil {
		return form.AccessDetail{}, storeError("create form", err)
	}
	return s.detail(f.ID, form.AccessEdit)
}

func (s *FormService) GetForm(rc types.RequestContext, id uint) (form.AccessDetail, error) {
	f, err := s.Repos.Form.GetFormWithDefinition(id)
	if err != nil {
		return form.AccessDetail{}, notFoundOr("get form", err, ErrFormNotFound)
	}
	access, err := s.Access.Evaluate(rc, &f)
	if err != nil {
		return form.AccessDetail{}, err
	}
	if access == form.AccessNone {
		return form.AccessDetail{}, ErrAccessDenied
	}
	return form.AccessDetail{Form: f, AccessType: access}, nil
}

// ListForms returns a page of forms visible to rc, newest first.
func (s *FormService) ListForms(rc types.RequestContext, q form.ListQuery) ([]form.AccessDetail, int64, error) {
	filter := repository.FormFilter{
		FormType: q.FormType,
		Status:   q.Status,
		Search:   strings.TrimSpace(q.Search),
		Offset:   utils.Offset(q.Page, q.Limit),
		Limit:    q.Limit,
	}
	super := IsSuper(rc)
	if !super {
		ids, err := s.Access.AccessibleFormIDs(rc)
		if err != nil {
			return nil, 0, err
		}
		filter.Restrict = true
		filter.IDs = ids
	}

	forms, total, err := s.Repos.Form.ListForms(filter)
	if err != nil {
		return nil, 0, storeError("list forms", err)
	}

	out := make([]form.AccessDetail, 0, len(forms))
	for i := range forms {
		access := form.AccessEdit
		if !super {
			if access, err = s.Access.Evaluate(rc, &forms[i]); err != nil {
				return nil, 0, err
			}
		}
		out = append(out, form.AccessDetail{Form: forms[i], AccessType: access})
	}
	return out, total, nil
}

func (s *FormService) UpdateForm(rc types.RequestContext, id uint, in form.UpdateFormDTO) (form.AccessDetail, error) {
	if _, _, err := s.Access.Require(rc, id, form.AccessEdit); err != nil {
		return form.AccessDetail{}, err
	}
	current, err := s.Repos.Form.GetFormWithDefinition(id)
	if err != nil {
		return form.AccessDetail{}, notFoundOr("get form", err, ErrFormNotFound)
	}

	f := current
	f.Sections, f.Fields = nil, nil
	if err := applyFormPatch(&f, in); err != nil {
		return form.AccessDetail{}, err
	}
	if in.Fields != nil {
		if err := form.ValidateDefinition(*in.Fields, len(current.Sections)); err != nil {
			return form.AccessDetail{}, definitionError(err)
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.UpdateForm(&f); err != nil {
			return fmt.Errorf("update form: %w", err)
		}
		if in.Fields == nil {
			return nil
		}
		return reconcileFields(tx, f.ID, sectionIDsOf(current.Sections), *in.Fields)
	})
	if err != nil {
		return form.AccessDetail{}, storeError("update form", err)
	}
	return s.detail(id, form.AccessEdit)
}

func (s *FormService) DeleteForm(rc types.RequestContext, id uint) (form.Form, error) {
	f, _, err := s.Access.Require(rc, id, form.AccessEdit)
	if err != nil {
		return form.Form{}, err
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		return tx.Form.DeleteForm(id)
	})
	if err != nil {
		return form.Form{}, storeError("delete form", err)
	}
	return f, nil
}

func (s *FormService) detail(id uint, access form.AccessType) (form.AccessDetail, error) {
	f, err := s.Repos.Form.GetFormWithDefinition(id)
	if err != nil {
		return form.AccessDetail{}, notFoundOr("get form", err, ErrFormNotFound)
	}
	return form.AccessDetail{Form: f, AccessType: access}, nil
}

func applyFormPatch(f *form.Form, in form.UpdateFormDTO) error {
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return ErrTitleRequired
		}
		f.Title = title
	}
	if in.Description != nil {
		f.Description = *in.Description
	}
	if in.FormType != nil {
		f.FormType = *in.FormType
	}
	if in.Status != nil {
		f.Status = *in.Status
	}
	if in.IsRequired != nil {
		f.IsRequired = *in.IsRequired
	}
	if in.AllowMultipleSubmissions != nil {
		f.AllowMultipleSubmissions = *in.AllowMultipleSubmissions
	}
	if in.SubmissionDeadline != nil {
		f.SubmissionDeadline = in.SubmissionDeadline
		f.ReminderSentAt = nil
	}
	return nil
}

// writeDefinition inserts the sections and fields of a new form.
func writeDefinition(repos *repository.Repos, formID uint, sections []form.SectionInput, fields []form.FieldInput) error {
	sectionIDs := make([]uint, 0, len(sections))
	for i, in := range sections {
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		sec := form.FormSection{FormID: formID, Title: in.Title, Description: in.Description, Order: order}
		if err := repos.Form.CreateSection(&sec); err != nil {
			return fmt.Errorf("create section %d: %w", i, err)
		}
		sectionIDs = append(sectionIDs, sec.ID)
	}
	for i, in := range fields {
		field := form.NewField(formID, sectionFor(in.SectionIndex, sectionIDs), in, i)
		if err := repos.Form.CreateField(&field); err != nil {
			return fmt.Errorf("create field %s: %w", field.FieldName, err)
		}
	}
	return nil
}

// reconcileFields matches incoming fields to existing ones by id. Matches are updated in
// place with their options replaced, the rest are inserted, and active fields missing from
// inputs are deactivated.
func reconcileFields(repos *repository.Repos, formID uint, sectionIDs []uint, inputs []form.FieldInput) error {
	existing, err := repos.Form.ListFieldsByFormID(formID)
	if err != nil {
		return fmt.Errorf("list fields: %w", err)
	}
	byID := make(map[uint]form.FormField, len(existing))
	for _, f := range existing {
		byID[f.ID] = f
	}

	kept := make(map[uint]bool, len(inputs))
	for i, in := range inputs {
		sectionID := sectionFor(in.SectionIndex, sectionIDs)
		if in.ID != nil {
			if cur, ok := byID[*in.ID]; ok && !kept[cur.ID] {
				if in.SectionIndex == nil {
					sectionID = cur.FormSectionID
				}
				cur.ApplyInput(in, i, sectionID)
				if err := repos.Form.SaveField(&cur); err != nil {
					return fmt.Errorf("update field %d: %w", cur.ID, err)
				}
				if err := repos.Form.ReplaceFieldOptions(cur.ID, form.NewOptions(in)); err != nil {
					return fmt.Errorf("replace options of field %d: %w", cur.ID, err)
				}
				kept[cur.ID] = true
				continue
			}
		}
		field := form.NewField(formID, sectionID, in, i)
		if err := repos.Form.CreateField(&field); err != nil {
			return fmt.Errorf("create field %s: %w", field.FieldName, err)
		}
	}

	return deactivateMissing(repos, existing, kept)
}

func deactivateMissing(repos *repository.Repos, existing []form.FormField, kept map[uint]bool) error {
	var stale []uint
	for _, f := range existing {
		if f.IsActive && !kept[f.ID] {
			stale = append(stale, f.ID)
		}
	}
	if err := repos.Form.DeactivateFields(stale); err != nil {
		return fmt.Errorf("deactivate fields: %w", err)
	}
	return nil
}

func grantDefaultRoles(repos *repository.Repos, formID, grantedBy uint, now time.Time) error {
	roles, err := repos.User.ListRolesByNames(config.DefaultGrantRoles)
	if err != nil {
		return fmt.Errorf("list default roles: %w", err)
	}
	rows := make([]form.UserFormAccess, 0, len(roles))
	for _, role := range roles {
		rows = append(rows, form.NewRoleGrantRow(formID, role.ID, form.AccessEdit, grantedBy, now))
	}
	if err := repos.Access.CreateGrants(rows); err != nil {
		return fmt.Errorf("grant default roles: %w", err)
	}
	return nil
}

func sectionFor(idx *int, ids []uint) *uint {
	if idx == nil || *idx < 0 || *idx >= len(ids) {
		return nil
	}
	id := ids[*idx]
	return &id
}

func sectionIDsOf(sections []form.FormSection) []uint {
	ids := make([]uint, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}

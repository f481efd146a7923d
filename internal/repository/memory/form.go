package memory

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"gorm.io/gorm"
)

func sortByID[T any](items []T, id func(T) uint) {
	slices.SortFunc(items, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
}

func byOrder(a, b form.FormField) int {
	if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func optionsByOrder(a, b form.FormFieldOption) int {
	if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// newestFirst orders rows by created_at desc, then id desc.
func newestFirst(aAt, bAt time.Time, aID, bID uint) int {
	if c := bAt.Compare(aAt); c != 0 {
		return c
	}
	return cmp.Compare(bID, aID)
}

func page[T any](items []T, offset, limit int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// fieldsOf must be called with s.mu held.
func (s *Store) fieldsOf(formID uint, activeOnly bool) []form.FormField {
	var fields []form.FormField
	for _, f := range s.t.fields {
		if f.FormID != formID || (activeOnly && !f.IsActive) {
			continue
		}
		f.Options = s.optionsOf(f.ID, activeOnly)
		fields = append(fields, f)
	}
	slices.SortFunc(fields, byOrder)
	return fields
}

func (s *Store) optionsOf(fieldID uint, activeOnly bool) []form.FormFieldOption {
	var opts []form.FormFieldOption
	for _, o := range s.t.options {
		if o.FieldID == fieldID && (!activeOnly || o.IsActive) {
			opts = append(opts, o)
		}
	}
	slices.SortFunc(opts, optionsByOrder)
	return opts
}

type formRepo struct{ s *Store }

func (r *formRepo) CreateForm(f *form.Form) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateForm"); err != nil {
		return err
	}
	f.ID = s.nextID()
	f.CreatedAt, f.UpdatedAt = s.now(), s.now()
	if f.Status == "" {
		f.Status = form.FormStatusDraft
	}
	row := *f
	row.Sections, row.Fields = nil, nil
	s.t.forms[f.ID] = row
	return nil
}

func (r *formRepo) CreateSection(sec *form.FormSection) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateSection"); err != nil {
		return err
	}
	sec.ID = s.nextID()
	sec.CreatedAt, sec.UpdatedAt = s.now(), s.now()
	s.t.sections[sec.ID] = *sec
	return nil
}

func (r *formRepo) CreateField(f *form.FormField) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateField"); err != nil {
		return err
	}
	f.ID = s.nextID()
	f.CreatedAt, f.UpdatedAt = s.now(), s.now()
	for i := range f.Options {
		f.Options[i].ID = s.nextID()
		f.Options[i].FieldID = f.ID
		f.Options[i].CreatedAt = s.now()
		s.t.options[f.Options[i].ID] = f.Options[i]
	}
	row := *f
	row.Options = nil
	s.t.fields[f.ID] = row
	return nil
}

func (r *formRepo) GetFormByID(id uint) (form.Form, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetFormByID"); err != nil {
		return form.Form{}, err
	}
	f, ok := s.t.forms[id]
	if !ok {
		return form.Form{}, notFound("form", id)
	}
	return f, nil
}

func (r *formRepo) GetFormForUpdate(id uint) (form.Form, error) {
	return r.GetFormByID(id)
}

func (r *formRepo) GetFormWithDefinition(id uint) (form.Form, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetFormWithDefinition"); err != nil {
		return form.Form{}, err
	}
	f, ok := s.t.forms[id]
	if !ok {
		return form.Form{}, notFound("form", id)
	}
	for _, sec := range s.t.sections {
		if sec.FormID == id {
			f.Sections = append(f.Sections, sec)
		}
	}
	slices.SortFunc(f.Sections, func(a, b form.FormSection) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	f.Fields = s.fieldsOf(id, true)
	return f, nil
}

func (r *formRepo) ListForms(filter repository.FormFilter) ([]form.Form, int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListForms"); err != nil {
		return nil, 0, err
	}
	if filter.Restrict && len(filter.IDs) == 0 {
		return []form.Form{}, 0, nil
	}

	search := strings.ToLower(filter.Search)
	var out []form.Form
	for _, f := range s.t.forms {
		if filter.Restrict && !slices.Contains(filter.IDs, f.ID) {
			continue
		}
		if filter.FormType != "" && f.FormType != filter.FormType {
			continue
		}
		if filter.Status != "" && string(f.Status) != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Title), search) &&
			!strings.Contains(strings.ToLower(f.Description), search) {
			continue
		}
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b form.Form) int { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return page(out, filter.Offset, filter.Limit), int64(len(out)), nil
}

func (r *formRepo) ListFormIDsByCreator(userID uint) ([]uint, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uint
	for _, f := range s.t.forms {
		if f.CreatedBy == userID {
			ids = append(ids, f.ID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *formRepo) UpdateForm(f *form.Form) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateForm"); err != nil {
		return err
	}
	if _, ok := s.t.forms[f.ID]; !ok {
		return notFound("form", f.ID)
	}
	f.UpdatedAt = s.now()
	row := *f
	row.Sections, row.Fields = nil, nil
	s.t.forms[f.ID] = row
	return nil
}

func (r *formRepo) ListFieldsByFormID(formID uint) ([]form.FormField, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldsOf(formID, false), nil
}

func (r *formRepo) SaveField(f *form.FormField) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("SaveField"); err != nil {
		return err
	}
	if f.ID == 0 {
		f.ID = s.nextID()
		f.CreatedAt = s.now()
	}
	f.UpdatedAt = s.now()
	row := *f
	row.Options = nil
	s.t.fields[f.ID] = row
	return nil
}

func (r *formRepo) UpdateFieldColumns(fieldID uint, columns map[string]interface{}) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateFieldColumns"); err != nil {
		return err
	}
	f, ok := s.t.fields[fieldID]
	if !ok {
		return notFound("form_field", fieldID)
	}
	for col, v := range columns {
		switch col {
		case "field_name":
			f.FieldName = v.(string)
		case "field_label":
			f.FieldLabel = v.(string)
		case "field_type":
			f.FieldType = v.(form.FieldType)
		case "help_text":
			f.HelpText = v.(string)
		case "is_required":
			f.IsRequired = v.(bool)
		case "is_active":
			f.IsActive = v.(bool)
		case "display_order":
			f.DisplayOrder = v.(int)
		case "upload_folder_id":
			f.UploadFolderID = v.(*string)
		}
	}
	f.UpdatedAt = s.now()
	s.t.fields[fieldID] = f
	return nil
}

func (r *formRepo) ReplaceFieldOptions(fieldID uint, options []form.FormFieldOption) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ReplaceFieldOptions"); err != nil {
		return err
	}
	for id, o := range s.t.options {
		if o.FieldID == fieldID {
			delete(s.t.options, id)
		}
	}
	for i := range options {
		options[i].ID = s.nextID()
		options[i].FieldID = fieldID
		options[i].CreatedAt = s.now()
		s.t.options[options[i].ID] = options[i]
	}
	return nil
}

func (r *formRepo) DeactivateFields(ids []uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeactivateFields"); err != nil {
		return err
	}
	for _, id := range ids {
		if f, ok := s.t.fields[id]; ok {
			f.IsActive = false
			f.UpdatedAt = s.now()
			s.t.fields[id] = f
		}
	}
	return nil
}

func (r *formRepo) DeleteForm(id uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteForm"); err != nil {
		return err
	}
	for rid, resp := range s.t.responses {
		if resp.FormID != id {
			continue
		}
		for aid, a := range s.t.answers {
			if a.ResponseID == rid {
				delete(s.t.answers, aid)
			}
		}
		delete(s.t.responses, rid)
	}
	for fid, f := range s.t.fields {
		if f.FormID != id {
			continue
		}
		for oid, o := range s.t.options {
			if o.FieldID == fid {
				delete(s.t.options, oid)
			}
		}
		delete(s.t.fields, fid)
	}
	for sid, sec := range s.t.sections {
		if sec.FormID == id {
			delete(s.t.sections, sid)
		}
	}
	for gid, g := range s.t.grants {
		if g.FormID == id {
			delete(s.t.grants, gid)
		}
	}
	delete(s.t.forms, id)
	return nil
}

func (r *formRepo) ListTasksDueBetween(from, to time.Time) ([]form.Form, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []form.Form
	for _, f := range s.t.forms {
		if f.FormType != form.FormTypeTask || f.Status != form.FormStatusActive || f.ReminderSentAt != nil {
			continue
		}
		if f.SubmissionDeadline == nil || !f.SubmissionDeadline.After(from) || f.SubmissionDeadline.After(to) {
			continue
		}
		out = append(out, f)
	}
	sortByID(out, func(f form.Form) uint { return f.ID })
	return out, nil
}

func (r *formRepo) MarkReminderSent(id uint, at time.Time) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.t.forms[id]
	if !ok {
		return notFound("form", id)
	}
	f.ReminderSentAt = &at
	s.t.forms[id] = f
	return nil
}

func (r *formRepo) WithTx(*gorm.DB) repository.FormRepo { return r }

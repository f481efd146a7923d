package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/task"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/storage"
	"github.com/linskybing/form-platform/pkg/types"
)

type TaskService struct {
	Repos   *repository.Repos
	Access  *AccessService
	Forms   *FormService
	Folders storage.FolderCreator
	Now     func() time.Time
}

func NewTaskService(repos *repository.Repos, access *AccessService, forms *FormService, folders storage.FolderCreator) *TaskService {
	return &TaskService{
		Repos:   repos,
		Access:  access,
		Forms:   forms,
		Folders: folders,
		Now:     time.Now,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, rc types.RequestContext, in task.CreateTaskDTO) (task.TaskView, error) {
	if !rc.HasRole(config.FormCreatorRoles...) {
		return task.TaskView{}, ErrCreateForbidden
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return task.TaskView{}, ErrTitleRequired
	}

	inputs := requirementInputs(in.Requirements, nil)
	if err := form.ValidateDefinition(inputs, 0); err != nil {
		return task.TaskView{}, definitionError(err)
	}
	s.allocateFolders(ctx, title, inputs, nil)

	status := form.FormStatusActive
	if in.Status != nil {
		status = *in.Status
	}
	f := form.Form{
		Title:                    title,
		Description:              in.Description,
		FormType:                 form.FormTypeTask,
		Status:                   status,
		AllowMultipleSubmissions: in.AllowMultipleSubmissions,
		SubmissionDeadline:       in.SubmissionDeadline,
		CreatedBy:                rc.UserID,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.CreateForm(&f); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		if err := writeDefinition(tx, f.ID, nil, inputs); err != nil {
			return err
		}
		return grantDefaultRoles(tx, f.ID, rc.UserID, s.Now())
	})
	if err != nil {
		return task.TaskView{}, storeError("create task", err)
	}
	return s.view(f.ID, form.AccessEdit)
}

func (s *TaskService) GetTask(rc types.RequestContext, id uint) (task.TaskView, error) {
	detail, err := s.Forms.GetForm(rc, id)
	if err != nil {
		return task.TaskView{}, asTaskError(err)
	}
	if detail.FormType != form.FormTypeTask {
		return task.TaskView{}, ErrTaskNotFound
	}
	v := task.FromForm(detail.Form)
	v.AccessType = detail.AccessType
	return v, nil
}

func (s *TaskService) ListTasks(rc types.RequestContext, q form.ListQuery) ([]task.TaskView, int64, error) {
	q.FormType = form.FormTypeTask
	forms, total, err := s.Forms.ListForms(rc, q)
	if err != nil {
		return nil, 0, err
	}
	out := make([]task.TaskView, 0, len(forms))
	for _, d := range forms {
		def, err := s.Repos.Form.GetFormWithDefinition(d.ID)
		if err != nil {
			return nil, 0, storeError("load task", err)
		}
		v := task.FromForm(def)
		v.AccessType = d.AccessType
		out = append(out, v)
	}
	return out, total, nil
}

// UpdateTask patches the task. A requirements list is reconciled against the existing
// fields: matched ids get only their changed columns written, unmatched entries are
// created, and fields missing from the list are deactivated.
func (s *TaskService) UpdateTask(ctx context.Context, rc types.RequestContext, id uint, in task.UpdateTaskDTO) (task.TaskView, error) {
	f, err := s.requireTask(rc, id, form.AccessEdit)
	if err != nil {
		return task.TaskView{}, err
	}

	patch := form.UpdateFormDTO{
		Title:                    in.Title,
		Description:              in.Description,
		Status:                   in.Status,
		AllowMultipleSubmissions: in.AllowMultipleSubmissions,
		SubmissionDeadline:       in.SubmissionDeadline,
	}
	if err := applyFormPatch(&f, patch); err != nil {
		return task.TaskView{}, err
	}

	var existing []form.FormField
	var inputs []form.FieldInput
	if in.Requirements != nil {
		if existing, err = s.Repos.Form.ListFieldsByFormID(id); err != nil {
			return task.TaskView{}, storeError("list fields", err)
		}
		inputs = requirementInputs(*in.Requirements, existing)
		if err := form.ValidateDefinition(inputs, 0); err != nil {
			return task.TaskView{}, definitionError(err)
		}
		s.allocateFolders(ctx, f.Title, inputs, existing)
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Form.UpdateForm(&f); err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		if in.Requirements == nil {
			return nil
		}
		return diffRequirements(tx, id, existing, inputs)
	})
	if err != nil {
		return task.TaskView{}, storeError("update task", err)
	}
	return s.view(id, form.AccessEdit)
}

func (s *TaskService) DeleteTask(rc types.RequestContext, id uint) (form.Form, error) {
	if _, err := s.requireTask(rc, id, form.AccessEdit); err != nil {
		return form.Form{}, err
	}
	f, err := s.Forms.DeleteForm(rc, id)
	if err != nil {
		return form.Form{}, asTaskError(err)
	}
	return f, nil
}

func (s *TaskService) requireTask(rc types.RequestContext, id uint, need form.AccessType) (form.Form, error) {
	f, _, err := s.Access.Require(rc, id, need)
	if err != nil {
		return form.Form{}, asTaskError(err)
	}
	if f.FormType != form.FormTypeTask {
		return form.Form{}, ErrTaskNotFound
	}
	return f, nil
}

func (s *TaskService) view(id uint, access form.AccessType) (task.TaskView, error) {
	def, err := s.Repos.Form.GetFormWithDefinition(id)
	if err != nil {
		return task.TaskView{}, notFoundOr("get task", err, ErrTaskNotFound)
	}
	v := task.FromForm(def)
	v.AccessType = access
	return v, nil
}

// allocateFolders gives every file requirement without a folder a new one. Storage
// failures are logged and leave the requirement without a folder.
func (s *TaskService) allocateFolders(ctx context.Context, title string, inputs []form.FieldInput, existing []form.FormField) {
	if s.Folders == nil {
		return
	}
	for i := range inputs {
		in := &inputs[i]
		if in.FieldType != form.FieldTypeFileUpload || in.UploadFolderID != nil {
			continue
		}
		if cur, ok := matchField(existing, in.ID); ok && cur.UploadFolderID != nil {
			continue
		}
		folderID, err := s.Folders.CreateFolder(ctx, title+" - "+in.FieldLabel)
		if err != nil {
			log.Printf("[Task] folder allocation for %q failed: %v", in.FieldLabel, err)
			continue
		}
		in.UploadFolderID = &folderID
	}
}

func asTaskError(err error) error {
	if errors.Is(err, ErrFormNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func matchField(existing []form.FormField, id *uint) (form.FormField, bool) {
	if id == nil {
		return form.FormField{}, false
	}
	i := slices.IndexFunc(existing, func(f form.FormField) bool { return f.ID == *id })
	if i < 0 {
		return form.FormField{}, false
	}
	return existing[i], true
}

// requirementInputs converts requirements to field definitions. A matched requirement
// without a name keeps its field's current name.
func requirementInputs(reqs []task.RequirementInput, existing []form.FormField) []form.FieldInput {
	inputs := make([]form.FieldInput, 0, len(reqs))
	for i, r := range reqs {
		in := r.ToFieldInput(i)
		if cur, ok := matchField(existing, r.ID); ok && strings.TrimSpace(r.Name) == "" {
			in.FieldName = cur.FieldName
		}
		inputs = append(inputs, in)
	}
	task.UniqueNames(inputs)
	return inputs
}

func diffRequirements(repos *repository.Repos, formID uint, existing []form.FormField, inputs []form.FieldInput) error {
	kept := make(map[uint]bool, len(inputs))
	for i, in := range inputs {
		if cur, ok := matchField(existing, in.ID); ok && !kept[cur.ID] {
			if err := repos.Form.UpdateFieldColumns(cur.ID, changedColumns(cur, in, i)); err != nil {
				return fmt.Errorf("update field %d: %w", cur.ID, err)
			}
			if optionsChanged(cur, in) {
				if err := repos.Form.ReplaceFieldOptions(cur.ID, form.NewOptions(in)); err != nil {
					return fmt.Errorf("replace options of field %d: %w", cur.ID, err)
				}
			}
			kept[cur.ID] = true
			continue
		}
		field := form.NewField(formID, nil, in, i)
		if err := repos.Form.CreateField(&field); err != nil {
			return fmt.Errorf("create field %s: %w", field.FieldName, err)
		}
	}
	return deactivateMissing(repos, existing, kept)
}

func changedColumns(cur form.FormField, in form.FieldInput, order int) map[string]interface{} {
	cols := map[string]interface{}{}
	if cur.FieldName != in.FieldName {
		cols["field_name"] = in.FieldName
	}
	if cur.FieldLabel != in.FieldLabel {
		cols["field_label"] = in.FieldLabel
	}
	if cur.FieldType != in.FieldType {
		cols["field_type"] = in.FieldType
	}
	if cur.HelpText != in.HelpText {
		cols["help_text"] = in.HelpText
	}
	if cur.IsRequired != in.IsRequired {
		cols["is_required"] = in.IsRequired
	}
	if cur.DisplayOrder != order {
		cols["display_order"] = order
	}
	if !cur.IsActive {
		cols["is_active"] = true
	}
	if in.UploadFolderID != nil && (cur.UploadFolderID == nil || *cur.UploadFolderID != *in.UploadFolderID) {
		cols["upload_folder_id"] = in.UploadFolderID
	}
	return cols
}

func optionsChanged(cur form.FormField, in form.FieldInput) bool {
	var have []string
	for _, o := range cur.Options {
		if o.IsActive && o.OptionType == form.OptionTypeStandard {
			have = append(have, o.OptionValue)
		}
	}
	want := make([]string, 0, len(in.Options))
	for _, o := range in.Options {
		want = append(want, o.Value)
	}
	return !slices.Equal(have, want)
}

package task

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/linskybing/form-platform/internal/domain/form"
)

const TypeFile = "file"

func FieldTypeFor(reqType string) form.FieldType {
	if reqType == TypeFile {
		return form.FieldTypeFileUpload
	}
	return form.FieldType(reqType)
}

func RequirementTypeFor(t form.FieldType) string {
	if t == form.FieldTypeFileUpload {
		return TypeFile
	}
	return string(t)
}

// ToFieldInput converts a requirement at position index into a field definition.
func (r RequirementInput) ToFieldInput(index int) form.FieldInput {
	order := index
	in := form.FieldInput{
		ID:           r.ID,
		FieldName:    r.Name,
		FieldLabel:   r.Label,
		FieldType:    FieldTypeFor(r.Type),
		DisplayOrder: &order,
		IsRequired:   r.Required,
		HelpText:     r.Description,
	}
	if in.FieldName == "" {
		in.FieldName = Slug(r.Label)
	}
	for _, o := range r.Options {
		in.Options = append(in.Options, form.FieldOptionInput{Value: o, Label: o})
	}
	return in
}

// FromField builds the requirement view of a field.
func FromField(f form.FormField) Requirement {
	req := Requirement{
		ID:             f.ID,
		Name:           f.FieldName,
		Label:          f.FieldLabel,
		Type:           RequirementTypeFor(f.FieldType),
		Description:    f.HelpText,
		Required:       f.IsRequired,
		Order:          f.DisplayOrder,
		UploadFolderID: f.UploadFolderID,
	}
	for _, o := range f.Options {
		if o.IsActive && o.OptionType == form.OptionTypeStandard {
			req.Options = append(req.Options, o.OptionValue)
		}
	}
	return req
}

func FromForm(f form.Form) TaskView {
	v := TaskView{
		ID:                       f.ID,
		Title:                    f.Title,
		Description:              f.Description,
		Status:                   f.Status,
		SubmissionDeadline:       f.SubmissionDeadline,
		AllowMultipleSubmissions: f.AllowMultipleSubmissions,
		CreatedBy:                f.CreatedBy,
		CreatedAt:                f.CreatedAt,
		UpdatedAt:                f.UpdatedAt,
		Requirements:             []Requirement{},
	}
	for _, field := range f.Fields {
		if field.IsActive {
			v.Requirements = append(v.Requirements, FromField(field))
		}
	}
	return v
}

// Slug derives a machine field name from a label.
func Slug(label string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore && b.Len() > 0 {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	s := strings.TrimRight(b.String(), "_")
	if s == "" {
		return "requirement"
	}
	return s
}

// UniqueNames suffixes repeated field names in place so each is unique. A suffix never
// reuses a name that appears anywhere in inputs.
func UniqueNames(inputs []form.FieldInput) {
	used := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		used[in.FieldName] = true
	}
	seen := make(map[string]bool, len(inputs))
	next := make(map[string]int, len(inputs))
	for i := range inputs {
		name := inputs[i].FieldName
		if !seen[name] {
			seen[name] = true
			continue
		}
		n := next[name]
		if n < 2 {
			n = 2
		}
		candidate := fmt.Sprintf("%s_%d", name, n)
		for used[candidate] {
			n++
			candidate = fmt.Sprintf("%s_%d", name, n)
		}
		next[name] = n + 1
		used[candidate] = true
		seen[candidate] = true
		inputs[i].FieldName = candidate
	}
}

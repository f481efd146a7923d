package task

import (
	"testing"

	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "project_report_pdf", Slug("  Project Report (PDF) "))
	assert.Equal(t, "requirement", Slug("!!!"))
	assert.Equal(t, "報告", Slug("報告"))
}

func TestUniqueNames(t *testing.T) {
	inputs := []form.FieldInput{{FieldName: "file"}, {FieldName: "file"}, {FieldName: "notes"}, {FieldName: "file"}}
	UniqueNames(inputs)
	assert.Equal(t, "file", inputs[0].FieldName)
	assert.Equal(t, "file_2", inputs[1].FieldName)
	assert.Equal(t, "notes", inputs[2].FieldName)
	assert.Equal(t, "file_3", inputs[3].FieldName)
}

func TestUniqueNames_SkipsTakenSuffix(t *testing.T) {
	inputs := []form.FieldInput{{FieldName: "notes"}, {FieldName: "notes"}, {FieldName: "notes_2"}, {FieldName: "notes"}}
	UniqueNames(inputs)
	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.FieldName)
	}
	assert.Equal(t, []string{"notes", "notes_3", "notes_2", "notes_4"}, names)
}

func TestToFieldInput(t *testing.T) {
	in := RequirementInput{Label: "Final Report", Type: TypeFile, Required: true, Options: []string{"a"}}.ToFieldInput(2)
	assert.Equal(t, "final_report", in.FieldName)
	assert.Equal(t, form.FieldTypeFileUpload, in.FieldType)
	assert.Equal(t, 2, *in.DisplayOrder)
	assert.Len(t, in.Options, 1)
}

func TestFromForm_SkipsInactive(t *testing.T) {
	f := form.Form{ID: 3, Title: "T", Fields: []form.FormField{
		{ID: 1, FieldName: "a", FieldType: form.FieldTypeFileUpload, IsActive: true},
		{ID: 2, FieldName: "b", FieldType: form.FieldTypeText, IsActive: false},
	}}
	v := FromForm(f)
	assert.Len(t, v.Requirements, 1)
	assert.Equal(t, TypeFile, v.Requirements[0].Type)
}

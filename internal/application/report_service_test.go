package application_test

import (
	"testing"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportOverview_GroupsByField(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t,
		form.FieldInput{FieldName: "name", FieldLabel: "Name", FieldType: form.FieldTypeText},
		form.FieldInput{FieldName: "age", FieldLabel: "Age", FieldType: form.FieldTypeNumber},
	)
	nameID, ageID := d.Fields[0].ID, d.Fields[1].ID

	_, err := f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{
		FormID:         d.ID,
		FieldResponses: []form.FieldResponseInput{answer(nameID, "Sam"), answer(ageID, "20")},
	})
	require.NoError(t, err)
	_, err = f.svc.Response.CreateResponse(f.students[1], form.CreateResponseDTO{
		FormID:           d.ID,
		SubmissionStatus: form.SubmissionSubmitted,
		FieldResponses:   []form.FieldResponseInput{answer(nameID, "Sue")},
	})
	require.NoError(t, err)

	out, err := f.svc.Report.Overview(f.manager, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalResponses)
	require.Len(t, out.Fields, 2)

	name := out.Fields[0]
	assert.Equal(t, "name", name.FieldName)
	assert.Equal(t, 2, name.ResponseCount)
	require.Len(t, name.Responses, 2)
	// newest response first
	assert.Equal(t, "Sue", *name.Responses[0].FieldValue)
	assert.Equal(t, "sue@example.com", name.Responses[0].Respondent.Email)
	assert.Equal(t, form.SubmissionSubmitted, name.Responses[0].SubmissionStatus)

	age := out.Fields[1]
	assert.Equal(t, 1, age.ResponseCount)
	assert.Equal(t, "sam", age.Responses[0].Respondent.Name)
}

func TestReportOverview_EmptyFieldsHaveNoNilSlices(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	out, err := f.svc.Report.Overview(f.manager, d.ID)
	require.NoError(t, err)
	require.Len(t, out.Fields, 1)
	assert.NotNil(t, out.Fields[0].Responses)
	assert.Zero(t, out.Fields[0].ResponseCount)
}

func TestReport_RequiresEditAccess(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)

	_, err := f.svc.Report.Overview(f.students[0], d.ID)
	assert.ErrorIs(t, err, application.ErrAccessDenied)
	_, _, err = f.svc.Report.IndividualResponses(f.students[0], d.ID, 1, 20)
	assert.ErrorIs(t, err, application.ErrAccessDenied)
	_, err = f.svc.Report.Overview(f.admin, 777)
	assert.ErrorIs(t, err, application.ErrFormNotFound)
}

func TestReportIndividualResponses_Paged(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	fieldID := d.Fields[0].ID
	for _, s := range f.students {
		_, err := f.svc.Response.CreateResponse(s, form.CreateResponseDTO{
			FormID:         d.ID,
			FieldResponses: []form.FieldResponseInput{answer(fieldID, s.Username)},
		})
		require.NoError(t, err)
	}

	items, total, err := f.svc.Report.IndividualResponses(f.manager, d.ID, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 1)
	assert.Equal(t, "sam", items[0].Respondent.Name)
	require.Len(t, items[0].Answers, 1)
	assert.Equal(t, "q1", items[0].Answers[0].FieldName)
	assert.Equal(t, "sam", *items[0].Answers[0].FieldValue)
}

package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answer(fieldID uint, v string) form.FieldResponseInput {
	return form.FieldResponseInput{FieldID: fieldID, FieldValue: &v}
}

func TestCreateResponse_DraftFormIsRejected(t *testing.T) {
	f := newFixture(t)
	d, err := f.svc.Form.CreateForm(f.manager, form.CreateFormDTO{Title: "Draft"})
	require.NoError(t, err)

	_, err = f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{FormID: d.ID})
	assert.ErrorIs(t, err, application.ErrFormInactive)
	assert.Equal(t, "Form is not active", application.PublicMessage(err))
}

func TestCreateResponse_DuplicateCreatesNoRow(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	student := f.students[0]

	_, err := f.svc.Response.CreateResponse(student, form.CreateResponseDTO{FormID: d.ID})
	require.NoError(t, err)

	_, err = f.svc.Response.CreateResponse(student, form.CreateResponseDTO{FormID: d.ID})
	requireKind(t, err, application.KindValidation)
	assert.ErrorIs(t, err, application.ErrDuplicateSubmission)
	assert.Equal(t, 1, f.store.CountResponses(d.ID))

	// other respondents are unaffected
	_, err = f.svc.Response.CreateResponse(f.students[1], form.CreateResponseDTO{FormID: d.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, f.store.CountResponses(d.ID))
}

func TestCreateResponse_RollsBackWhenAnswersFail(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	f.store.Fail("CreateFieldResponses", errors.New("constraint"))

	_, err := f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{
		FormID:         d.ID,
		FieldResponses: []form.FieldResponseInput{answer(d.Fields[0].ID, "hi")},
	})
	requireKind(t, err, application.KindDependency)
	assert.Zero(t, f.store.CountResponses(d.ID))
}

func TestCreateResponse_SubmitChecksRequiredAndDeadline(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)

	_, err := f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{
		FormID:           d.ID,
		SubmissionStatus: form.SubmissionSubmitted,
	})
	requireKind(t, err, application.KindValidation)
	assert.Contains(t, application.PublicMessage(err), "Missing required fields: q1")

	past := time.Now().Add(-time.Hour)
	_, err = f.svc.Form.UpdateForm(f.manager, d.ID, form.UpdateFormDTO{SubmissionDeadline: &past})
	require.NoError(t, err)
	_, err = f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{
		FormID:           d.ID,
		SubmissionStatus: form.SubmissionSubmitted,
		FieldResponses:   []form.FieldResponseInput{answer(d.Fields[0].ID, "late")},
	})
	assert.ErrorIs(t, err, application.ErrDeadlinePassed)
}

func TestCreateResponse_RespondentOverrideOnlyForReviewers(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	other := f.students[1].UserID

	resp, err := f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{FormID: d.ID, RespondentID: &other})
	require.NoError(t, err)
	assert.Equal(t, f.students[0].UserID, *resp.RespondentID)

	resp, err = f.svc.Response.CreateResponse(f.reviewer, form.CreateResponseDTO{FormID: d.ID, RespondentID: &other})
	require.NoError(t, err)
	assert.Equal(t, other, *resp.RespondentID)
}

func TestUpdateResponse_SubmittedAtStampedOnce(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	student := f.students[0]

	resp, err := f.svc.Response.CreateResponse(student, form.CreateResponseDTO{
		FormID:           d.ID,
		SubmissionStatus: form.SubmissionSubmitted,
		FieldResponses:   []form.FieldResponseInput{answer(d.Fields[0].ID, "yes")},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.SubmittedAt)
	first := *resp.SubmittedAt

	clock := first.Add(time.Hour)
	f.svc.Response.Now = func() time.Time { return clock }
	submitted := form.SubmissionSubmitted
	again, err := f.svc.Response.UpdateResponse(student, resp.ID, form.UpdateResponseDTO{SubmissionStatus: &submitted})
	require.NoError(t, err)
	assert.True(t, again.SubmittedAt.Equal(first))
}

func TestUpdateResponse_ReviewStatusNeedsPrivilege(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	student := f.students[0]
	resp, err := f.svc.Response.CreateResponse(student, form.CreateResponseDTO{FormID: d.ID})
	require.NoError(t, err)

	approved := form.SubmissionApproved
	_, err = f.svc.Response.UpdateResponse(student, resp.ID, form.UpdateResponseDTO{SubmissionStatus: &approved})
	assert.ErrorIs(t, err, application.ErrReviewForbidden)

	notes := "looks good"
	got, err := f.svc.Response.UpdateResponse(f.reviewer, resp.ID, form.UpdateResponseDTO{SubmissionStatus: &approved, ReviewNotes: &notes})
	require.NoError(t, err)
	assert.Equal(t, form.SubmissionApproved, got.SubmissionStatus)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, f.reviewer.UserID, *got.ReviewedBy)
	assert.Equal(t, notes, *got.ReviewNotes)
}

func TestUpdateResponse_ReplacesAnswers(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	student := f.students[0]
	fieldID := d.Fields[0].ID
	resp, err := f.svc.Response.CreateResponse(student, form.CreateResponseDTO{
		FormID:         d.ID,
		FieldResponses: []form.FieldResponseInput{answer(fieldID, "first")},
	})
	require.NoError(t, err)

	answers := []form.FieldResponseInput{answer(fieldID, "second")}
	got, err := f.svc.Response.UpdateResponse(student, resp.ID, form.UpdateResponseDTO{FieldResponses: &answers})
	require.NoError(t, err)
	require.Len(t, got.FieldResponses, 1)
	assert.Equal(t, "second", *got.FieldResponses[0].FieldValue)
}

func TestResponseAccess(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	resp, err := f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{FormID: d.ID})
	require.NoError(t, err)

	_, err = f.svc.Response.GetResponse(f.students[1], resp.ID)
	assert.ErrorIs(t, err, application.ErrAccessDenied)
	_, err = f.svc.Response.DeleteResponse(f.students[1], resp.ID)
	assert.ErrorIs(t, err, application.ErrAccessDenied)

	allowed := map[string]types.RequestContext{
		"respondent": f.students[0],
		"creator":    f.manager,
		"reviewer":   f.reviewer,
		"admin":      f.admin,
	}
	for name, rc := range allowed {
		t.Run(name, func(t *testing.T) {
			got, err := f.svc.Response.GetResponse(rc, resp.ID)
			require.NoError(t, err)
			assert.Equal(t, resp.ID, got.ID)
		})
	}

	_, err = f.svc.Response.GetResponse(f.admin, 9999)
	assert.ErrorIs(t, err, application.ErrResponseNotFound)
}

func TestListResponses_NonReviewersSeeOwn(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	for _, s := range f.students {
		_, err := f.svc.Response.CreateResponse(s, form.CreateResponseDTO{FormID: d.ID})
		require.NoError(t, err)
	}

	own, total, err := f.svc.Response.ListResponses(f.students[1], form.ResponseQuery{FormID: &d.ID, Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, own, 1)
	assert.Equal(t, f.students[1].UserID, *own[0].RespondentID)

	all, total, err := f.svc.Response.ListResponses(f.reviewer, form.ResponseQuery{FormID: &d.ID, Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 2)
	assert.Greater(t, all[0].ID, all[1].ID)
}

func TestDeleteResponse(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	resp, err := f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{FormID: d.ID})
	require.NoError(t, err)

	_, err = f.svc.Response.DeleteResponse(f.students[0], resp.ID)
	require.NoError(t, err)
	assert.Zero(t, f.store.CountResponses(d.ID))

	_, err = f.svc.Response.DeleteResponse(f.students[0], resp.ID)
	assert.ErrorIs(t, err, application.ErrResponseNotFound)
}

package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responsePath(id uint) string {
	return "/form-responses/" + strconv.FormatUint(uint64(id), 10)
}

func answerBody(f form.AccessDetail, status, value string) map[string]interface{} {
	return map[string]interface{}{
		"form_id":           f.ID,
		"submission_status": status,
		"field_responses": []map[string]interface{}{
			{"field_id": f.Fields[0].ID, "field_value": value},
		},
	}
}

func TestResponseLifecycle(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	sam := env.Token(env.User("sam", "student"))
	sue := env.Token(env.User("sue", "student"))
	survey := createSurvey(t, env, manager)

	var draft form.FormResponse
	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", answerBody(survey, "draft", "first"), sam), http.StatusOK, &draft)
	assert.Equal(t, form.SubmissionDraft, draft.SubmissionStatus)
	assert.Nil(t, draft.SubmittedAt)

	res := testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", answerBody(survey, "draft", "again"), sam), http.StatusBadRequest, nil)
	assert.Equal(t, "You have already submitted a response to this form", res.Error)

	testutils.Decode(t, env.Do(http.MethodGet, responsePath(draft.ID), nil, sue), http.StatusForbidden, nil)
	testutils.Decode(t, env.Do(http.MethodGet, responsePath(draft.ID), nil, manager), http.StatusOK, nil)

	submit := map[string]interface{}{"submission_status": "submitted"}
	var submitted form.FormResponse
	testutils.Decode(t, env.Do(http.MethodPut, responsePath(draft.ID), submit, sam), http.StatusOK, &submitted)
	assert.Equal(t, form.SubmissionSubmitted, submitted.SubmissionStatus)
	assert.NotNil(t, submitted.SubmittedAt)

	approve := map[string]interface{}{"submission_status": "approved", "review_notes": "ok"}
	testutils.Decode(t, env.Do(http.MethodPut, responsePath(draft.ID), approve, sam), http.StatusForbidden, nil)
	var reviewed form.FormResponse
	testutils.Decode(t, env.Do(http.MethodPut, responsePath(draft.ID), approve, manager), http.StatusOK, &reviewed)
	assert.Equal(t, form.SubmissionApproved, reviewed.SubmissionStatus)
	assert.NotNil(t, reviewed.ReviewedBy)

	testutils.Decode(t, env.Do(http.MethodDelete, responsePath(draft.ID), nil, sam), http.StatusOK, nil)
	testutils.Decode(t, env.Do(http.MethodGet, responsePath(draft.ID), nil, sam), http.StatusNotFound, nil)
}

func TestCreateResponseValidation(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	sam := env.Token(env.User("sam", "student"))
	survey := createSurvey(t, env, manager)

	missing := map[string]interface{}{"form_id": survey.ID, "submission_status": "submitted"}
	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", missing, sam), http.StatusBadRequest, nil)

	badStatus := answerBody(survey, "approved", "x")
	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", badStatus, sam), http.StatusBadRequest, nil)

	unknown := answerBody(survey, "draft", "x")
	unknown["form_id"] = 9999
	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", unknown, sam), http.StatusNotFound, nil)

	assert.Equal(t, 0, env.Store.CountResponses(survey.ID))
}

func TestListResponsesScopesToCaller(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	reviewer := env.Token(env.User("paula", "project_manager"))
	sam := env.Token(env.User("sam", "student"))
	sue := env.Token(env.User("sue", "student"))
	survey := createSurvey(t, env, manager)

	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", answerBody(survey, "submitted", "a"), sam), http.StatusOK, nil)
	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", answerBody(survey, "submitted", "b"), sue), http.StatusOK, nil)

	path := "/form-responses?form_id=" + strconv.FormatUint(uint64(survey.ID), 10)
	var own []form.FormResponse
	testutils.Decode(t, env.Do(http.MethodGet, path, nil, sam), http.StatusOK, &own)
	require.Len(t, own, 1)

	var all []form.FormResponse
	res := testutils.Decode(t, env.Do(http.MethodGet, path, nil, reviewer), http.StatusOK, &all)
	assert.Len(t, all, 2)
	assert.EqualValues(t, 2, res.Pagination.Total)

	testutils.Decode(t, env.Do(http.MethodGet, "/form-responses?form_id=abc", nil, reviewer), http.StatusBadRequest, nil)
}

package handlers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/report"
	"github.com/linskybing/form-platform/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func surveyBody() map[string]interface{} {
	return map[string]interface{}{
		"title":  "Survey",
		"status": "active",
		"fields": []map[string]interface{}{
			{"field_name": "q1", "field_label": "Q1", "field_type": "text", "is_required": true},
			{
				"field_name":  "color",
				"field_label": "Favourite colour",
				"field_type":  "select",
				"options":     []map[string]interface{}{{"value": "red"}, {"value": "blue"}},
			},
		},
	}
}

func createSurvey(t *testing.T, env *testutils.Env, token string) form.AccessDetail {
	t.Helper()
	var created form.AccessDetail
	testutils.Decode(t, env.Do(http.MethodPost, "/forms", surveyBody(), token), http.StatusOK, &created)
	return created
}

func formPath(id uint, suffix string) string {
	return "/forms/" + strconv.FormatUint(uint64(id), 10) + suffix
}

func TestFormRequiresAuthentication(t *testing.T) {
	env := testutils.NewEnv(t)

	w := env.Do(http.MethodGet, "/forms", nil, "")
	res := testutils.Decode(t, w, http.StatusUnauthorized, nil)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)

	w = env.Do(http.MethodGet, "/forms", nil, "not-a-jwt")
	testutils.Decode(t, w, http.StatusUnauthorized, nil)
}

func TestCreateAndGetForm(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))

	created := createSurvey(t, env, manager)
	assert.Equal(t, "Survey", created.Title)
	assert.Equal(t, form.AccessEdit, created.AccessType)
	require.Len(t, created.Fields, 2)
	require.Len(t, created.Fields[1].Options, 2)

	var got form.AccessDetail
	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, ""), nil, manager), http.StatusOK, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "q1", got.Fields[0].FieldName)
}

func TestCreateMinimalFormAsAdmin(t *testing.T) {
	env := testutils.NewEnv(t)
	admin := env.Token(env.User("ada", "admin"))

	body := map[string]interface{}{
		"title":     "Survey",
		"form_type": "survey",
		"fields":    []map[string]interface{}{{"field_name": "q1", "field_label": "Q1", "field_type": "text"}},
	}
	var created form.AccessDetail
	res := testutils.Decode(t, env.Do(http.MethodPost, "/forms", body, admin), http.StatusOK, &created)
	assert.True(t, res.Success)
	require.NotZero(t, created.ID)
	assert.Equal(t, form.FormStatusDraft, created.Status)

	var got form.AccessDetail
	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, ""), nil, admin), http.StatusOK, &got)
	assert.Equal(t, form.AccessEdit, got.AccessType)
	require.Len(t, got.Fields, 1)
	assert.Equal(t, "q1", got.Fields[0].FieldName)
}

func TestCreateFormRejections(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	student := env.Token(env.User("sam", "student"))

	cases := []struct {
		name   string
		token  string
		body   interface{}
		status int
	}{
		{"student cannot create", student, surveyBody(), http.StatusForbidden},
		{"missing title", manager, map[string]interface{}{"fields": []interface{}{}}, http.StatusBadRequest},
		{"blank title", manager, map[string]interface{}{"title": "   "}, http.StatusBadRequest},
		{"unknown field type", manager, map[string]interface{}{
			"title":  "Bad",
			"fields": []map[string]interface{}{{"field_name": "a", "field_label": "A", "field_type": "hologram"}},
		}, http.StatusBadRequest},
		{"choice without options", manager, map[string]interface{}{
			"title":  "Bad",
			"fields": []map[string]interface{}{{"field_name": "a", "field_label": "A", "field_type": "radio"}},
		}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := testutils.Decode(t, env.Do(http.MethodPost, "/forms", tc.body, tc.token), tc.status, nil)
			assert.False(t, res.Success)
		})
	}
	assert.Equal(t, 0, env.Store.CountForms())
}

func TestFormAccessOverHTTP(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	admin := env.Token(env.User("alice", "admin"))
	student := env.Token(env.User("sam", "student"))
	created := createSurvey(t, env, manager)

	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, ""), nil, student), http.StatusForbidden, nil)
	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, ""), nil, admin), http.StatusOK, nil)
	testutils.Decode(t, env.Do(http.MethodGet, formPath(9999, ""), nil, admin), http.StatusNotFound, nil)

	res := testutils.Decode(t, env.Do(http.MethodGet, "/forms/abc", nil, admin), http.StatusBadRequest, nil)
	assert.Equal(t, "Invalid form id", res.Error)

	var visible []form.AccessDetail
	res = testutils.Decode(t, env.Do(http.MethodGet, "/forms", nil, student), http.StatusOK, &visible)
	assert.Empty(t, visible)
	require.NotNil(t, res.Pagination)
	assert.EqualValues(t, 0, res.Pagination.Total)

	res = testutils.Decode(t, env.Do(http.MethodGet, "/forms?page=1&limit=5", nil, admin), http.StatusOK, &visible)
	assert.Len(t, visible, 1)
	assert.Equal(t, 5, res.Pagination.Limit)
}

func TestUpdateAndDeleteForm(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	student := env.Token(env.User("sam", "student"))
	created := createSurvey(t, env, manager)

	patch := map[string]interface{}{"title": "Renamed"}
	testutils.Decode(t, env.Do(http.MethodPut, formPath(created.ID, ""), patch, student), http.StatusForbidden, nil)

	var updated form.AccessDetail
	testutils.Decode(t, env.Do(http.MethodPut, formPath(created.ID, ""), patch, manager), http.StatusOK, &updated)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Len(t, updated.Fields, 2)

	var msg struct {
		Message string `json:"message"`
	}
	testutils.Decode(t, env.Do(http.MethodDelete, formPath(created.ID, ""), nil, manager), http.StatusOK, &msg)
	assert.Equal(t, "Form deleted", msg.Message)
	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, ""), nil, manager), http.StatusNotFound, nil)
}

func TestOverviewAndIndividualResponsesOverHTTP(t *testing.T) {
	env := testutils.NewEnv(t)
	manager := env.Token(env.User("mike", "manager"))
	student := env.Token(env.User("sam", "student"))
	created := createSurvey(t, env, manager)

	answer := map[string]interface{}{
		"form_id":           created.ID,
		"submission_status": "submitted",
		"field_responses": []map[string]interface{}{
			{"field_id": created.Fields[0].ID, "field_value": "hello"},
		},
	}
	testutils.Decode(t, env.Do(http.MethodPost, "/form-responses", answer, student), http.StatusOK, nil)

	var overview report.Overview
	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, "/overview"), nil, manager), http.StatusOK, &overview)
	assert.EqualValues(t, 1, overview.TotalResponses)
	require.Len(t, overview.Fields, 2)
	assert.Equal(t, 1, overview.Fields[0].ResponseCount)
	assert.Equal(t, 0, overview.Fields[1].ResponseCount)

	var people []report.IndividualResponse
	res := testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, "/responses"), nil, manager), http.StatusOK, &people)
	require.Len(t, people, 1)
	assert.Equal(t, "sam", people[0].Respondent.Name)
	assert.EqualValues(t, 1, res.Pagination.Total)

	testutils.Decode(t, env.Do(http.MethodGet, formPath(created.ID, "/overview"), nil, student), http.StatusForbidden, nil)
}

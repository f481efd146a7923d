//go:build integration

package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/task"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/internal/testutils"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgFixture struct {
	repos    *repository.Repos
	svc      *application.Services
	mailer   *testutils.RecordingMailer
	manager  types.RequestContext
	reviewer types.RequestContext
	students []types.RequestContext
}

func newPGFixture(t *testing.T) *pgFixture {
	gdb := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(gdb)

	roles := map[string]user.Role{}
	for i, name := range []string{user.RoleAdmin, user.RoleManager, user.RoleProjectManager, user.RoleStudent} {
		role := user.Role{Name: name, Rank: i}
		require.NoError(t, repos.User.SaveRole(&role))
		roles[name] = role
	}
	add := func(name, roleName string) types.RequestContext {
		role := roles[roleName]
		u := user.User{Username: name, Email: name + "@example.com", RoleID: &role.ID}
		require.NoError(t, repos.User.SaveUser(&u))
		return asContext(u, role)
	}

	mailer := &testutils.RecordingMailer{}
	f := &pgFixture{
		repos:    repos,
		mailer:   mailer,
		svc:      application.New(repos, application.Deps{Mailer: mailer}),
		manager:  add("mike", user.RoleManager),
		reviewer: add("paula", user.RoleProjectManager),
	}
	add("alice", user.RoleAdmin)
	for _, name := range []string{"sam", "sue"} {
		f.students = append(f.students, add(name, user.RoleStudent))
	}
	return f
}

func TestPostgresFormAndResponses(t *testing.T) {
	f := newPGFixture(t)

	created, err := f.svc.Form.CreateForm(f.manager, form.CreateFormDTO{
		Title:    "Survey",
		Status:   statusPtr(form.FormStatusActive),
		Sections: []form.SectionInput{{Title: "Intro"}},
		Fields: []form.FieldInput{
			{FieldName: "q1", FieldLabel: "Q1", FieldType: form.FieldTypeText, IsRequired: true},
			{FieldName: "pick", FieldLabel: "Pick", FieldType: form.FieldTypeRadio, Options: []form.FieldOptionInput{{Value: "a"}, {Value: "b"}}},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Fields, 2)
	require.Len(t, created.Fields[1].Options, 2)

	grants, err := f.repos.Access.ListGrantsByForm(created.ID)
	require.NoError(t, err)
	assert.Len(t, grants, 2)

	sam := f.students[0]
	answers := []form.FieldResponseInput{{FieldID: created.Fields[0].ID, FieldValue: strPtr("hi")}}
	resp, err := f.svc.Response.CreateResponse(sam, form.CreateResponseDTO{
		FormID:           created.ID,
		SubmissionStatus: form.SubmissionSubmitted,
		FieldResponses:   answers,
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.SubmittedAt)
	require.Len(t, resp.FieldResponses, 1)

	_, err = f.svc.Response.CreateResponse(sam, form.CreateResponseDTO{FormID: created.ID, FieldResponses: answers})
	requireKind(t, err, application.KindValidation)

	list, total, err := f.svc.Response.ListResponses(f.reviewer, form.ResponseQuery{FormID: &created.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, list, 1)

	overview, err := f.svc.Report.Overview(f.manager, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, overview.TotalResponses)

	_, err = f.svc.Form.DeleteForm(f.manager, created.ID)
	require.NoError(t, err)
	_, err = f.repos.Response.GetResponseByID(resp.ID)
	assert.Error(t, err)
}

func TestPostgresTaskAssignmentAndReminders(t *testing.T) {
	f := newPGFixture(t)
	deadline := time.Now().Add(6 * time.Hour)

	created, err := f.svc.Task.CreateTask(context.Background(), f.manager, task.CreateTaskDTO{
		Title:              "Thesis",
		SubmissionDeadline: &deadline,
		Requirements: []task.RequirementInput{
			{Label: "Report", Type: "file", Required: true},
			{Label: "Notes", Type: "text"},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Requirements, 2)

	ids := []uint{f.students[0].UserID, f.students[1].UserID}
	res, err := f.svc.Assignment.AssignUsers(context.Background(), f.manager, created.ID, task.AssignDTO{UserIDs: ids})
	require.NoError(t, err)
	assert.Equal(t, 2, res.AssignedCount)

	assignments, err := f.svc.Assignment.ListAssignments(f.manager, created.ID)
	require.NoError(t, err)
	assert.Len(t, assignments, 2)

	notes := created.Requirements[1].ID
	updated, err := f.svc.Task.UpdateTask(context.Background(), f.manager, created.ID, task.UpdateTaskDTO{
		Requirements: &[]task.RequirementInput{{ID: &notes, Label: "Notes", Type: "textarea"}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Requirements, 1)
	assert.Equal(t, notes, updated.Requirements[0].ID)

	n, err := f.svc.Assignment.SendDeadlineReminders(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = f.svc.Assignment.SendDeadlineReminders(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, f.mailer.Count())
}

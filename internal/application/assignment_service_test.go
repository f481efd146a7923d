package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/linskybing/form-platform/internal/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignUsers_WithoutNotification(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})

	res, err := f.svc.Assignment.AssignUsers(context.Background(), f.manager, v.ID, task.AssignDTO{UserIDs: f.studentIDs()})
	require.NoError(t, err)
	assert.Equal(t, 3, res.AssignedCount)
	assert.Equal(t, 0, res.AlreadyAssignedCount)
	assert.Equal(t, 0, res.NotificationSent)
	assert.ElementsMatch(t, f.studentIDs(), res.AssignedUserIDs)
	assert.Empty(t, f.mailer.sent())
}

func TestAssignUsers_CountsAlreadyAssigned(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	ids := f.studentIDs()
	ctx := context.Background()

	_, err := f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: ids[:2]})
	require.NoError(t, err)

	res, err := f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: ids})
	require.NoError(t, err)
	assert.Equal(t, 1, res.AssignedCount)
	assert.Equal(t, 2, res.AlreadyAssignedCount)
	assert.Equal(t, []uint{ids[2]}, res.AssignedUserIDs)

	userGrants := 0
	for _, g := range f.store.Grants(v.ID) {
		if g.UserID != nil {
			userGrants++
		}
	}
	assert.Equal(t, 3, userGrants)

	_, err = f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: ids})
	assert.ErrorIs(t, err, application.ErrAllAssigned)
}

func TestAssignUsers_InvalidIDs(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})

	_, err := f.svc.Assignment.AssignUsers(context.Background(), f.manager, v.ID, task.AssignDTO{UserIDs: []uint{f.students[0].UserID, 9999}})
	requireKind(t, err, application.KindValidation)
	assert.Equal(t, "Invalid user IDs: 9999", application.PublicMessage(err))
	assert.Len(t, f.store.Grants(v.ID), 2)
}

func TestAssignUsers_OnlyCreatorOrSuper(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	dto := task.AssignDTO{UserIDs: f.studentIDs()[:1]}

	_, err := f.svc.Assignment.AssignUsers(context.Background(), f.students[0], v.ID, dto)
	assert.ErrorIs(t, err, application.ErrAssignForbidden)

	_, err = f.svc.Assignment.AssignUsers(context.Background(), f.admin, v.ID, dto)
	assert.NoError(t, err)
}

func TestAssignUsers_NotFoundForPlainForm(t *testing.T) {
	f := newFixture(t)
	d := f.activeForm(t)
	_, err := f.svc.Assignment.AssignUsers(context.Background(), f.manager, d.ID, task.AssignDTO{UserIDs: f.studentIDs()})
	assert.ErrorIs(t, err, application.ErrTaskNotFound)
}

func TestAssignUsers_SendsNotifications(t *testing.T) {
	f := newFixture(t)
	deadline := time.Date(2030, 6, 1, 17, 0, 0, 0, time.UTC)
	v := f.createTask(t, task.CreateTaskDTO{SubmissionDeadline: &deadline})
	sam := f.students[0]

	res, err := f.svc.Assignment.AssignUsers(context.Background(), f.manager, v.ID, task.AssignDTO{
		UserIDs:          []uint{sam.UserID},
		SendNotification: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.NotificationSent)
	assert.Empty(t, res.NotificationError)

	msgs := f.mailer.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "New task assigned: Thesis", msgs[0].Subject)
	assert.Contains(t, msgs[0].Text, application.DeadlineText(&deadline))
	require.Len(t, msgs[0].Recipients, 1)
	assert.Equal(t, "sam@example.com", msgs[0].Recipients[0].Email)

	stored := f.store.Notifications(sam.UserID)
	require.Len(t, stored, 1)
	assert.True(t, strings.HasSuffix(stored[0].Link, "/tasks/"+itoa(v.ID)))
	require.Len(t, f.publisher.events[sam.UserID], 1)
	assert.Equal(t, notification.EventCreated, f.publisher.events[sam.UserID][0].Type)
}

func TestAssignUsers_EmailFailureIsAWarning(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	f.mailer.err = errors.New("sendgrid unavailable")

	res, err := f.svc.Assignment.AssignUsers(context.Background(), f.manager, v.ID, task.AssignDTO{
		UserIDs:          f.studentIDs(),
		SendNotification: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.AssignedCount)
	assert.Equal(t, 0, res.NotificationSent)
	assert.Equal(t, 3, res.NotificationFailed)
	assert.Contains(t, res.NotificationError, "sendgrid unavailable")
}

func TestUnassignUsers_SecondCallIsNotFound(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	ctx := context.Background()
	ids := f.studentIDs()
	_, err := f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: ids})
	require.NoError(t, err)

	res, err := f.svc.Assignment.UnassignUsers(f.manager, v.ID, task.UnassignDTO{UserIDs: ids[:2]})
	require.NoError(t, err)
	assert.Equal(t, 2, res.UnassignedCount)

	_, err = f.svc.Assignment.UnassignUsers(f.manager, v.ID, task.UnassignDTO{UserIDs: ids[:2]})
	assert.ErrorIs(t, err, application.ErrNoMatchingAssignment)
	requireKind(t, err, application.KindNotFound)
}

func TestNotifyAssigned_UnsubmittedOnly(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{Requirements: []task.RequirementInput{{Label: "Notes", Type: "text"}}})
	ctx := context.Background()
	_, err := f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: f.studentIDs()})
	require.NoError(t, err)

	_, err = f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{
		FormID:           v.ID,
		SubmissionStatus: form.SubmissionSubmitted,
	})
	require.NoError(t, err)
	_, err = f.svc.Response.CreateResponse(f.students[1], form.CreateResponseDTO{FormID: v.ID})
	require.NoError(t, err)

	f.mailer.failFor["sid@example.com"] = true
	res, err := f.svc.Assignment.NotifyAssigned(ctx, f.manager, v.ID, task.NotifyDTO{IncludeUnsubmittedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalRecipients)
	assert.Equal(t, 1, res.SentCount)
	assert.Equal(t, 1, res.FailedCount)
	assert.NotEmpty(t, res.Warning)

	msgs := f.mailer.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Reminder: Thesis", msgs[0].Subject)
}

func TestNotifyAssigned_CustomMessageAndSubset(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	ctx := context.Background()
	ids := f.studentIDs()
	_, err := f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: ids})
	require.NoError(t, err)

	res, err := f.svc.Assignment.NotifyAssigned(ctx, f.manager, v.ID, task.NotifyDTO{
		UserIDs: ids[1:2],
		Subject: strPtr("Heads up"),
		Message: strPtr("Please upload today."),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalRecipients)

	msgs := f.mailer.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Heads up", msgs[0].Subject)
	assert.True(t, strings.HasPrefix(msgs[0].Text, "Please upload today."))
}

func TestNotifyAssigned_NoRecipients(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	res, err := f.svc.Assignment.NotifyAssigned(context.Background(), f.manager, v.ID, task.NotifyDTO{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalRecipients)
	assert.Equal(t, "No recipients matched", res.Warning)
	assert.Empty(t, f.mailer.sent())
}

func TestListAssignments(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{Requirements: []task.RequirementInput{{Label: "Notes", Type: "text"}}})
	ctx := context.Background()
	ids := f.studentIDs()
	_, err := f.svc.Assignment.AssignUsers(ctx, f.manager, v.ID, task.AssignDTO{UserIDs: ids[:2]})
	require.NoError(t, err)
	_, err = f.svc.Response.CreateResponse(f.students[0], form.CreateResponseDTO{FormID: v.ID, SubmissionStatus: form.SubmissionSubmitted})
	require.NoError(t, err)

	list, err := f.svc.Assignment.ListAssignments(f.manager, v.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	byUser := map[uint]task.Assignment{}
	for _, a := range list {
		byUser[a.UserID] = a
	}
	require.NotNil(t, byUser[ids[0]].SubmissionStatus)
	assert.Equal(t, form.SubmissionSubmitted, *byUser[ids[0]].SubmissionStatus)
	assert.Nil(t, byUser[ids[1]].SubmissionStatus)
	assert.Equal(t, "sue", byUser[ids[1]].Username)
	assert.True(t, byUser[ids[1]].IsActive)

	_, err = f.svc.Assignment.ListAssignments(f.students[2], v.ID)
	assert.ErrorIs(t, err, application.ErrAccessDenied)
}

func TestAssignedUserCanOpenTask(t *testing.T) {
	f := newFixture(t)
	v := f.createTask(t, task.CreateTaskDTO{})
	sam := f.students[0]

	_, err := f.svc.Task.GetTask(sam, v.ID)
	assert.ErrorIs(t, err, application.ErrAccessDenied)

	_, err = f.svc.Assignment.AssignUsers(context.Background(), f.manager, v.ID, task.AssignDTO{UserIDs: []uint{sam.UserID}})
	require.NoError(t, err)

	got, err := f.svc.Task.GetTask(sam, v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
}

func TestSendDeadlineReminders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	soon := time.Now().Add(2 * time.Hour)
	later := time.Now().Add(72 * time.Hour)
	due := f.createTask(t, task.CreateTaskDTO{Title: "Due soon", SubmissionDeadline: &soon})
	notYet := f.createTask(t, task.CreateTaskDTO{Title: "Later", SubmissionDeadline: &later})
	for _, id := range []uint{due.ID, notYet.ID} {
		_, err := f.svc.Assignment.AssignUsers(ctx, f.manager, id, task.AssignDTO{UserIDs: f.studentIDs()[:1]})
		require.NoError(t, err)
	}

	n, err := f.svc.Assignment.SendDeadlineReminders(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	msgs := f.mailer.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "Reminder: Due soon", msgs[0].Subject)

	n, err = f.svc.Assignment.SendDeadlineReminders(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, f.mailer.sent(), 1)
}

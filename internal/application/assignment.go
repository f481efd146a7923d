package application

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/task"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/email"
	"github.com/linskybing/form-platform/pkg/types"
)

type AssignmentService struct {
	Repos    *repository.Repos
	Access   *AccessService
	Mailer   email.BatchSender
	Notifier *NotificationService
	Now      func() time.Time
}

func NewAssignmentService(repos *repository.Repos, access *AccessService, mailer email.BatchSender, notifier *NotificationService) *AssignmentService {
	return &AssignmentService{
		Repos:    repos,
		Access:   access,
		Mailer:   mailer,
		Notifier: notifier,
		Now:      time.Now,
	}
}

// loadManagedTask returns the task when rc is its creator or a super role.
func (s *AssignmentService) loadManagedTask(rc types.RequestContext, taskID uint) (form.Form, error) {
	f, err := s.Repos.Form.GetFormByID(taskID)
	if err != nil {
		return form.Form{}, notFoundOr("get task", err, ErrTaskNotFound)
	}
	if f.FormType != form.FormTypeTask {
		return form.Form{}, ErrTaskNotFound
	}
	if f.CreatedBy != rc.UserID && !IsSuper(rc) {
		return form.Form{}, ErrAssignForbidden
	}
	return f, nil
}

// resolveUsers loads users by id and rejects the request when any id is unknown.
func (s *AssignmentService) resolveUsers(ids []uint) ([]user.User, error) {
	ids = dedupe(ids)
	users, err := s.Repos.User.ListUsersByIDs(ids)
	if err != nil {
		return nil, storeError("list users", err)
	}
	found := make(map[uint]bool, len(users))
	for _, u := range users {
		found[u.ID] = true
	}
	var invalid []string
	for _, id := range ids {
		if !found[id] {
			invalid = append(invalid, fmt.Sprint(id))
		}
	}
	if len(invalid) > 0 {
		return nil, validationError("Invalid user IDs: %s", strings.Join(invalid, ", "))
	}
	return users, nil
}

func (s *AssignmentService) AssignUsers(ctx context.Context, rc types.RequestContext, taskID uint, in task.AssignDTO) (task.AssignResult, error) {
	f, err := s.loadManagedTask(rc, taskID)
	if err != nil {
		return task.AssignResult{}, err
	}
	users, err := s.resolveUsers(in.UserIDs)
	if err != nil {
		return task.AssignResult{}, err
	}

	var added []user.User
	now := s.Now()
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		existing, err := tx.Access.ListUserGrants(taskID)
		if err != nil {
			return fmt.Errorf("list assignments: %w", err)
		}
		assigned := make(map[uint]bool, len(existing))
		for _, g := range existing {
			assigned[*g.UserID] = true
		}

		var rows []form.UserFormAccess
		for _, u := range users {
			if !assigned[u.ID] {
				added = append(added, u)
				rows = append(rows, form.NewUserGrantRow(taskID, u.ID, rc.UserID, now))
			}
		}
		if len(rows) == 0 {
			return ErrAllAssigned
		}
		if err := tx.Access.CreateGrants(rows); err != nil {
			return fmt.Errorf("create assignments: %w", err)
		}
		return nil
	})
	if err != nil {
		return task.AssignResult{}, storeError("assign users", err)
	}

	res := task.AssignResult{
		AssignedCount:        len(added),
		AlreadyAssignedCount: len(users) - len(added),
		AssignedUserIDs:      make([]uint, 0, len(added)),
	}
	for _, u := range added {
		res.AssignedUserIDs = append(res.AssignedUserIDs, u.ID)
	}

	if in.SendNotification {
		sent := s.deliver(ctx, f, added, assignmentMessage(f))
		res.NotificationSent = sent.SentCount
		res.NotificationFailed = sent.FailedCount
		res.NotificationError = sent.Warning
	}
	return res, nil
}

func (s *AssignmentService) UnassignUsers(rc types.RequestContext, taskID uint, in task.UnassignDTO) (task.UnassignResult, error) {
	if _, err := s.loadManagedTask(rc, taskID); err != nil {
		return task.UnassignResult{}, err
	}
	users, err := s.resolveUsers(in.UserIDs)
	if err != nil {
		return task.UnassignResult{}, err
	}
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	var removed int64
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		n, err := tx.Access.DeleteUserGrants(taskID, ids)
		if err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}
		if n == 0 {
			return ErrNoMatchingAssignment
		}
		removed = n
		return nil
	})
	if err != nil {
		return task.UnassignResult{}, storeError("unassign users", err)
	}
	return task.UnassignResult{UnassignedCount: int(removed)}, nil
}

// NotifyAssigned messages the task's active assignees, optionally limited to a subset and
// to those who have not completed their response.
func (s *AssignmentService) NotifyAssigned(ctx context.Context, rc types.RequestContext, taskID uint, in task.NotifyDTO) (task.NotifyResult, error) {
	f, err := s.loadManagedTask(rc, taskID)
	if err != nil {
		return task.NotifyResult{}, err
	}
	return s.notifyAssignees(ctx, f, in)
}

func (s *AssignmentService) notifyAssignees(ctx context.Context, f form.Form, in task.NotifyDTO) (task.NotifyResult, error) {
	grants, err := s.Repos.Access.ListUserGrants(f.ID)
	if err != nil {
		return task.NotifyResult{}, storeError("list assignments", err)
	}
	now := s.Now()
	var ids []uint
	for _, g := range grants {
		if !g.Grant().ActiveAt(now) {
			continue
		}
		if len(in.UserIDs) > 0 && !slices.Contains(in.UserIDs, *g.UserID) {
			continue
		}
		ids = append(ids, *g.UserID)
	}
	ids = dedupe(ids)

	if in.IncludeUnsubmittedOnly && len(ids) > 0 {
		statuses, err := s.Repos.Response.LatestStatusByRespondents(f.ID, ids)
		if err != nil {
			return task.NotifyResult{}, storeError("load response statuses", err)
		}
		ids = slices.DeleteFunc(ids, func(id uint) bool {
			st, ok := statuses[id]
			return ok && st.IsCompleted()
		})
	}
	if len(ids) == 0 {
		return task.NotifyResult{Warning: "No recipients matched"}, nil
	}

	users, err := s.Repos.User.ListUsersByIDs(ids)
	if err != nil {
		return task.NotifyResult{}, storeError("list users", err)
	}
	msg := reminderMessage(f)
	if in.Subject != nil && strings.TrimSpace(*in.Subject) != "" {
		msg.Subject = *in.Subject
	}
	if in.Message != nil && strings.TrimSpace(*in.Message) != "" {
		msg.Text = *in.Message + "\n\n" + taskLink(f.ID)
	}
	return s.deliver(ctx, f, users, msg), nil
}

// deliver emails users and records in-app notifications. Failures never fail the caller.
func (s *AssignmentService) deliver(ctx context.Context, f form.Form, users []user.User, msg email.Message) task.NotifyResult {
	res := task.NotifyResult{TotalRecipients: len(users)}
	if len(users) == 0 {
		return res
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
		msg.Recipients = append(msg.Recipients, email.Recipient{Email: u.Email, Name: u.DisplayName()})
	}
	formID := f.ID
	s.Notifier.notifyQuietly(ids, &formID, msg.Subject, msg.Text, taskLink(f.ID))

	if s.Mailer == nil {
		res.FailedCount = len(users)
		res.Warning = "Email delivery is not configured"
		return res
	}
	out, err := s.Mailer.SendBatch(ctx, msg)
	if err != nil {
		log.Printf("[Assignment] email delivery for task %d failed: %v", f.ID, err)
		res.FailedCount = len(users)
		res.Warning = "Failed to send notifications: " + err.Error()
		return res
	}
	res.SentCount = out.Sent
	res.FailedCount = out.Failed
	if out.Failed > 0 {
		log.Printf("[Assignment] %d of %d emails for task %d failed: %v", out.Failed, len(users), f.ID, out.Failures)
		res.Warning = fmt.Sprintf("%d notification(s) could not be delivered", out.Failed)
	}
	return res
}

// ListAssignments returns the task's assignees with their latest response status.
func (s *AssignmentService) ListAssignments(rc types.RequestContext, taskID uint) ([]task.Assignment, error) {
	f, _, err := s.Access.Require(rc, taskID, form.AccessEdit)
	if err != nil {
		return nil, asTaskError(err)
	}
	if f.FormType != form.FormTypeTask {
		return nil, ErrTaskNotFound
	}

	grants, err := s.Repos.Access.ListUserGrants(taskID)
	if err != nil {
		return nil, storeError("list assignments", err)
	}
	ids := make([]uint, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, *g.UserID)
	}
	users, err := s.Repos.User.ListUsersByIDs(ids)
	if err != nil {
		return nil, storeError("list users", err)
	}
	byID := make(map[uint]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	statuses, err := s.Repos.Response.LatestStatusByRespondents(taskID, ids)
	if err != nil {
		return nil, storeError("load response statuses", err)
	}

	now := s.Now()
	out := make([]task.Assignment, 0, len(grants))
	for _, g := range grants {
		u := byID[*g.UserID]
		a := task.Assignment{
			UserID:     *g.UserID,
			Username:   u.Username,
			FullName:   u.FullName,
			Email:      u.Email,
			AssignedAt: g.GrantedAt,
			IsActive:   g.Grant().ActiveAt(now),
		}
		if st, ok := statuses[*g.UserID]; ok {
			a.SubmissionStatus = &st
		}
		out = append(out, a)
	}
	return out, nil
}

// SendDeadlineReminders notifies unsubmitted assignees of tasks due within window and
// marks each task so it is reminded once.
func (s *AssignmentService) SendDeadlineReminders(ctx context.Context, window time.Duration) (int, error) {
	now := s.Now()
	tasks, err := s.Repos.Form.ListTasksDueBetween(now, now.Add(window))
	if err != nil {
		return 0, storeError("list due tasks", err)
	}
	reminded := 0
	for _, f := range tasks {
		if ctx.Err() != nil {
			return reminded, ctx.Err()
		}
		res, err := s.notifyAssignees(ctx, f, task.NotifyDTO{IncludeUnsubmittedOnly: true})
		if err != nil {
			log.Printf("[Reminder] task %d: %v", f.ID, err)
			continue
		}
		if err := s.Repos.Form.MarkReminderSent(f.ID, now); err != nil {
			log.Printf("[Reminder] mark task %d: %v", f.ID, err)
			continue
		}
		log.Printf("[Reminder] task %d: %d sent, %d failed", f.ID, res.SentCount, res.FailedCount)
		reminded++
	}
	return reminded, nil
}

func assignmentMessage(f form.Form) email.Message {
	return email.Message{
		Subject: "New task assigned: " + f.Title,
		Text:    taskBody("You have been assigned a new task.", f),
	}
}

func reminderMessage(f form.Form) email.Message {
	return email.Message{
		Subject: "Reminder: " + f.Title,
		Text:    taskBody("This is a reminder about your task.", f),
	}
}

func taskBody(intro string, f form.Form) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	b.WriteString(f.Title)
	b.WriteString("\n")
	if f.Description != "" {
		b.WriteString(f.Description)
		b.WriteString("\n")
	}
	b.WriteString(DeadlineText(f.SubmissionDeadline))
	b.WriteString("\n\n")
	b.WriteString(taskLink(f.ID))
	return b.String()
}

func DeadlineText(deadline *time.Time) string {
	if deadline == nil {
		return "No deadline"
	}
	return "Deadline: " + deadline.UTC().Format(time.RFC1123)
}

func taskLink(id uint) string {
	return fmt.Sprintf("%s/tasks/%d", config.FrontendBaseURL, id)
}

func dedupe(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

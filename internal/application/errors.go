package application

import (
	"errors"
	"fmt"
	"log"

	"github.com/linskybing/form-platform/internal/domain/form"
	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindForbidden
	KindUnauthenticated
	KindDependency
)

// AppError carries a client-safe message and the category handlers map to a status code.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

var (
	ErrFormNotFound         = &AppError{Kind: KindNotFound, Message: "Form not found"}
	ErrTaskNotFound         = &AppError{Kind: KindNotFound, Message: "Task not found"}
	ErrResponseNotFound     = &AppError{Kind: KindNotFound, Message: "Response not found"}
	ErrNotificationNotFound = &AppError{Kind: KindNotFound, Message: "Notification not found"}
	ErrNoMatchingAssignment = &AppError{Kind: KindNotFound, Message: "No matching assignments found"}

	ErrFormInactive        = &AppError{Kind: KindValidation, Message: "Form is not active"}
	ErrDuplicateSubmission = &AppError{Kind: KindValidation, Message: "You have already submitted a response to this form"}
	ErrDeadlinePassed      = &AppError{Kind: KindValidation, Message: "Submission deadline has passed"}
	ErrAllAssigned         = &AppError{Kind: KindValidation, Message: "All users are already assigned to this task"}
	ErrTitleRequired       = &AppError{Kind: KindValidation, Message: "Title is required"}

	ErrAccessDenied    = &AppError{Kind: KindForbidden, Message: "Access denied"}
	ErrCreateForbidden = &AppError{Kind: KindForbidden, Message: "Only admin, root or manager can create forms"}
	ErrReviewForbidden = &AppError{Kind: KindForbidden, Message: "Only the form creator or a reviewer can set a review status"}
	ErrAssignForbidden = &AppError{Kind: KindForbidden, Message: "Only the task creator or an administrator can manage assignments"}

	ErrUnauthenticated = &AppError{Kind: KindUnauthenticated, Message: "Authentication required"}
)

func validationError(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// storeError logs the underlying failure and hides it behind a generic message.
func storeError(op string, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		return &AppError{Kind: KindValidation, Message: vErr.Message}
	}
	log.Printf("[Store] %s: %v", op, err)
	return &AppError{Kind: KindDependency, Message: "Internal server error", Err: fmt.Errorf("%s: %w", op, err)}
}

// notFoundOr maps gorm.ErrRecordNotFound to notFound and anything else to a store error.
func notFoundOr(op string, err error, notFound *AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return storeError(op, err)
}

// KindOf reports the category of err; unknown errors are dependency failures.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		return KindValidation
	}
	return KindDependency
}

// PublicMessage is the text safe to return to clients.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	return "Internal server error"
}

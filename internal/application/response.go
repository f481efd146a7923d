package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/linskybing/form-platform/pkg/utils"
)

type ResponseService struct {
	Repos  *repository.Repos
	Access *AccessService
	Now    func() time.Time
}

func NewResponseService(repos *repository.Repos, access *AccessService) *ResponseService {
	return &ResponseService{
		Repos:  repos,
		Access: access,
		Now:    time.Now,
	}
}

// IsReviewer reports whether rc may see and manage every response.
func IsReviewer(rc types.RequestContext) bool {
	return rc.HasRole(config.ResponseReviewerRoles...)
}

func toFieldResponses(in []form.FieldResponseInput) []form.FormFieldResponse {
	out := make([]form.FormFieldResponse, 0, len(in))
	for _, a := range in {
		out = append(out, form.FormFieldResponse{
			FieldID:     a.FieldID,
			FieldValue:  a.FieldValue,
			FieldValues: a.FieldValues,
		})
	}
	return out
}

func toAnswerInputs(rows []form.FormFieldResponse) []form.FieldResponseInput {
	out := make([]form.FieldResponseInput, 0, len(rows))
	for _, r := range rows {
		out = append(out, form.FieldResponseInput{FieldID: r.FieldID, FieldValue: r.FieldValue, FieldValues: r.FieldValues})
	}
	return out
}

func deadlinePassed(f form.Form, now time.Time) bool {
	return f.SubmissionDeadline != nil && now.After(*f.SubmissionDeadline)
}

func (s *ResponseService) CreateResponse(rc types.RequestContext, in form.CreateResponseDTO) (form.FormResponse, error) {
	def, err := s.Repos.Form.GetFormWithDefinition(in.FormID)
	if err != nil {
		return form.FormResponse{}, notFoundOr("get form", err, ErrFormNotFound)
	}
	if def.Status != form.FormStatusActive {
		return form.FormResponse{}, ErrFormInactive
	}

	status := in.SubmissionStatus
	if status == "" {
		status = form.SubmissionDraft
	}
	if status != form.SubmissionDraft && status != form.SubmissionSubmitted {
		return form.FormResponse{}, validationError("submission_status must be draft or submitted")
	}
	now := s.Now()
	submitting := status == form.SubmissionSubmitted
	if submitting && deadlinePassed(def, now) {
		return form.FormResponse{}, ErrDeadlinePassed
	}
	if err := form.ValidateAnswers(def.Fields, in.FieldResponses, submitting); err != nil {
		return form.FormResponse{}, definitionError(err)
	}

	respondentID := rc.UserID
	respondentType := form.RespondentTypeUser
	if IsReviewer(rc) {
		if in.RespondentID != nil {
			respondentID = *in.RespondentID
		}
		if in.RespondentType != "" {
			respondentType = in.RespondentType
		}
	}

	resp := form.FormResponse{
		FormID:         def.ID,
		RespondentID:   &respondentID,
		RespondentType: respondentType,
		Metadata:       in.Metadata,
		FieldResponses: toFieldResponses(in.FieldResponses),
	}
	resp.ApplyStatus(status, rc.UserID, now)

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		locked, err := tx.Form.GetFormForUpdate(def.ID)
		if err != nil {
			return fmt.Errorf("lock form: %w", err)
		}
		if !locked.AllowMultipleSubmissions {
			exists, err := tx.Response.ExistsForRespondent(def.ID, respondentID, respondentType)
			if err != nil {
				return fmt.Errorf("check existing response: %w", err)
			}
			if exists {
				return ErrDuplicateSubmission
			}
		}
		if err := tx.Response.CreateResponse(&resp); err != nil {
			return fmt.Errorf("create response: %w", err)
		}
		return nil
	})
	if err != nil {
		return form.FormResponse{}, storeError("create response", err)
	}
	return s.load(resp.ID)
}

// authorize loads the response and its form and checks rc may manage it. privileged is
// true for the form creator and reviewer roles.
func (s *ResponseService) authorize(rc types.RequestContext, id uint) (resp form.FormResponse, f form.Form, privileged bool, err error) {
	resp, err = s.Repos.Response.GetResponseByID(id)
	if err != nil {
		return resp, f, false, notFoundOr("get response", err, ErrResponseNotFound)
	}
	f, err = s.Repos.Form.GetFormByID(resp.FormID)
	if err != nil {
		return resp, f, false, notFoundOr("get form", err, ErrFormNotFound)
	}
	privileged = f.CreatedBy == rc.UserID || IsReviewer(rc)
	own := resp.RespondentID != nil && *resp.RespondentID == rc.UserID
	if !privileged && !own {
		return resp, f, false, ErrAccessDenied
	}
	return resp, f, privileged, nil
}

func (s *ResponseService) GetResponse(rc types.RequestContext, id uint) (form.FormResponse, error) {
	resp, f, _, err := s.authorize(rc, id)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, ErrAccessDenied) {
		return form.FormResponse{}, err
	}
	// editors of the form may read its responses
	access, evalErr := s.Access.Evaluate(rc, &f)
	if evalErr != nil {
		return form.FormResponse{}, evalErr
	}
	if access != form.AccessEdit {
		return form.FormResponse{}, ErrAccessDenied
	}
	return resp, nil
}

func (s *ResponseService) UpdateResponse(rc types.RequestContext, id uint, in form.UpdateResponseDTO) (form.FormResponse, error) {
	resp, f, privileged, err := s.authorize(rc, id)
	if err != nil {
		return form.FormResponse{}, err
	}
	now := s.Now()

	next := resp.SubmissionStatus
	if in.SubmissionStatus != nil {
		next = *in.SubmissionStatus
		if !next.Valid() {
			return form.FormResponse{}, validationError("invalid submission_status %q", next)
		}
		if next.IsReview() && !privileged {
			return form.FormResponse{}, ErrReviewForbidden
		}
	}

	submitting := next == form.SubmissionSubmitted && resp.SubmissionStatus != form.SubmissionSubmitted
	if in.FieldResponses != nil || submitting {
		if submitting && !privileged && deadlinePassed(f, now) {
			return form.FormResponse{}, ErrDeadlinePassed
		}
		def, err := s.Repos.Form.GetFormWithDefinition(f.ID)
		if err != nil {
			return form.FormResponse{}, notFoundOr("get form", err, ErrFormNotFound)
		}
		answers := toAnswerInputs(resp.FieldResponses)
		if in.FieldResponses != nil {
			answers = *in.FieldResponses
		}
		if err := form.ValidateAnswers(def.Fields, answers, submitting); err != nil {
			return form.FormResponse{}, definitionError(err)
		}
	}

	if in.SubmissionStatus != nil {
		resp.ApplyStatus(next, rc.UserID, now)
	}
	if in.ReviewNotes != nil {
		resp.ReviewNotes = in.ReviewNotes
	}
	if len(in.Metadata) > 0 {
		resp.Metadata = in.Metadata
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		row := resp
		row.FieldResponses = nil
		if err := tx.Response.UpdateResponse(&row); err != nil {
			return fmt.Errorf("update response: %w", err)
		}
		if in.FieldResponses == nil {
			return nil
		}
		if err := tx.Response.ReplaceFieldResponses(resp.ID, toFieldResponses(*in.FieldResponses)); err != nil {
			return fmt.Errorf("replace field responses: %w", err)
		}
		return nil
	})
	if err != nil {
		return form.FormResponse{}, storeError("update response", err)
	}
	return s.load(resp.ID)
}

func (s *ResponseService) DeleteResponse(rc types.RequestContext, id uint) (form.FormResponse, error) {
	resp, _, _, err := s.authorize(rc, id)
	if err != nil {
		return form.FormResponse{}, err
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		return tx.Response.DeleteResponse(id)
	})
	if err != nil {
		return form.FormResponse{}, storeError("delete response", err)
	}
	return resp, nil
}

// ListResponses pages responses newest first. Non-reviewers only see their own.
func (s *ResponseService) ListResponses(rc types.RequestContext, q form.ResponseQuery) ([]form.FormResponse, int64, error) {
	filter := repository.ResponseFilter{
		FormID:           q.FormID,
		RespondentID:     q.RespondentID,
		RespondentType:   q.RespondentType,
		SubmissionStatus: q.SubmissionStatus,
		Offset:           utils.Offset(q.Page, q.Limit),
		Limit:            q.Limit,
	}
	if !IsReviewer(rc) {
		self := rc.UserID
		filter.RespondentID = &self
	}
	responses, total, err := s.Repos.Response.ListResponses(filter)
	if err != nil {
		return nil, 0, storeError("list responses", err)
	}
	return responses, total, nil
}

func (s *ResponseService) load(id uint) (form.FormResponse, error) {
	resp, err := s.Repos.Response.GetResponseByID(id)
	if err != nil {
		return form.FormResponse{}, notFoundOr("get response", err, ErrResponseNotFound)
	}
	return resp, nil
}

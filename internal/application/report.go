package application

import (
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/domain/report"
	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/linskybing/form-platform/pkg/utils"
)

type ReportService struct {
	Repos  *repository.Repos
	Access *AccessService
}

func NewReportService(repos *repository.Repos, access *AccessService) *ReportService {
	return &ReportService{
		Repos:  repos,
		Access: access,
	}
}

// Overview groups every answer to the form's active fields by field.
func (s *ReportService) Overview(rc types.RequestContext, formID uint) (report.Overview, error) {
	if _, _, err := s.Access.Require(rc, formID, form.AccessEdit); err != nil {
		return report.Overview{}, err
	}
	def, err := s.Repos.Form.GetFormWithDefinition(formID)
	if err != nil {
		return report.Overview{}, notFoundOr("get form", err, ErrFormNotFound)
	}
	responses, total, err := s.Repos.Response.ListResponses(repository.ResponseFilter{FormID: &formID})
	if err != nil {
		return report.Overview{}, storeError("list responses", err)
	}
	people, err := s.respondents(responses)
	if err != nil {
		return report.Overview{}, err
	}

	byField := make(map[uint][]report.FieldAnswer, len(def.Fields))
	for _, resp := range responses {
		who := respondentOf(resp, people)
		for _, a := range resp.FieldResponses {
			byField[a.FieldID] = append(byField[a.FieldID], report.FieldAnswer{
				ResponseID:       resp.ID,
				Respondent:       who,
				FieldValue:       a.FieldValue,
				FieldValues:      a.FieldValues,
				SubmissionStatus: resp.SubmissionStatus,
				CreatedAt:        a.CreatedAt,
			})
		}
	}

	out := report.Overview{
		FormID:         def.ID,
		Title:          def.Title,
		TotalResponses: int(total),
		Fields:         make([]report.FieldSummary, 0, len(def.Fields)),
	}
	for _, f := range def.Fields {
		answers := byField[f.ID]
		if answers == nil {
			answers = []report.FieldAnswer{}
		}
		out.Fields = append(out.Fields, report.FieldSummary{
			FieldID:       f.ID,
			FieldName:     f.FieldName,
			FieldLabel:    f.FieldLabel,
			FieldType:     f.FieldType,
			ResponseCount: len(answers),
			Responses:     answers,
		})
	}
	return out, nil
}

// IndividualResponses pages the form's responses newest first, each with its answers.
func (s *ReportService) IndividualResponses(rc types.RequestContext, formID uint, page, limit int) ([]report.IndividualResponse, int64, error) {
	if _, _, err := s.Access.Require(rc, formID, form.AccessEdit); err != nil {
		return nil, 0, err
	}
	fields, err := s.Repos.Form.ListFieldsByFormID(formID)
	if err != nil {
		return nil, 0, storeError("list fields", err)
	}
	fieldByID := make(map[uint]form.FormField, len(fields))
	for _, f := range fields {
		fieldByID[f.ID] = f
	}

	responses, total, err := s.Repos.Response.ListResponses(repository.ResponseFilter{
		FormID: &formID,
		Offset: utils.Offset(page, limit),
		Limit:  limit,
	})
	if err != nil {
		return nil, 0, storeError("list responses", err)
	}
	people, err := s.respondents(responses)
	if err != nil {
		return nil, 0, err
	}

	out := make([]report.IndividualResponse, 0, len(responses))
	for _, resp := range responses {
		item := report.IndividualResponse{
			ResponseID:       resp.ID,
			Respondent:       respondentOf(resp, people),
			SubmissionStatus: resp.SubmissionStatus,
			SubmittedAt:      resp.SubmittedAt,
			CreatedAt:        resp.CreatedAt,
			Answers:          make([]report.Answer, 0, len(resp.FieldResponses)),
		}
		for _, a := range resp.FieldResponses {
			f := fieldByID[a.FieldID]
			item.Answers = append(item.Answers, report.Answer{
				FieldID:     a.FieldID,
				FieldName:   f.FieldName,
				FieldLabel:  f.FieldLabel,
				FieldType:   f.FieldType,
				FieldValue:  a.FieldValue,
				FieldValues: a.FieldValues,
			})
		}
		out = append(out, item)
	}
	return out, total, nil
}

func (s *ReportService) respondents(responses []form.FormResponse) (map[uint]user.User, error) {
	var ids []uint
	for _, r := range responses {
		if r.RespondentID != nil && r.RespondentType == form.RespondentTypeUser {
			ids = append(ids, *r.RespondentID)
		}
	}
	users, err := s.Repos.User.ListUsersByIDs(dedupe(ids))
	if err != nil {
		return nil, storeError("list respondents", err)
	}
	out := make(map[uint]user.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func respondentOf(resp form.FormResponse, people map[uint]user.User) report.Respondent {
	who := report.Respondent{ID: resp.RespondentID, Type: resp.RespondentType}
	if resp.RespondentID != nil {
		if u, ok := people[*resp.RespondentID]; ok {
			who.Name = u.DisplayName()
			who.Email = u.Email
		}
	}
	return who
}

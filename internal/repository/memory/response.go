package memory

import (
	"slices"

	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"gorm.io/gorm"
)

type responseRepo struct{ s *Store }

// answersOf must be called with s.mu held.
func (s *Store) answersOf(responseID uint) []form.FormFieldResponse {
	var out []form.FormFieldResponse
	for _, a := range s.t.answers {
		if a.ResponseID == responseID {
			out = append(out, a)
		}
	}
	sortByID(out, func(a form.FormFieldResponse) uint { return a.ID })
	return out
}

func (s *Store) insertAnswers(responseID uint, items []form.FormFieldResponse) {
	for i := range items {
		items[i].ID = s.nextID()
		items[i].ResponseID = responseID
		items[i].CreatedAt, items[i].UpdatedAt = s.now(), s.now()
		s.t.answers[items[i].ID] = items[i]
	}
}

func (s *Store) deleteAnswers(responseID uint) {
	for id, a := range s.t.answers {
		if a.ResponseID == responseID {
			delete(s.t.answers, id)
		}
	}
}

func (r *responseRepo) CreateResponse(resp *form.FormResponse) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateResponse"); err != nil {
		return err
	}
	resp.ID = s.nextID()
	resp.CreatedAt, resp.UpdatedAt = s.now(), s.now()
	row := *resp
	row.FieldResponses = nil
	s.t.responses[resp.ID] = row
	// The row is visible before the answers so a failing insert exercises rollback.
	if err := s.failure("CreateFieldResponses"); err != nil {
		return err
	}
	s.insertAnswers(resp.ID, resp.FieldResponses)
	return nil
}

func (r *responseRepo) GetResponseByID(id uint) (form.FormResponse, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("GetResponseByID"); err != nil {
		return form.FormResponse{}, err
	}
	resp, ok := s.t.responses[id]
	if !ok {
		return form.FormResponse{}, notFound("form_response", id)
	}
	resp.FieldResponses = s.answersOf(id)
	return resp, nil
}

func (r *responseRepo) ExistsForRespondent(formID, respondentID uint, respondentType string) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, resp := range s.t.responses {
		if resp.FormID == formID && resp.RespondentID != nil && *resp.RespondentID == respondentID &&
			resp.RespondentType == respondentType {
			return true, nil
		}
	}
	return false, nil
}

func (r *responseRepo) UpdateResponse(resp *form.FormResponse) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateResponse"); err != nil {
		return err
	}
	if _, ok := s.t.responses[resp.ID]; !ok {
		return notFound("form_response", resp.ID)
	}
	resp.UpdatedAt = s.now()
	row := *resp
	row.FieldResponses = nil
	s.t.responses[resp.ID] = row
	return nil
}

func (r *responseRepo) ReplaceFieldResponses(responseID uint, items []form.FormFieldResponse) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ReplaceFieldResponses"); err != nil {
		return err
	}
	s.deleteAnswers(responseID)
	s.insertAnswers(responseID, items)
	return nil
}

func (r *responseRepo) DeleteResponse(id uint) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteResponse"); err != nil {
		return err
	}
	s.deleteAnswers(id)
	delete(s.t.responses, id)
	return nil
}

func (r *responseRepo) ListResponses(filter repository.ResponseFilter) ([]form.FormResponse, int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ListResponses"); err != nil {
		return nil, 0, err
	}
	var out []form.FormResponse
	for _, resp := range s.t.responses {
		if filter.FormID != nil && resp.FormID != *filter.FormID {
			continue
		}
		if filter.RespondentID != nil && (resp.RespondentID == nil || *resp.RespondentID != *filter.RespondentID) {
			continue
		}
		if filter.RespondentType != "" && resp.RespondentType != filter.RespondentType {
			continue
		}
		if filter.SubmissionStatus != "" && string(resp.SubmissionStatus) != filter.SubmissionStatus {
			continue
		}
		resp.FieldResponses = s.answersOf(resp.ID)
		out = append(out, resp)
	}
	slices.SortFunc(out, func(a, b form.FormResponse) int { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) })
	return page(out, filter.Offset, filter.Limit), int64(len(out)), nil
}

func (r *responseRepo) LatestStatusByRespondents(formID uint, userIDs []uint) (map[uint]form.SubmissionStatus, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []form.FormResponse
	for _, resp := range s.t.responses {
		if resp.FormID == formID && resp.RespondentType == form.RespondentTypeUser &&
			resp.RespondentID != nil && slices.Contains(userIDs, *resp.RespondentID) {
			rows = append(rows, resp)
		}
	}
	// oldest first so the newest wins
	slices.SortFunc(rows, func(a, b form.FormResponse) int { return newestFirst(b.CreatedAt, a.CreatedAt, b.ID, a.ID) })
	out := make(map[uint]form.SubmissionStatus, len(userIDs))
	for _, row := range rows {
		out[*row.RespondentID] = row.SubmissionStatus
	}
	return out, nil
}

func (r *responseRepo) WithTx(*gorm.DB) repository.ResponseRepo { return r }

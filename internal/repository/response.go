package repository

import (
	"github.com/linskybing/form-platform/internal/domain/form"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseFilter struct {
	FormID           *uint
	RespondentID     *uint
	RespondentType   string
	SubmissionStatus string
	Offset           int
	Limit            int
}

type ResponseRepo interface {
	CreateResponse(resp *form.FormResponse) error
	GetResponseByID(id uint) (form.FormResponse, error)
	ExistsForRespondent(formID, respondentID uint, respondentType string) (bool, error)
	UpdateResponse(resp *form.FormResponse) error
	ReplaceFieldResponses(responseID uint, items []form.FormFieldResponse) error
	DeleteResponse(id uint) error
	ListResponses(filter ResponseFilter) ([]form.FormResponse, int64, error)
	LatestStatusByRespondents(formID uint, userIDs []uint) (map[uint]form.SubmissionStatus, error)
	WithTx(tx *gorm.DB) ResponseRepo
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{
		db: db,
	}
}

// CreateResponse inserts the response and its FieldResponses.
func (r *DBResponseRepo) CreateResponse(resp *form.FormResponse) error {
	return r.db.Create(resp).Error
}

func (r *DBResponseRepo) GetResponseByID(id uint) (form.FormResponse, error) {
	var resp form.FormResponse
	err := r.db.Preload("FieldResponses").First(&resp, id).Error
	return resp, err
}

func (r *DBResponseRepo) ExistsForRespondent(formID, respondentID uint, respondentType string) (bool, error) {
	var count int64
	err := r.db.Model(&form.FormResponse{}).
		Where("form_id = ? AND respondent_id = ? AND respondent_type = ?", formID, respondentID, respondentType).
		Count(&count).Error
	return count > 0, err
}

func (r *DBResponseRepo) UpdateResponse(resp *form.FormResponse) error {
	return r.db.Omit(clause.Associations).Save(resp).Error
}

func (r *DBResponseRepo) ReplaceFieldResponses(responseID uint, items []form.FormFieldResponse) error {
	if err := r.db.Where("response_id = ?", responseID).Delete(&form.FormFieldResponse{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].ResponseID = responseID
	}
	return r.db.Create(&items).Error
}

func (r *DBResponseRepo) DeleteResponse(id uint) error {
	if err := r.db.Where("response_id = ?", id).Delete(&form.FormFieldResponse{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&form.FormResponse{}, id).Error
}

// ListResponses returns matching responses newest first with their field answers.
// A non-positive Limit returns every match.
func (r *DBResponseRepo) ListResponses(filter ResponseFilter) ([]form.FormResponse, int64, error) {
	var responses []form.FormResponse
	var total int64

	query := r.db.Model(&form.FormResponse{})
	if filter.FormID != nil {
		query = query.Where("form_id = ?", *filter.FormID)
	}
	if filter.RespondentID != nil {
		query = query.Where("respondent_id = ?", *filter.RespondentID)
	}
	if filter.RespondentType != "" {
		query = query.Where("respondent_type = ?", filter.RespondentType)
	}
	if filter.SubmissionStatus != "" {
		query = query.Where("submission_status = ?", filter.SubmissionStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	err := query.Preload("FieldResponses").Find(&responses).Error
	return responses, total, err
}

// LatestStatusByRespondents maps each user to the status of their newest response.
func (r *DBResponseRepo) LatestStatusByRespondents(formID uint, userIDs []uint) (map[uint]form.SubmissionStatus, error) {
	out := make(map[uint]form.SubmissionStatus, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []form.FormResponse
	err := r.db.
		Select("respondent_id", "submission_status", "created_at").
		Where("form_id = ? AND respondent_type = ? AND respondent_id IN ?", formID, form.RespondentTypeUser, userIDs).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.RespondentID != nil {
			out[*row.RespondentID] = row.SubmissionStatus
		}
	}
	return out, nil
}

func (r *DBResponseRepo) WithTx(tx *gorm.DB) ResponseRepo {
	if tx == nil {
		return r
	}
	return &DBResponseRepo{
		db: tx,
	}
}

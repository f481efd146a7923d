package repository

import (
	"time"

	"github.com/linskybing/form-platform/internal/domain/form"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormFilter struct {
	// Restrict limits results to IDs; an empty IDs list then matches nothing.
	Restrict bool
	IDs      []uint
	FormType string
	Status   string
	Search   string
	Offset   int
	Limit    int
}

type FormRepo interface {
	CreateForm(f *form.Form) error
	CreateSection(s *form.FormSection) error
	CreateField(f *form.FormField) error
	GetFormByID(id uint) (form.Form, error)
	GetFormForUpdate(id uint) (form.Form, error)
	GetFormWithDefinition(id uint) (form.Form, error)
	ListForms(filter FormFilter) ([]form.Form, int64, error)
	ListFormIDsByCreator(userID uint) ([]uint, error)
	UpdateForm(f *form.Form) error
	ListFieldsByFormID(formID uint) ([]form.FormField, error)
	SaveField(f *form.FormField) error
	UpdateFieldColumns(fieldID uint, columns map[string]interface{}) error
	ReplaceFieldOptions(fieldID uint, options []form.FormFieldOption) error
	DeactivateFields(ids []uint) error
	DeleteForm(id uint) error
	ListTasksDueBetween(from, to time.Time) ([]form.Form, error)
	MarkReminderSent(id uint, at time.Time) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Omit(clause.Associations).Create(f).Error
}

func (r *DBFormRepo) CreateSection(s *form.FormSection) error {
	return r.db.Create(s).Error
}

// CreateField inserts the field and its Options.
func (r *DBFormRepo) CreateField(f *form.FormField) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetFormByID(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.First(&f, id).Error
	return f, err
}

// GetFormForUpdate loads the form row holding a row lock until the transaction ends.
func (r *DBFormRepo) GetFormForUpdate(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&f, id).Error
	return f, err
}

func (r *DBFormRepo) GetFormWithDefinition(id uint) (form.Form, error) {
	var f form.Form
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("section_order ASC, id ASC")
		}).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_order ASC, id ASC")
		}).
		Preload("Fields.Options", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_order ASC, id ASC")
		}).
		First(&f, id).Error
	return f, err
}

func (r *DBFormRepo) ListForms(filter FormFilter) ([]form.Form, int64, error) {
	var forms []form.Form
	var total int64

	if filter.Restrict && len(filter.IDs) == 0 {
		return []form.Form{}, 0, nil
	}

	query := r.db.Model(&form.Form{})
	if filter.Restrict {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.FormType != "" {
		query = query.Where("form_type = ?", filter.FormType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	err := query.Find(&forms).Error
	return forms, total, err
}

func (r *DBFormRepo) ListFormIDsByCreator(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&form.Form{}).Where("created_by = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

func (r *DBFormRepo) UpdateForm(f *form.Form) error {
	return r.db.Omit(clause.Associations).Save(f).Error
}

// ListFieldsByFormID returns every field of the form, inactive ones included.
func (r *DBFormRepo) ListFieldsByFormID(formID uint) ([]form.FormField, error) {
	var fields []form.FormField
	err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Where("form_id = ?", formID).
		Order("display_order ASC, id ASC").
		Find(&fields).Error
	return fields, err
}

func (r *DBFormRepo) SaveField(f *form.FormField) error {
	return r.db.Omit(clause.Associations).Save(f).Error
}

func (r *DBFormRepo) UpdateFieldColumns(fieldID uint, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return r.db.Model(&form.FormField{}).Where("id = ?", fieldID).Updates(columns).Error
}

func (r *DBFormRepo) ReplaceFieldOptions(fieldID uint, options []form.FormFieldOption) error {
	if err := r.db.Where("field_id = ?", fieldID).Delete(&form.FormFieldOption{}).Error; err != nil {
		return err
	}
	if len(options) == 0 {
		return nil
	}
	for i := range options {
		options[i].ID = 0
		options[i].FieldID = fieldID
	}
	return r.db.Create(&options).Error
}

func (r *DBFormRepo) DeactivateFields(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&form.FormField{}).Where("id IN ?", ids).Update("is_active", false).Error
}

// DeleteForm removes the form and everything hanging off it.
func (r *DBFormRepo) DeleteForm(id uint) error {
	responseIDs := r.db.Model(&form.FormResponse{}).Select("id").Where("form_id = ?", id)
	if err := r.db.Where("response_id IN (?)", responseIDs).Delete(&form.FormFieldResponse{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("form_id = ?", id).Delete(&form.FormResponse{}).Error; err != nil {
		return err
	}
	fieldIDs := r.db.Model(&form.FormField{}).Select("id").Where("form_id = ?", id)
	if err := r.db.Where("field_id IN (?)", fieldIDs).Delete(&form.FormFieldOption{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("form_id = ?", id).Delete(&form.FormField{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("form_id = ?", id).Delete(&form.FormSection{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("form_id = ?", id).Delete(&form.UserFormAccess{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&form.Form{}, id).Error
}

func (r *DBFormRepo) ListTasksDueBetween(from, to time.Time) ([]form.Form, error) {
	var forms []form.Form
	err := r.db.
		Where("form_type = ? AND status = ?", form.FormTypeTask, form.FormStatusActive).
		Where("submission_deadline > ? AND submission_deadline <= ?", from, to).
		Where("reminder_sent_at IS NULL").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) MarkReminderSent(id uint, at time.Time) error {
	return r.db.Model(&form.Form{}).Where("id = ?", id).Update("reminder_sent_at", at).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{
		db: tx,
	}
}

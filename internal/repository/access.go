package repository

import (
	"time"

	"github.com/linskybing/form-platform/internal/domain/form"
	"gorm.io/gorm"
)

type AccessRepo interface {
	ListGrantsByForm(formID uint) ([]form.UserFormAccess, error)
	ListGrantedFormIDs(roleID *uint, userID uint, now time.Time) ([]uint, error)
	CreateGrants(grants []form.UserFormAccess) error
	ListUserGrants(formID uint) ([]form.UserFormAccess, error)
	DeleteUserGrants(formID uint, userIDs []uint) (int64, error)
	WithTx(tx *gorm.DB) AccessRepo
}

type DBAccessRepo struct {
	db *gorm.DB
}

func NewAccessRepo(db *gorm.DB) *DBAccessRepo {
	return &DBAccessRepo{
		db: db,
	}
}

func (r *DBAccessRepo) ListGrantsByForm(formID uint) ([]form.UserFormAccess, error) {
	var grants []form.UserFormAccess
	err := r.db.Where("form_id = ?", formID).Find(&grants).Error
	return grants, err
}

// ListGrantedFormIDs returns forms reachable through an active role grant for roleID or an
// active user grant for userID.
func (r *DBAccessRepo) ListGrantedFormIDs(roleID *uint, userID uint, now time.Time) ([]uint, error) {
	var ids []uint
	query := r.db.Model(&form.UserFormAccess{}).
		Distinct("form_id").
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", now)

	if roleID != nil {
		query = query.Where(
			r.db.Where("role_id = ?", *roleID).Or("role_id IS NULL AND user_id = ?", userID),
		)
	} else {
		query = query.Where("role_id IS NULL AND user_id = ?", userID)
	}

	err := query.Pluck("form_id", &ids).Error
	return ids, err
}

func (r *DBAccessRepo) CreateGrants(grants []form.UserFormAccess) error {
	if len(grants) == 0 {
		return nil
	}
	return r.db.Create(&grants).Error
}

// ListUserGrants returns the user-scoped (assignment) rows of a form.
func (r *DBAccessRepo) ListUserGrants(formID uint) ([]form.UserFormAccess, error) {
	var grants []form.UserFormAccess
	err := r.db.
		Where("form_id = ? AND role_id IS NULL AND user_id IS NOT NULL", formID).
		Order("granted_at ASC").
		Find(&grants).Error
	return grants, err
}

func (r *DBAccessRepo) DeleteUserGrants(formID uint, userIDs []uint) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	res := r.db.
		Where("form_id = ? AND role_id IS NULL AND user_id IN ?", formID, userIDs).
		Delete(&form.UserFormAccess{})
	return res.RowsAffected, res.Error
}

func (r *DBAccessRepo) WithTx(tx *gorm.DB) AccessRepo {
	if tx == nil {
		return r
	}
	return &DBAccessRepo{
		db: tx,
	}
}

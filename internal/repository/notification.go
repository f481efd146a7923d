package repository

import (
	"time"

	"github.com/linskybing/form-platform/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotifications(items []notification.Notification) error
	ListByUser(userID uint, unreadOnly bool, offset, limit int) ([]notification.Notification, int64, error)
	MarkRead(id, userID uint, at time.Time) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) CreateNotifications(items []notification.Notification) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *DBNotificationRepo) ListByUser(userID uint, unreadOnly bool, offset, limit int) ([]notification.Notification, int64, error) {
	var items []notification.Notification
	var total int64

	query := r.db.Model(&notification.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&items).Error
	return items, total, err
}

// MarkRead stamps read_at on a notification owned by userID and reports rows touched.
func (r *DBNotificationRepo) MarkRead(id, userID uint, at time.Time) (int64, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", at)
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}

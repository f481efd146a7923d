package notification

import "time"

type Notification struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	FormID    *uint      `json:"form_id" gorm:"index"`
	Title     string     `json:"title" gorm:"size:255;not null"`
	Body      string     `json:"body" gorm:"type:text"`
	Link      string     `json:"link" gorm:"size:500"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at" gorm:"index"`
}

// Event is the payload pushed to connected clients.
type Event struct {
	Type         string       `json:"type"`
	Notification Notification `json:"notification"`
}

const EventCreated = "notification.created"

package user

import "time"

const (
	RoleRoot           = "root"
	RoleAdmin          = "admin"
	RoleManager        = "manager"
	RoleProjectManager = "project_manager"
	RoleTeacher        = "teacher"
	RoleStudent        = "student"
)

// Role ranks order roles from most to least privileged (lower rank first).
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Rank int    `json:"rank" gorm:"default:0"`
}

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:255"`
	FullName  string    `json:"full_name" gorm:"size:255"`
	RoleID    *uint     `json:"role_id" gorm:"index"`
	Role      *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName falls back to the username when no full name is stored.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

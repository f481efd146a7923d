package form

import "time"

type AccessType string

const (
	AccessNone AccessType = ""
	AccessRead AccessType = "read"
	AccessEdit AccessType = "edit"
)

// Allows reports whether a held access level satisfies the requested one.
func (a AccessType) Allows(need AccessType) bool {
	switch need {
	case AccessRead:
		return a == AccessRead || a == AccessEdit
	case AccessEdit:
		return a == AccessEdit
	default:
		return true
	}
}

// UserFormAccess is the stored grant row. Exactly one of RoleID and UserID is set.
type UserFormAccess struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	FormID     uint       `json:"form_id" gorm:"index;not null"`
	RoleID     *uint      `json:"role_id" gorm:"index"`
	UserID     *uint      `json:"user_id" gorm:"index"`
	AccessType AccessType `json:"access_type" gorm:"size:10;not null"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	GrantedBy  *uint      `json:"granted_by"`
	GrantedAt  time.Time  `json:"granted_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

func (UserFormAccess) TableName() string {
	return "user_form_access"
}

// AccessGrant is either a RoleGrant or a UserGrant.
type AccessGrant interface {
	Access() AccessType
	ActiveAt(now time.Time) bool
}

type grantState struct {
	AccessType AccessType
	IsActive   bool
	ExpiresAt  *time.Time
}

func (g grantState) Access() AccessType { return g.AccessType }

func (g grantState) ActiveAt(now time.Time) bool {
	if !g.IsActive {
		return false
	}
	return g.ExpiresAt == nil || now.Before(*g.ExpiresAt)
}

// RoleGrant is a default grant to every holder of a role.
type RoleGrant struct {
	grantState
	RoleID uint
}

// UserGrant is a direct grant to one user, created by task assignment.
type UserGrant struct {
	grantState
	UserID uint
}

// Grant converts the row into its variant. Rows with neither key set return nil.
func (a UserFormAccess) Grant() AccessGrant {
	st := grantState{AccessType: a.AccessType, IsActive: a.IsActive, ExpiresAt: a.ExpiresAt}
	switch {
	case a.RoleID != nil:
		return RoleGrant{grantState: st, RoleID: *a.RoleID}
	case a.UserID != nil:
		return UserGrant{grantState: st, UserID: *a.UserID}
	}
	return nil
}

func NewRoleGrantRow(formID, roleID uint, access AccessType, grantedBy uint, now time.Time) UserFormAccess {
	return UserFormAccess{
		FormID:     formID,
		RoleID:     &roleID,
		AccessType: access,
		IsActive:   true,
		GrantedBy:  &grantedBy,
		GrantedAt:  now,
	}
}

func NewUserGrantRow(formID, userID uint, grantedBy uint, now time.Time) UserFormAccess {
	return UserFormAccess{
		FormID:     formID,
		UserID:     &userID,
		AccessType: AccessEdit,
		IsActive:   true,
		GrantedBy:  &grantedBy,
		GrantedAt:  now,
	}
}

// Subject is the identity an access decision is made for.
type Subject struct {
	UserID uint
	RoleID *uint
	Super  bool
}

// Evaluate resolves the subject's access to f. Rules are ordered and the first match
// wins: creator, super role, role grant, user grant.
func Evaluate(s Subject, f *Form, grants []AccessGrant, now time.Time) AccessType {
	if f.CreatedBy == s.UserID {
		return AccessEdit
	}
	if s.Super {
		return AccessEdit
	}
	if s.RoleID != nil {
		for _, g := range grants {
			if rg, ok := g.(RoleGrant); ok && rg.RoleID == *s.RoleID && rg.ActiveAt(now) {
				return rg.Access()
			}
		}
	}
	for _, g := range grants {
		if ug, ok := g.(UserGrant); ok && ug.UserID == s.UserID && ug.ActiveAt(now) {
			return AccessEdit
		}
	}
	return AccessNone
}

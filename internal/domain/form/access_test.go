package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	roleID := uint(7)
	f := &Form{ID: 1, CreatedBy: 10}

	roleGrant := NewRoleGrantRow(1, roleID, AccessRead, 10, now).Grant()
	userGrant := NewUserGrantRow(1, 20, 10, now).Grant()
	expired := NewUserGrantRow(1, 30, 10, now)
	expired.ExpiresAt = &past
	inactive := NewRoleGrantRow(1, 8, AccessEdit, 10, now)
	inactive.IsActive = false

	grants := []AccessGrant{roleGrant, userGrant, expired.Grant(), inactive.Grant()}
	other := uint(9)
	disabledRole := uint(8)

	tests := []struct {
		name    string
		subject Subject
		want    AccessType
	}{
		{"creator", Subject{UserID: 10}, AccessEdit},
		{"super", Subject{UserID: 99, Super: true}, AccessEdit},
		{"role grant", Subject{UserID: 50, RoleID: &roleID}, AccessRead},
		{"user grant", Subject{UserID: 20, RoleID: &other}, AccessEdit},
		{"expired user grant", Subject{UserID: 30}, AccessNone},
		{"inactive role grant", Subject{UserID: 40, RoleID: &disabledRole}, AccessNone},
		{"stranger", Subject{UserID: 41, RoleID: &other}, AccessNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.subject, f, grants, now))
		})
	}
}

func TestEvaluate_RoleGrantWinsOverUserGrant(t *testing.T) {
	now := time.Now()
	roleID := uint(3)
	grants := []AccessGrant{
		NewUserGrantRow(1, 5, 1, now).Grant(),
		NewRoleGrantRow(1, roleID, AccessRead, 1, now).Grant(),
	}
	got := Evaluate(Subject{UserID: 5, RoleID: &roleID}, &Form{ID: 1, CreatedBy: 1}, grants, now)
	assert.Equal(t, AccessRead, got)
}

func TestAccessTypeAllows(t *testing.T) {
	assert.True(t, AccessEdit.Allows(AccessRead))
	assert.True(t, AccessRead.Allows(AccessRead))
	assert.False(t, AccessRead.Allows(AccessEdit))
	assert.False(t, AccessNone.Allows(AccessRead))
}

func TestGrant_NoKey(t *testing.T) {
	assert.Nil(t, UserFormAccess{FormID: 1, AccessType: AccessEdit}.Grant())
}

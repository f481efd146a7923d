package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/form-platform/internal/application"
	"github.com/linskybing/form-platform/internal/domain/form"
	"github.com/linskybing/form-platform/internal/repository"
	"github.com/linskybing/form-platform/internal/repository/mock"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAccess(t *testing.T) (*application.AccessService, *mock.MockFormRepo, *mock.MockAccessRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockForm := mock.NewMockFormRepo(ctrl)
	mockAccess := mock.NewMockAccessRepo(ctrl)
	svc := application.NewAccessService(&repository.Repos{Form: mockForm, Access: mockAccess})
	fixed := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return fixed }
	return svc, mockForm, mockAccess
}

func TestAccessEvaluate_CreatorSkipsGrantLookup(t *testing.T) {
	svc, _, _ := setupAccess(t)
	got, err := svc.Evaluate(types.RequestContext{UserID: 3, Role: "student"}, &form.Form{ID: 1, CreatedBy: 3})
	require.NoError(t, err)
	assert.Equal(t, form.AccessEdit, got)
}

func TestAccessEvaluate_SuperSkipsGrantLookup(t *testing.T) {
	svc, _, _ := setupAccess(t)
	got, err := svc.Evaluate(types.RequestContext{UserID: 9, Role: "root"}, &form.Form{ID: 1, CreatedBy: 3})
	require.NoError(t, err)
	assert.Equal(t, form.AccessEdit, got)
}

func TestAccessEvaluate_RoleGrant(t *testing.T) {
	svc, _, mockAccess := setupAccess(t)
	roleID := uint(4)
	mockAccess.EXPECT().ListGrantsByForm(uint(1)).Return([]form.UserFormAccess{
		form.NewRoleGrantRow(1, roleID, form.AccessRead, 3, svc.Now()),
		{FormID: 1, AccessType: form.AccessEdit, IsActive: true},
	}, nil)

	got, err := svc.Evaluate(types.RequestContext{UserID: 8, Role: "teacher", RoleID: &roleID}, &form.Form{ID: 1, CreatedBy: 3})
	require.NoError(t, err)
	assert.Equal(t, form.AccessRead, got)
}

func TestAccessEvaluate_StoreFailure(t *testing.T) {
	svc, _, mockAccess := setupAccess(t)
	mockAccess.EXPECT().ListGrantsByForm(uint(1)).Return(nil, errors.New("conn reset"))

	_, err := svc.Evaluate(types.RequestContext{UserID: 8, Role: "student"}, &form.Form{ID: 1, CreatedBy: 3})
	assert.Equal(t, application.KindDependency, application.KindOf(err))
}

func TestAccessRequire(t *testing.T) {
	svc, mockForm, mockAccess := setupAccess(t)
	rc := types.RequestContext{UserID: 8, Role: "student"}

	mockForm.EXPECT().GetFormByID(uint(404)).Return(form.Form{}, gorm.ErrRecordNotFound)
	_, _, err := svc.Require(rc, 404, form.AccessRead)
	assert.ErrorIs(t, err, application.ErrFormNotFound)

	mockForm.EXPECT().GetFormByID(uint(1)).Return(form.Form{ID: 1, CreatedBy: 3}, nil).Times(2)
	mockAccess.EXPECT().ListGrantsByForm(uint(1)).Return([]form.UserFormAccess{
		form.NewUserGrantRow(1, 8, 3, svc.Now()),
	}, nil).Times(2)

	f, access, err := svc.Require(rc, 1, form.AccessEdit)
	require.NoError(t, err)
	assert.Equal(t, uint(1), f.ID)
	assert.Equal(t, form.AccessEdit, access)

	_, _, err = svc.Require(types.RequestContext{UserID: 99, Role: "student"}, 1, form.AccessRead)
	assert.ErrorIs(t, err, application.ErrAccessDenied)
}

func TestAccessibleFormIDs_MergesAndDedupes(t *testing.T) {
	svc, mockForm, mockAccess := setupAccess(t)
	roleID := uint(2)
	rc := types.RequestContext{UserID: 5, Role: "manager", RoleID: &roleID}

	mockForm.EXPECT().ListFormIDsByCreator(uint(5)).Return([]uint{7, 3}, nil)
	mockAccess.EXPECT().ListGrantedFormIDs(&roleID, uint(5), svc.Now()).Return([]uint{3, 1}, nil)

	ids, err := svc.AccessibleFormIDs(rc)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 3, 7}, ids)
}

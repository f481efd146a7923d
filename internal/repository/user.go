package repository

import (
	"github.com/linskybing/form-platform/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsersByIDs(ids []uint) ([]user.User, error)
	ListRolesByNames(names []string) ([]user.Role, error)
	GetRoleByName(name string) (user.Role, error)
	SaveUser(u *user.User) error
	SaveRole(role *user.Role) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.Preload("Role").First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Preload("Role").Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsersByIDs(ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&users).Error
	return users, err
}

// ListRolesByNames returns the named roles ordered by rank.
func (r *DBUserRepo) ListRolesByNames(names []string) ([]user.Role, error) {
	var roles []user.Role
	err := r.db.Where("name IN ?", names).Order("rank ASC, id ASC").Find(&roles).Error
	return roles, err
}

func (r *DBUserRepo) GetRoleByName(name string) (user.Role, error) {
	var role user.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	return role, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Omit("Role").Save(u).Error
}

func (r *DBUserRepo) SaveRole(role *user.Role) error {
	return r.db.Save(role).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}

// Package seed loads roles and users from a YAML fixture file.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/linskybing/form-platform/internal/domain/user"
	"github.com/linskybing/form-platform/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type RoleFixture struct {
	Name string `yaml:"name"`
	Rank int    `yaml:"rank"`
}

type UserFixture struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type Fixtures struct {
	Roles []RoleFixture `yaml:"roles"`
	Users []UserFixture `yaml:"users"`
}

func Parse(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}
	for i, r := range f.Roles {
		if strings.TrimSpace(r.Name) == "" {
			return Fixtures{}, fmt.Errorf("role %d: name is required", i)
		}
	}
	for i, u := range f.Users {
		if strings.TrimSpace(u.Username) == "" {
			return Fixtures{}, fmt.Errorf("user %d: username is required", i)
		}
	}
	return f, nil
}

func LoadFile(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

// Apply upserts roles by name and users by username in one transaction.
func Apply(repos *repository.Repos, f Fixtures) (users []user.User, err error) {
	err = repos.ExecTx(func(tx *repository.Repos) error {
		roles := make(map[string]user.Role, len(f.Roles))
		for _, in := range f.Roles {
			role, err := tx.User.GetRoleByName(in.Name)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("get role %s: %w", in.Name, err)
			}
			role.Name, role.Rank = in.Name, in.Rank
			if err := tx.User.SaveRole(&role); err != nil {
				return fmt.Errorf("save role %s: %w", in.Name, err)
			}
			roles[in.Name] = role
		}

		for _, in := range f.Users {
			u, err := tx.User.GetUserByUsername(in.Username)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("get user %s: %w", in.Username, err)
			}
			u.Username, u.Email, u.FullName = in.Username, in.Email, in.FullName
			u.RoleID, u.Role = nil, nil
			if in.Role != "" {
				role, ok := roles[in.Role]
				if !ok {
					if role, err = tx.User.GetRoleByName(in.Role); err != nil {
						return fmt.Errorf("user %s: unknown role %s", in.Username, in.Role)
					}
				}
				u.RoleID = &role.ID
				u.Role = &role
			}
			if err := tx.User.SaveUser(&u); err != nil {
				return fmt.Errorf("save user %s: %w", in.Username, err)
			}
			users = append(users, u)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

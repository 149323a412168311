package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/model"
)

// UserRepository adds credential lookup and role queries on top of the
// generic repository.
type UserRepository struct {
	*Repository[model.User, *model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: New[model.User, *model.User](db)}
}

// GetByUsername fetches a user by normalized username. A missing row yields
// (nil, nil), matching GetByID.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var u model.User
	err := r.DB().WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// RolesByUser returns the roles granted to a user through active UserRol
// assignments.
func (r *UserRepository) RolesByUser(ctx context.Context, userID uint) ([]model.Rol, error) {
	var out []model.Rol
	err := r.DB().WithContext(ctx).
		Joins("JOIN user_rols ur ON ur.rol_id = rols.id").
		Where("ur.user_id = ? AND ur.active = ?", userID, true).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

package service

import (
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
)

// UserRolService manages user/rol assignments.
type UserRolService struct {
	*Crud[model.UserRol, *model.UserRol, dto.UserRol]
}

func NewUserRolService(repo *repository.Repository[model.UserRol, *model.UserRol], events *queue.Publisher) *UserRolService {
	s := &UserRolService{}
	s.Crud = NewCrud("userRol", repo, mapper.UserRol, s, events)
	return s
}

func (s *UserRolService) ValidateID(id uint) error { return requireID(id) }

func (s *UserRolService) ValidateDTO(d dto.UserRol) error {
	if err := requireFK("UserId", d.UserID); err != nil {
		return err
	}
	return requireFK("RolId", d.RolID)
}

// PatchEntity is a no-op: both fields of the assignment are relational and
// therefore PUT-only. PATCH always returns the unchanged current state.
func (s *UserRolService) PatchEntity(dto.UserRol, *model.UserRol) (bool, error) {
	return false, nil
}

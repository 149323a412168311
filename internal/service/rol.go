package service

import (
	"context"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
)

// RolService manages roles and exposes the forms assigned to a rol.
type RolService struct {
	*Crud[model.Rol, *model.Rol, dto.Rol]
	rolForms *repository.RolFormRepository
}

func NewRolService(repo *repository.Repository[model.Rol, *model.Rol], rolForms *repository.RolFormRepository, events *queue.Publisher) *RolService {
	s := &RolService{rolForms: rolForms}
	s.Crud = NewCrud("rol", repo, mapper.Rol, s, events)
	return s
}

func (s *RolService) ValidateID(id uint) error { return requireID(id) }

func (s *RolService) ValidateDTO(d dto.Rol) error {
	return requireField("TypeRol", d.TypeRol)
}

// PatchEntity updates TypeRol and Description. The active flag is
// deliberately not patchable; the dedicated activate and soft-delete
// endpoints own it.
func (s *RolService) PatchEntity(d dto.Rol, e *model.Rol) (bool, error) {
	changed := patchString(&e.TypeRol, d.TypeRol)
	changed = patchString(&e.Description, d.Description) || changed
	return changed, nil
}

// Forms returns the forms reachable by a rol through its active RolForm
// assignments.
func (s *RolService) Forms(ctx context.Context, rolID uint) ([]dto.Form, error) {
	if err := requireID(rolID); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, rolID); err != nil {
		return nil, err
	}
	forms, err := s.rolForms.FormsByRol(ctx, rolID)
	if err != nil {
		return nil, apierror.NewExternal("rol forms lookup failed", err)
	}
	return mapper.Form.Collection(forms), nil
}

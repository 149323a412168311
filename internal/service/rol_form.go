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

// RolFormService manages rol/form assignments. Permission is free text and
// is stored without interpretation.
type RolFormService struct {
	*Crud[model.RolForm, *model.RolForm, dto.RolForm]
	rolForms *repository.RolFormRepository
}

func NewRolFormService(rolForms *repository.RolFormRepository, events *queue.Publisher) *RolFormService {
	s := &RolFormService{rolForms: rolForms}
	s.Crud = NewCrud("rolForm", rolForms.Repository, mapper.RolForm, s, events)
	return s
}

func (s *RolFormService) ValidateID(id uint) error { return requireID(id) }

func (s *RolFormService) ValidateDTO(d dto.RolForm) error {
	if err := requireFK("RolId", d.RolID); err != nil {
		return err
	}
	return requireFK("FormId", d.FormID)
}

// PatchEntity only touches Permission; the relational keys are PUT-only.
func (s *RolFormService) PatchEntity(d dto.RolForm, e *model.RolForm) (bool, error) {
	return patchString(&e.Permission, d.Permission), nil
}

// ByRol lists the assignments referencing a rol.
func (s *RolFormService) ByRol(ctx context.Context, rolID uint) ([]dto.RolForm, error) {
	if err := requireID(rolID); err != nil {
		return nil, err
	}
	list, err := s.rolForms.ListByRol(ctx, rolID)
	if err != nil {
		return nil, apierror.NewExternal("rolForm lookup failed", err)
	}
	return mapper.RolForm.Collection(list), nil
}

// ByForm lists the assignments referencing a form.
func (s *RolFormService) ByForm(ctx context.Context, formID uint) ([]dto.RolForm, error) {
	if err := requireID(formID); err != nil {
		return nil, err
	}
	list, err := s.rolForms.ListByForm(ctx, formID)
	if err != nil {
		return nil, apierror.NewExternal("rolForm lookup failed", err)
	}
	return mapper.RolForm.Collection(list), nil
}

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

// ModuleService manages modules and exposes the forms placed in a module.
type ModuleService struct {
	*Crud[model.Module, *model.Module, dto.Module]
	formModules *repository.FormModuleRepository
}

func NewModuleService(repo *repository.Repository[model.Module, *model.Module], formModules *repository.FormModuleRepository, events *queue.Publisher) *ModuleService {
	s := &ModuleService{formModules: formModules}
	s.Crud = NewCrud("module", repo, mapper.Module, s, events)
	return s
}

func (s *ModuleService) ValidateID(id uint) error { return requireID(id) }

func (s *ModuleService) ValidateDTO(d dto.Module) error {
	return requireField("Name", d.Name)
}

func (s *ModuleService) PatchEntity(d dto.Module, e *model.Module) (bool, error) {
	changed := patchString(&e.Name, d.Name)
	changed = patchString(&e.Description, d.Description) || changed
	return changed, nil
}

// Forms returns the forms placed in a module through active FormModule rows.
func (s *ModuleService) Forms(ctx context.Context, moduleID uint) ([]dto.Form, error) {
	if err := requireID(moduleID); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, moduleID); err != nil {
		return nil, err
	}
	forms, err := s.formModules.FormsByModule(ctx, moduleID)
	if err != nil {
		return nil, apierror.NewExternal("module forms lookup failed", err)
	}
	return mapper.Form.Collection(forms), nil
}

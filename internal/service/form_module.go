package service

import (
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
)

// FormModuleService manages form/module placements.
type FormModuleService struct {
	*Crud[model.FormModule, *model.FormModule, dto.FormModule]
}

func NewFormModuleService(formModules *repository.FormModuleRepository, events *queue.Publisher) *FormModuleService {
	s := &FormModuleService{}
	s.Crud = NewCrud("formModule", formModules.Repository, mapper.FormModule, s, events)
	return s
}

func (s *FormModuleService) ValidateID(id uint) error { return requireID(id) }

func (s *FormModuleService) ValidateDTO(d dto.FormModule) error {
	if err := requireFK("FormId", d.FormID); err != nil {
		return err
	}
	return requireFK("ModuleId", d.ModuleID)
}

// PatchEntity only touches StatusProcedure; the relational keys are PUT-only.
func (s *FormModuleService) PatchEntity(d dto.FormModule, e *model.FormModule) (bool, error) {
	return patchString(&e.StatusProcedure, d.StatusProcedure), nil
}

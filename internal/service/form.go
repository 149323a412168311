package service

import (
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
)

// FormService manages forms.
type FormService struct {
	*Crud[model.Form, *model.Form, dto.Form]
}

func NewFormService(repo *repository.Repository[model.Form, *model.Form], events *queue.Publisher) *FormService {
	s := &FormService{}
	s.Crud = NewCrud("form", repo, mapper.Form, s, events)
	return s
}

func (s *FormService) ValidateID(id uint) error { return requireID(id) }

func (s *FormService) ValidateDTO(d dto.Form) error {
	if err := requireField("Name", d.Name); err != nil {
		return err
	}
	return requireField("Route", d.Route)
}

func (s *FormService) PatchEntity(d dto.Form, e *model.Form) (bool, error) {
	changed := patchString(&e.Name, d.Name)
	changed = patchString(&e.Description, d.Description) || changed
	changed = patchString(&e.Route, d.Route) || changed
	changed = patchString(&e.Question, d.Question) || changed
	changed = patchString(&e.Answer, d.Answer) || changed
	changed = patchString(&e.TypeQuestion, d.TypeQuestion) || changed
	return changed, nil
}

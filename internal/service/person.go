package service

import (
	"strings"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
)

// PersonService manages personal records.
type PersonService struct {
	*Crud[model.Person, *model.Person, dto.Person]
}

func NewPersonService(repo *repository.Repository[model.Person, *model.Person], events *queue.Publisher) *PersonService {
	s := &PersonService{}
	s.Crud = NewCrud("person", repo, mapper.Person, s, events)
	return s
}

func (s *PersonService) ValidateID(id uint) error { return requireID(id) }

func (s *PersonService) ValidateDTO(d dto.Person) error {
	if err := requireField("FirstName", d.FirstName); err != nil {
		return err
	}
	if err := requireField("LastName", d.LastName); err != nil {
		return err
	}
	if d.NumberIdentification <= 0 {
		return apierror.NewValidation("NumberIdentification", "must be positive")
	}
	// Email is optional on input; the mapper synthesizes one from the name
	// parts when absent. When supplied it must parse.
	if strings.TrimSpace(d.Email) != "" {
		return requireEmail("Email", d.Email)
	}
	return nil
}

// PatchEntity updates name, contact and identification fields. A supplied
// email is format-checked and a supplied identification number must be
// positive, same as on create.
func (s *PersonService) PatchEntity(d dto.Person, e *model.Person) (bool, error) {
	if strings.TrimSpace(d.Email) != "" {
		if err := requireEmail("Email", d.Email); err != nil {
			return false, err
		}
	}
	if d.NumberIdentification < 0 {
		return false, apierror.NewValidation("NumberIdentification", "must be positive")
	}
	changed := patchString(&e.FirstName, d.FirstName)
	changed = patchString(&e.LastName, d.LastName) || changed
	changed = patchString(&e.Email, d.Email) || changed
	changed = patchString(&e.PhoneNumber, d.PhoneNumber) || changed
	changed = patchString(&e.TypeIdentification, d.TypeIdentification) || changed
	changed = patchInt64(&e.NumberIdentification, d.NumberIdentification) || changed
	changed = patchString(&e.Signing, d.Signing) || changed
	return changed, nil
}

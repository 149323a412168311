// Package mapper converts between persistence entities and transfer objects.
// Mapping rules are declarative: one Mapper value per entity pair, holding
// the three conversion directions. Merge implements PUT semantics — full
// overwrite of mapped domain fields — and by convention never touches audit
// timestamps, the active flag or navigation collections; those belong to the
// business and repository layers.
package mapper

import (
	"fmt"
	"strings"

	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/model"
)

// Mapper bundles the conversion functions for one entity/DTO pair.
type Mapper[E any, D any] struct {
	ToDTO    func(E) D
	ToEntity func(D) E
	Merge    func(D, *E)
}

// Collection maps a slice of entities to DTOs, preserving order.
func (m Mapper[E, D]) Collection(src []E) []D {
	out := make([]D, 0, len(src))
	for _, e := range src {
		out = append(out, m.ToDTO(e))
	}
	return out
}

func metaOf(f model.ActiveFlag, a model.Audit) dto.Meta {
	return dto.Meta{
		Active:     f.Active,
		CreateDate: a.CreatedAt,
		UpdateDate: a.UpdatedAt,
		DeleteDate: a.DeletedAt,
	}
}

// Person maps persons. DisplayName is computed from the name parts, and a
// placeholder email is synthesized from them when the source has none.
var Person = Mapper[model.Person, dto.Person]{
	ToDTO: func(e model.Person) dto.Person {
		return dto.Person{
			ID:                   e.ID,
			FirstName:            e.FirstName,
			LastName:             e.LastName,
			DisplayName:          strings.TrimSpace(e.FirstName + " " + e.LastName),
			Email:                e.Email,
			PhoneNumber:          e.PhoneNumber,
			TypeIdentification:   e.TypeIdentification,
			NumberIdentification: e.NumberIdentification,
			Signing:              e.Signing,
			Meta:                 metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.Person) model.Person {
		return model.Person{
			FirstName:            d.FirstName,
			LastName:             d.LastName,
			Email:                personEmail(d),
			PhoneNumber:          d.PhoneNumber,
			TypeIdentification:   d.TypeIdentification,
			NumberIdentification: d.NumberIdentification,
			Signing:              d.Signing,
		}
	},
	Merge: func(d dto.Person, e *model.Person) {
		e.FirstName = d.FirstName
		e.LastName = d.LastName
		e.Email = personEmail(d)
		e.PhoneNumber = d.PhoneNumber
		e.TypeIdentification = d.TypeIdentification
		e.NumberIdentification = d.NumberIdentification
		e.Signing = d.Signing
	},
}

// personEmail injects a default address derived from the name parts when the
// DTO carries none.
func personEmail(d dto.Person) string {
	if strings.TrimSpace(d.Email) != "" {
		return d.Email
	}
	first := strings.ToLower(strings.TrimSpace(d.FirstName))
	last := strings.ToLower(strings.TrimSpace(d.LastName))
	if first == "" && last == "" {
		return ""
	}
	return fmt.Sprintf("%s.%s@generated.local", first, last)
}

// User maps users. The password hash is never mapped outward, and the
// incoming password field is handled by the user service, not here.
var User = Mapper[model.User, dto.User]{
	ToDTO: func(e model.User) dto.User {
		return dto.User{
			ID:       e.ID,
			Username: e.Username,
			Email:    e.Email,
			PersonID: e.PersonID,
			Meta:     metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.User) model.User {
		return model.User{
			Username: strings.ToLower(strings.TrimSpace(d.Username)),
			Email:    d.Email,
			PersonID: d.PersonID,
		}
	},
	Merge: func(d dto.User, e *model.User) {
		e.Username = strings.ToLower(strings.TrimSpace(d.Username))
		e.Email = d.Email
		e.PersonID = d.PersonID
	},
}

var Rol = Mapper[model.Rol, dto.Rol]{
	ToDTO: func(e model.Rol) dto.Rol {
		return dto.Rol{
			ID:          e.ID,
			TypeRol:     e.TypeRol,
			Description: e.Description,
			Meta:        metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.Rol) model.Rol {
		return model.Rol{TypeRol: d.TypeRol, Description: d.Description}
	},
	Merge: func(d dto.Rol, e *model.Rol) {
		e.TypeRol = d.TypeRol
		e.Description = d.Description
	},
}

var Form = Mapper[model.Form, dto.Form]{
	ToDTO: func(e model.Form) dto.Form {
		return dto.Form{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			Route:        e.Route,
			Question:     e.Question,
			Answer:       e.Answer,
			TypeQuestion: e.TypeQuestion,
			Meta:         metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.Form) model.Form {
		return model.Form{
			Name:         d.Name,
			Description:  d.Description,
			Route:        d.Route,
			Question:     d.Question,
			Answer:       d.Answer,
			TypeQuestion: d.TypeQuestion,
		}
	},
	Merge: func(d dto.Form, e *model.Form) {
		e.Name = d.Name
		e.Description = d.Description
		e.Route = d.Route
		e.Question = d.Question
		e.Answer = d.Answer
		e.TypeQuestion = d.TypeQuestion
	},
}

var Module = Mapper[model.Module, dto.Module]{
	ToDTO: func(e model.Module) dto.Module {
		return dto.Module{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Meta:        metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.Module) model.Module {
		return model.Module{Name: d.Name, Description: d.Description}
	},
	Merge: func(d dto.Module, e *model.Module) {
		e.Name = d.Name
		e.Description = d.Description
	},
}

var UserRol = Mapper[model.UserRol, dto.UserRol]{
	ToDTO: func(e model.UserRol) dto.UserRol {
		return dto.UserRol{
			ID:     e.ID,
			UserID: e.UserID,
			RolID:  e.RolID,
			Meta:   metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.UserRol) model.UserRol {
		return model.UserRol{UserID: d.UserID, RolID: d.RolID}
	},
	Merge: func(d dto.UserRol, e *model.UserRol) {
		e.UserID = d.UserID
		e.RolID = d.RolID
	},
}

var RolForm = Mapper[model.RolForm, dto.RolForm]{
	ToDTO: func(e model.RolForm) dto.RolForm {
		return dto.RolForm{
			ID:         e.ID,
			RolID:      e.RolID,
			FormID:     e.FormID,
			Permission: e.Permission,
			Meta:       metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.RolForm) model.RolForm {
		return model.RolForm{RolID: d.RolID, FormID: d.FormID, Permission: d.Permission}
	},
	Merge: func(d dto.RolForm, e *model.RolForm) {
		e.RolID = d.RolID
		e.FormID = d.FormID
		e.Permission = d.Permission
	},
}

var FormModule = Mapper[model.FormModule, dto.FormModule]{
	ToDTO: func(e model.FormModule) dto.FormModule {
		return dto.FormModule{
			ID:              e.ID,
			FormID:          e.FormID,
			ModuleID:        e.ModuleID,
			StatusProcedure: e.StatusProcedure,
			Meta:            metaOf(e.ActiveFlag, e.Audit),
		}
	},
	ToEntity: func(d dto.FormModule) model.FormModule {
		return model.FormModule{FormID: d.FormID, ModuleID: d.ModuleID, StatusProcedure: d.StatusProcedure}
	},
	Merge: func(d dto.FormModule, e *model.FormModule) {
		e.FormID = d.FormID
		e.ModuleID = d.ModuleID
		e.StatusProcedure = d.StatusProcedure
	},
}

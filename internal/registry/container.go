// Package registry builds the object graph at startup. It replaces
// service-locator lookups with a typed container: every repository and
// service is a plain field wired once by Build, so a missing dependency is
// a compile error instead of a runtime lookup failure.
package registry

import (
	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/config"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
	"github.com/modelsec/security-admin/internal/service"
)

// Container holds the singletons shared by all requests.
type Container struct {
	// Specialized repositories (the generic ones live inside the services).
	Users       *repository.UserRepository
	RolForms    *repository.RolFormRepository
	FormModules *repository.FormModuleRepository

	// Business services.
	Persons        *service.PersonService
	UserSvc        *service.UserService
	Rols           *service.RolService
	Forms          *service.FormService
	Modules        *service.ModuleService
	UserRols       *service.UserRolService
	RolFormSvc     *service.RolFormService
	FormModuleSvc  *service.FormModuleService

	// Activation toggles, one per entity.
	PersonState     *service.State[model.Person, *model.Person]
	UserState       *service.State[model.User, *model.User]
	RolState        *service.State[model.Rol, *model.Rol]
	FormState       *service.State[model.Form, *model.Form]
	ModuleState     *service.State[model.Module, *model.Module]
	UserRolState    *service.State[model.UserRol, *model.UserRol]
	RolFormState    *service.State[model.RolForm, *model.RolForm]
	FormModuleState *service.State[model.FormModule, *model.FormModule]
}

// Build wires repositories and services against the database handle. events
// may be nil when audit publishing is disabled.
func Build(db *gorm.DB, cfg config.Config, events *queue.Publisher) *Container {
	users := repository.NewUserRepository(db)
	rolForms := repository.NewRolFormRepository(db)
	formModules := repository.NewFormModuleRepository(db)

	personRepo := repository.New[model.Person, *model.Person](db)
	rolRepo := repository.New[model.Rol, *model.Rol](db)
	formRepo := repository.New[model.Form, *model.Form](db)
	moduleRepo := repository.New[model.Module, *model.Module](db)
	userRolRepo := repository.New[model.UserRol, *model.UserRol](db)

	return &Container{
		Users:       users,
		RolForms:    rolForms,
		FormModules: formModules,

		Persons:       service.NewPersonService(personRepo, events),
		UserSvc:       service.NewUserService(users, cfg.BcryptCost, events),
		Rols:          service.NewRolService(rolRepo, rolForms, events),
		Forms:         service.NewFormService(formRepo, events),
		Modules:       service.NewModuleService(moduleRepo, formModules, events),
		UserRols:      service.NewUserRolService(userRolRepo, events),
		RolFormSvc:    service.NewRolFormService(rolForms, events),
		FormModuleSvc: service.NewFormModuleService(formModules, events),

		PersonState:     service.NewState(personRepo),
		UserState:       service.NewState(users.Repository),
		RolState:        service.NewState(rolRepo),
		FormState:       service.NewState(formRepo),
		ModuleState:     service.NewState(moduleRepo),
		UserRolState:    service.NewState(userRolRepo),
		RolFormState:    service.NewState(rolForms.Repository),
		FormModuleState: service.NewState(formModules.Repository),
	}
}

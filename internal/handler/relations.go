package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modelsec/security-admin/internal/service"
)

// RelationHandler serves the cross-entity lookup endpoints.
type RelationHandler struct {
	Rols        *service.RolService
	Modules     *service.ModuleService
	Users       *service.UserService
	Assignments *service.RolFormService
}

func NewRelationHandler(rols *service.RolService, modules *service.ModuleService, users *service.UserService, assignments *service.RolFormService) *RelationHandler {
	return &RelationHandler{Rols: rols, Modules: modules, Users: users, Assignments: assignments}
}

// RolForms returns the forms assigned to a rol.
func (h *RelationHandler) RolForms(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	forms, err := h.Rols.Forms(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, forms)
}

// ModuleForms returns the forms placed in a module.
func (h *RelationHandler) ModuleForms(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	forms, err := h.Modules.Forms(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, forms)
}

// UserRoles returns the roles granted to a user.
func (h *RelationHandler) UserRoles(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rols, err := h.Users.Roles(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rols)
}

// RolFormsByRol lists rol/form assignments referencing a rol.
func (h *RelationHandler) RolFormsByRol(c echo.Context) error {
	id, err := parseIDParam(c, "rolId")
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Assignments.ByRol(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// RolFormsByForm lists rol/form assignments referencing a form.
func (h *RelationHandler) RolFormsByForm(c echo.Context) error {
	id, err := parseIDParam(c, "formId")
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.Assignments.ByForm(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

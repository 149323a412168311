// Package handler contains the HTTP layer: a generic CRUD handler serving
// every entity, the auth endpoints and the relationship queries. Handlers
// bind JSON, delegate to the business layer and translate its error taxonomy
// into status codes; no business rules live here.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/modelsec/security-admin/internal/apierror"
)

// dbTimeout bounds every repository round trip initiated by a handler.
const dbTimeout = 5 * time.Second

// CrudPort is the business surface the generic handler needs. All concrete
// services satisfy it through their embedded Crud.
type CrudPort[D any] interface {
	GetAll(ctx context.Context) ([]D, error)
	GetByID(ctx context.Context, id uint) (D, error)
	Create(ctx context.Context, d D) (D, error)
	Update(ctx context.Context, id uint, d D) (D, error)
	Patch(ctx context.Context, id uint, d D) (D, error)
	Delete(ctx context.Context, id uint) error
	SoftDelete(ctx context.Context, id uint) error
	Activate(ctx context.Context, id uint) error
}

// StatePort is the loose activation contract: a boolean instead of a 404,
// leaving absence reporting to this layer.
type StatePort interface {
	ChangeState(ctx context.Context, id uint, active bool) (bool, error)
}

// CrudHandler serves the uniform REST surface for one entity.
type CrudHandler[D any] struct {
	name  string
	svc   CrudPort[D]
	state StatePort
}

func NewCrudHandler[D any](name string, svc CrudPort[D], state StatePort) *CrudHandler[D] {
	return &CrudHandler[D]{name: name, svc: svc, state: state}
}

// Register mounts the entity routes on the given group.
func (h *CrudHandler[D]) Register(g *echo.Group) {
	g.GET("", h.GetAll)
	g.POST("", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Patch)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/:id/soft", h.SoftDelete)
	g.POST("/:id/activate", h.Activate)
	g.PUT("/:id/state", h.ChangeState)
}

func (h *CrudHandler[D]) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	list, err := h.svc.GetAll(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CrudHandler[D]) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	d, err := h.svc.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *CrudHandler[D]) Create(c echo.Context) error {
	var d D
	if err := c.Bind(&d); err != nil {
		return fail(c, apierror.NewValidation("body", "invalid request body"))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.svc.Create(ctx, d)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CrudHandler[D]) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	var d D
	if err := c.Bind(&d); err != nil {
		return fail(c, apierror.NewValidation("body", "invalid request body"))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.svc.Update(ctx, id, d)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CrudHandler[D]) Patch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	var d D
	if err := c.Bind(&d); err != nil {
		return fail(c, apierror.NewValidation("body", "invalid request body"))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.svc.Patch(ctx, id, d)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CrudHandler[D]) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.svc.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CrudHandler[D]) SoftDelete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.svc.SoftDelete(ctx, id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CrudHandler[D]) Activate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.svc.Activate(ctx, id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeState flips the active flag through the narrow activation component.
// It reports absence itself since that contract returns a boolean.
func (h *CrudHandler[D]) ChangeState(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, err)
	}
	var body struct {
		Active *bool `json:"active"`
	}
	if err := c.Bind(&body); err != nil || body.Active == nil {
		return fail(c, apierror.NewValidation("active", "is required"))
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	ok, err := h.state.ChangeState(ctx, id, *body.Active)
	if err != nil {
		return fail(c, apierror.NewExternal(h.name+" state change failed", err))
	}
	if !ok {
		return fail(c, apierror.NewNotFound(h.name, id))
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- shared helpers -----

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// parseID reads the :id route parameter. Anything that is not a positive
// integer is a validation failure before the business layer is touched.
func parseID(c echo.Context) (uint, error) {
	return parseIDParam(c, "id")
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, apierror.NewValidation("Id", "must be a positive integer")
	}
	return uint(n), nil
}

// fail writes the error envelope with the status derived from the taxonomy.
func fail(c echo.Context, err error) error {
	return c.JSON(apierror.Status(err), echo.Map{"message": apierror.Message(err)})
}

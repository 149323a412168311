// Package router maps the HTTP surface onto the handlers. Every entity gets
// the same generic route set under /api/{entity}; auth and relationship
// lookups are mounted beside them.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/modelsec/security-admin/internal/config"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/handler"
	"github.com/modelsec/security-admin/internal/middleware"
	"github.com/modelsec/security-admin/internal/registry"
)

// Register mounts all routes on the Echo instance. Login is rate limited
// through Redis; everything else under /api requires a valid bearer token.
func Register(e *echo.Echo, cfg config.Config, c *registry.Container, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	auth := handler.NewAuthHandler(cfg, c.Users)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	api := e.Group("/api")
	api.POST("/auth/login", auth.Login, limiter)
	api.POST("/auth/logout", auth.Logout)

	protected := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	protected.GET("/auth/validate", auth.Validate)

	handler.NewCrudHandler[dto.Person]("person", c.Persons, c.PersonState).Register(protected.Group("/person"))
	handler.NewCrudHandler[dto.User]("user", c.UserSvc, c.UserState).Register(protected.Group("/user"))
	handler.NewCrudHandler[dto.Rol]("rol", c.Rols, c.RolState).Register(protected.Group("/rol"))
	handler.NewCrudHandler[dto.Form]("form", c.Forms, c.FormState).Register(protected.Group("/form"))
	handler.NewCrudHandler[dto.Module]("module", c.Modules, c.ModuleState).Register(protected.Group("/module"))
	handler.NewCrudHandler[dto.UserRol]("userRol", c.UserRols, c.UserRolState).Register(protected.Group("/userrol"))
	handler.NewCrudHandler[dto.RolForm]("rolForm", c.RolFormSvc, c.RolFormState).Register(protected.Group("/rolform"))
	handler.NewCrudHandler[dto.FormModule]("formModule", c.FormModuleSvc, c.FormModuleState).Register(protected.Group("/formmodule"))

	rel := handler.NewRelationHandler(c.Rols, c.Modules, c.UserSvc, c.RolFormSvc)
	protected.GET("/rol/:id/forms", rel.RolForms)
	protected.GET("/module/:id/forms", rel.ModuleForms)
	protected.GET("/user/:id/roles", rel.UserRoles)
	protected.GET("/rolform/byRol/:rolId", rel.RolFormsByRol)
	protected.GET("/rolform/byForm/:formId", rel.RolFormsByForm)
}

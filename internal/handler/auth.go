package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/modelsec/security-admin/internal/config"
	"github.com/modelsec/security-admin/internal/repository"
	"github.com/modelsec/security-admin/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints. Authentication is
// stateless: login issues a signed token, validate echoes its claims back
// and logout is a client-side discard acknowledged with 204.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepository
}

func NewAuthHandler(cfg config.Config, users *repository.UserRepository) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResp struct {
	User   userPart          `json:"user"`
	Access utils.AccessToken `json:"access"`
}

// Login verifies username/password against the stored bcrypt hash and
// returns an access token. Inactive accounts cannot log in. Invalid
// credentials and unknown users are indistinguishable in the response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "login failed"})
	}
	if u == nil || !u.IsActive() || !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, h.Cfg.TokenTTLHrs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "token issue failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		User:   userPart{ID: u.ID, Username: u.Username, Email: u.Email},
		Access: access,
	})
}

// Validate runs behind the JWT middleware; reaching it means the token is
// good, so it just echoes the identity claims.
func (h *AuthHandler) Validate(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"valid":    true,
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
	})
}

// Logout acknowledges the client-side token discard. No server state exists
// to invalidate.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/dto"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/model"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
	"github.com/modelsec/security-admin/internal/utils"
)

// UserService manages login accounts. Passwords are always stored as bcrypt
// hashes; the hash never leaves this layer.
type UserService struct {
	*Crud[model.User, *model.User, dto.User]
	users      *repository.UserRepository
	bcryptCost int
}

func NewUserService(users *repository.UserRepository, bcryptCost int, events *queue.Publisher) *UserService {
	s := &UserService{users: users, bcryptCost: bcryptCost}
	s.Crud = NewCrud("user", users.Repository, mapper.User, s, events)
	return s
}

func (s *UserService) ValidateID(id uint) error { return requireID(id) }

func (s *UserService) ValidateDTO(d dto.User) error {
	if err := requireField("Username", d.Username); err != nil {
		return err
	}
	if err := requireEmail("Email", d.Email); err != nil {
		return err
	}
	return requireFK("PersonId", d.PersonID)
}

// Create requires a password on top of the shared DTO validation, hashes it
// and persists the account.
func (s *UserService) Create(ctx context.Context, d dto.User) (dto.User, error) {
	var zero dto.User
	if err := requireField("Password", d.Password); err != nil {
		return zero, err
	}
	if err := s.ValidateDTO(d); err != nil {
		return zero, err
	}
	hash, err := utils.HashPassword(d.Password, s.bcryptCost)
	if err != nil {
		return zero, apierror.NewExternal("password hashing failed", err)
	}
	e := mapper.User.ToEntity(d)
	e.Password = hash
	now := time.Now().UTC()
	e.StampCreated(now)
	e.StampUpdated(now)
	e.SetActive(true)
	if err := s.users.Create(ctx, &e); err != nil {
		return zero, apierror.NewExternal("user create failed", err)
	}
	s.emit(ctx, queue.ActionCreated, e.ID)
	return mapper.User.ToDTO(e), nil
}

// Patch treats a request carrying only a password as a password change: all
// other field validation is bypassed and only the hash is rewritten. Any
// other combination flows through the generic patch; the password field is
// then ignored, keeping it mutually exclusive with profile changes.
func (s *UserService) Patch(ctx context.Context, id uint, d dto.User) (dto.User, error) {
	var zero dto.User
	if s.isPasswordOnly(d) {
		if err := requireID(id); err != nil {
			return zero, err
		}
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return zero, apierror.NewExternal("user lookup failed", err)
		}
		if u == nil {
			return zero, apierror.NewNotFound("user", id)
		}
		hash, err := utils.HashPassword(d.Password, s.bcryptCost)
		if err != nil {
			return zero, apierror.NewExternal("password hashing failed", err)
		}
		u.Password = hash
		u.StampUpdated(time.Now().UTC())
		if err := s.users.Update(ctx, u); err != nil {
			return zero, apierror.NewExternal("user update failed", err)
		}
		s.emit(ctx, queue.ActionPatched, id)
		return mapper.User.ToDTO(*u), nil
	}
	return s.Crud.Patch(ctx, id, d)
}

func (s *UserService) isPasswordOnly(d dto.User) bool {
	return strings.TrimSpace(d.Password) != "" &&
		strings.TrimSpace(d.Username) == "" &&
		strings.TrimSpace(d.Email) == "" &&
		d.PersonID == 0
}

// PatchEntity implements the Rules hook for non-password fields.
func (s *UserService) PatchEntity(d dto.User, e *model.User) (bool, error) {
	if strings.TrimSpace(d.Email) != "" {
		if err := requireEmail("Email", d.Email); err != nil {
			return false, err
		}
	}
	changed := patchString(&e.Username, strings.ToLower(strings.TrimSpace(d.Username)))
	changed = patchString(&e.Email, d.Email) || changed
	if d.PersonID != 0 && d.PersonID != e.PersonID {
		e.PersonID = d.PersonID
		changed = true
	}
	return changed, nil
}

// Roles returns the roles granted to a user through active assignments.
func (s *UserService) Roles(ctx context.Context, userID uint) ([]dto.Rol, error) {
	if err := requireID(userID); err != nil {
		return nil, err
	}
	if _, err := s.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	rols, err := s.users.RolesByUser(ctx, userID)
	if err != nil {
		return nil, apierror.NewExternal("user roles lookup failed", err)
	}
	return mapper.Rol.Collection(rols), nil
}

package service

import (
	"context"

	"github.com/modelsec/security-admin/internal/repository"
)

// State is the narrow activation abstraction for contexts that only need
// toggle semantics. Unlike Crud it does not raise NotFoundError: every
// operation reports success as a boolean and leaves it to the HTTP layer to
// decide how absence is presented.
type State[E any, PE repository.Ref[E]] struct {
	repo *repository.Repository[E, PE]
}

// NewState builds a State service over the entity's repository.
func NewState[E any, PE repository.Ref[E]](repo *repository.Repository[E, PE]) *State[E, PE] {
	return &State[E, PE]{repo: repo}
}

// Activate flips the entity active. False means the entity does not exist.
func (s *State[E, PE]) Activate(ctx context.Context, id uint) (bool, error) {
	return s.repo.Activate(ctx, id)
}

// Deactivate flips the entity inactive and stamps its delete time.
func (s *State[E, PE]) Deactivate(ctx context.Context, id uint) (bool, error) {
	return s.repo.SoftDelete(ctx, id)
}

// ChangeState sets the active flag to the desired value.
func (s *State[E, PE]) ChangeState(ctx context.Context, id uint, active bool) (bool, error) {
	if active {
		return s.Activate(ctx, id)
	}
	return s.Deactivate(ctx, id)
}

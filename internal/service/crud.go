// Package service implements the business layer: validation, audit stamping,
// orchestration of the repositories and translation of storage failures into
// the api error taxonomy. One generic Crud type serves every entity; the
// per-entity services supply validation and patch hooks through the Rules
// interface and add relationship queries.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modelsec/security-admin/internal/apierror"
	"github.com/modelsec/security-admin/internal/mapper"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/repository"
)

// Rules is the per-entity hook set. ValidateID and ValidateDTO guard the
// operations before any repository access. PatchEntity merges the DTO into
// the loaded entity following partial-update semantics: a field participates
// only when it is non-empty/non-default and differs. It reports whether
// anything changed. Fields excluded from PATCH (the active flag, relational
// keys on join entities) are simply ignored by the hook.
type Rules[E any, D any] interface {
	ValidateID(id uint) error
	ValidateDTO(d D) error
	PatchEntity(d D, e *E) (bool, error)
}

// Crud is the generic business service for one entity type.
type Crud[E any, PE repository.Ref[E], D any] struct {
	name   string
	repo   *repository.Repository[E, PE]
	mapper mapper.Mapper[E, D]
	rules  Rules[E, D]
	events *queue.Publisher
	log    *logrus.Entry
}

// NewCrud wires a generic business service. rules is usually the concrete
// service embedding the returned Crud.
func NewCrud[E any, PE repository.Ref[E], D any](
	name string,
	repo *repository.Repository[E, PE],
	m mapper.Mapper[E, D],
	rules Rules[E, D],
	events *queue.Publisher,
) *Crud[E, PE, D] {
	return &Crud[E, PE, D]{
		name:   name,
		repo:   repo,
		mapper: m,
		rules:  rules,
		events: events,
		log:    logrus.WithField("entity", name),
	}
}

// GetAll returns every entity mapped to its DTO.
func (s *Crud[E, PE, D]) GetAll(ctx context.Context) ([]D, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.external("list", err)
	}
	return s.mapper.Collection(list), nil
}

// GetByID returns one entity by id or a NotFoundError.
func (s *Crud[E, PE, D]) GetByID(ctx context.Context, id uint) (D, error) {
	var zero D
	if err := s.rules.ValidateID(id); err != nil {
		return zero, err
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, s.external("lookup", err)
	}
	if e == nil {
		return zero, apierror.NewNotFound(s.name, id)
	}
	return s.mapper.ToDTO(*(*E)(e)), nil
}

// Create validates the DTO, maps it, stamps the create audit field, defaults
// the entity to active and persists it.
func (s *Crud[E, PE, D]) Create(ctx context.Context, d D) (D, error) {
	var zero D
	if err := s.rules.ValidateDTO(d); err != nil {
		return zero, err
	}
	e := s.mapper.ToEntity(d)
	pe := PE(&e)
	now := time.Now().UTC()
	pe.StampCreated(now)
	pe.StampUpdated(now)
	pe.SetActive(true)
	if err := s.repo.Create(ctx, pe); err != nil {
		return zero, s.external("create", err)
	}
	s.emit(ctx, queue.ActionCreated, pe.GetID())
	return s.mapper.ToDTO(e), nil
}

// Update loads the target (404 when absent), merges the DTO over it, stamps
// the update audit field and persists.
func (s *Crud[E, PE, D]) Update(ctx context.Context, id uint, d D) (D, error) {
	var zero D
	if err := s.rules.ValidateID(id); err != nil {
		return zero, err
	}
	if err := s.rules.ValidateDTO(d); err != nil {
		return zero, err
	}
	pe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, s.external("lookup", err)
	}
	if pe == nil {
		return zero, apierror.NewNotFound(s.name, id)
	}
	s.mapper.Merge(d, (*E)(pe))
	pe.StampUpdated(time.Now().UTC())
	if err := s.repo.Update(ctx, pe); err != nil {
		return zero, s.external("update", err)
	}
	s.emit(ctx, queue.ActionUpdated, id)
	return s.mapper.ToDTO(*(*E)(pe)), nil
}

// Patch applies partial-update semantics through the entity's hook. When the
// hook reports no change, nothing is written; the current state is returned
// either way.
func (s *Crud[E, PE, D]) Patch(ctx context.Context, id uint, d D) (D, error) {
	var zero D
	if err := s.rules.ValidateID(id); err != nil {
		return zero, err
	}
	pe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, s.external("lookup", err)
	}
	if pe == nil {
		return zero, apierror.NewNotFound(s.name, id)
	}
	changed, err := s.rules.PatchEntity(d, (*E)(pe))
	if err != nil {
		return zero, err
	}
	if changed {
		pe.StampUpdated(time.Now().UTC())
		if err := s.repo.Update(ctx, pe); err != nil {
			return zero, s.external("update", err)
		}
		s.emit(ctx, queue.ActionPatched, id)
	}
	return s.mapper.ToDTO(*(*E)(pe)), nil
}

// Delete removes the row physically. A constraint violation from dependent
// rows surfaces as an external failure.
func (s *Crud[E, PE, D]) Delete(ctx context.Context, id uint) error {
	if err := s.rules.ValidateID(id); err != nil {
		return err
	}
	pe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.external("lookup", err)
	}
	if pe == nil {
		return apierror.NewNotFound(s.name, id)
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return s.external("delete", err)
	}
	s.emit(ctx, queue.ActionDeleted, id)
	return nil
}

// SoftDelete deactivates the entity and stamps its delete time. Deleting an
// already-inactive entity is a logged no-op, not an error.
func (s *Crud[E, PE, D]) SoftDelete(ctx context.Context, id uint) error {
	if err := s.rules.ValidateID(id); err != nil {
		return err
	}
	pe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.external("lookup", err)
	}
	if pe == nil {
		return apierror.NewNotFound(s.name, id)
	}
	if !pe.IsActive() {
		s.log.WithField("id", id).Info("soft delete skipped, already inactive")
		return nil
	}
	if _, err := s.repo.SoftDelete(ctx, id); err != nil {
		return s.external("soft delete", err)
	}
	s.emit(ctx, queue.ActionSoftDeleted, id)
	return nil
}

// Activate re-enables the entity. Activating an already-active entity is a
// logged no-op.
func (s *Crud[E, PE, D]) Activate(ctx context.Context, id uint) error {
	if err := s.rules.ValidateID(id); err != nil {
		return err
	}
	pe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.external("lookup", err)
	}
	if pe == nil {
		return apierror.NewNotFound(s.name, id)
	}
	if pe.IsActive() {
		s.log.WithField("id", id).Info("activate skipped, already active")
		return nil
	}
	if _, err := s.repo.Activate(ctx, id); err != nil {
		return s.external("activate", err)
	}
	s.emit(ctx, queue.ActionActivated, id)
	return nil
}

func (s *Crud[E, PE, D]) external(op string, err error) error {
	s.log.WithError(err).Errorf("%s failed", op)
	return apierror.NewExternal(fmt.Sprintf("%s %s failed", s.name, op), err)
}

func (s *Crud[E, PE, D]) emit(ctx context.Context, action string, id uint) {
	_ = s.events.Publish(ctx, queue.EntityEvent{
		Entity:     s.name,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

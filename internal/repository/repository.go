// Package repository contains data access logic separated from the business
// layer. A single generic Repository serves CRUD, soft delete and activation
// for every entity; specialized repositories embed it and add relationship
// queries. All operations take a context so request deadlines propagate to
// the database driver.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/model"
)

// Ref constrains PE to be a pointer to E carrying the full capability set
// (identity, active flag, audit stamps). The capability check happens at
// compile time: an entity without the embeds simply cannot be stored in a
// Repository.
type Ref[E any] interface {
	*E
	model.Record
}

// Repository implements generic persistence over a GORM database handle for
// one entity type.
type Repository[E any, PE Ref[E]] struct {
	db *gorm.DB
}

// New constructs a Repository bound to the given database handle. It is the
// uniform creation interface used by the container at startup.
func New[E any, PE Ref[E]](db *gorm.DB) *Repository[E, PE] {
	return &Repository[E, PE]{db: db}
}

// DB exposes the underlying handle to embedding repositories for their
// relationship queries.
func (r *Repository[E, PE]) DB() *gorm.DB { return r.db }

// GetAll returns every row of the entity's table. The result is a snapshot:
// mutating the returned values has no effect on the store until they are
// passed back through Update.
func (r *Repository[E, PE]) GetAll(ctx context.Context) ([]E, error) {
	var out []E
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one entity by primary key. A missing row yields (nil, nil)
// so callers decide how absence is reported.
func (r *Repository[E, PE]) GetByID(ctx context.Context, id uint) (PE, error) {
	var e E
	err := r.db.WithContext(ctx).First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return PE(&e), nil
}

// Create inserts the entity. The primary key field is populated on return.
func (r *Repository[E, PE]) Create(ctx context.Context, e PE) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update persists all fields of an already-loaded entity.
func (r *Repository[E, PE]) Update(ctx context.Context, e PE) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Patch updates only the given columns of the row identified by id. It
// reports whether a row was touched.
func (r *Repository[E, PE]) Patch(ctx context.Context, id uint, cols map[string]any) (bool, error) {
	var e E
	res := r.db.WithContext(ctx).Model(&e).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the row physically. Foreign key violations propagate as the
// driver's error; there are no retries. Returns false when no row existed.
func (r *Repository[E, PE]) Delete(ctx context.Context, id uint) (bool, error) {
	var e E
	res := r.db.WithContext(ctx).Delete(&e, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SoftDelete loads the entity, flips it inactive, stamps the delete time and
// persists. Returns false when the row does not exist.
func (r *Repository[E, PE]) SoftDelete(ctx context.Context, id uint) (bool, error) {
	return r.setActive(ctx, id, false)
}

// Activate mirrors SoftDelete with active=true. Re-activating clears nothing:
// the delete stamp stays as history, only the flag flips.
func (r *Repository[E, PE]) Activate(ctx context.Context, id uint) (bool, error) {
	return r.setActive(ctx, id, true)
}

func (r *Repository[E, PE]) setActive(ctx context.Context, id uint, active bool) (bool, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if e == nil {
		return false, nil
	}
	if e.IsActive() == active {
		return true, nil
	}
	e.SetActive(active)
	now := time.Now().UTC()
	if active {
		e.StampUpdated(now)
	} else {
		e.StampDeleted(now)
	}
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return false, err
	}
	return true, nil
}

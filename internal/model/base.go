// Package model defines the persistence entities of the security
// administration backend. Every entity embeds the Audit and ActiveFlag
// capability types so that the generic repository and business layers can
// operate on them through the Auditable and Activatable interfaces without
// runtime type inspection.
package model

import "time"

// Identifiable exposes the primary key of an entity.
type Identifiable interface {
	GetID() uint
}

// Activatable is the capability of carrying a boolean active/inactive state.
// Soft delete flips it to false; activation flips it back.
type Activatable interface {
	IsActive() bool
	SetActive(bool)
}

// Auditable is the capability of carrying create/update/delete timestamps,
// stamped exclusively by the business layer.
type Auditable interface {
	StampCreated(time.Time)
	StampUpdated(time.Time)
	StampDeleted(time.Time)
}

// Record is the full capability set required by the generic repository.
// It is satisfied by a pointer to any entity in this package.
type Record interface {
	Identifiable
	Activatable
	Auditable
}

// Audit holds the lifecycle timestamps shared by all entities. DeletedAt is
// a plain nullable timestamp, not gorm.DeletedAt: soft-deleted rows must
// remain visible to GetById per the lifecycle rules, so GORM's query-time
// exclusion is deliberately not used.
type Audit struct {
	CreatedAt time.Time  `json:"createDate"`
	UpdatedAt time.Time  `json:"updateDate"`
	DeletedAt *time.Time `json:"deleteDate,omitempty"`
}

func (a *Audit) StampCreated(t time.Time) { a.CreatedAt = t }
func (a *Audit) StampUpdated(t time.Time) { a.UpdatedAt = t }
func (a *Audit) StampDeleted(t time.Time) { a.DeletedAt = &t }

// ActiveFlag holds the boolean active state shared by all entities. The
// business layer sets it on create; no column default is declared because
// GORM drops explicit false values for columns carrying one.
type ActiveFlag struct {
	Active bool `json:"active"`
}

func (f *ActiveFlag) IsActive() bool   { return f.Active }
func (f *ActiveFlag) SetActive(v bool) { f.Active = v }

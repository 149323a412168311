// Package dto defines the shapes exposed across the API boundary. They are
// distinct from the persistence entities: password hashes and navigation
// collections never appear here, and audit fields are read-only output.
package dto

import "time"

// Meta carries the read-only lifecycle fields shared by every response DTO.
// Values sent by clients in these fields are ignored on write paths; the
// business layer owns them.
type Meta struct {
	Active     bool       `json:"active"`
	CreateDate time.Time  `json:"createDate"`
	UpdateDate time.Time  `json:"updateDate"`
	DeleteDate *time.Time `json:"deleteDate,omitempty"`
}

type Person struct {
	ID                   uint   `json:"id"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	DisplayName          string `json:"displayName,omitempty"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phoneNumber"`
	TypeIdentification   string `json:"typeIdentification"`
	NumberIdentification int64  `json:"numberIdentification"`
	Signing              string `json:"signing"`
	Meta
}

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // input only, never echoed back
	PersonID uint   `json:"personId"`
	Meta
}

type Rol struct {
	ID          uint   `json:"id"`
	TypeRol     string `json:"typeRol"`
	Description string `json:"description"`
	Meta
}

type Form struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Route        string `json:"route"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	TypeQuestion string `json:"typeQuestion"`
	Meta
}

type Module struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Meta
}

type UserRol struct {
	ID     uint `json:"id"`
	UserID uint `json:"userId"`
	RolID  uint `json:"rolId"`
	Meta
}

type RolForm struct {
	ID         uint   `json:"id"`
	RolID      uint   `json:"rolId"`
	FormID     uint   `json:"formId"`
	Permission string `json:"permission"`
	Meta
}

type FormModule struct {
	ID              uint   `json:"id"`
	FormID          uint   `json:"formId"`
	ModuleID        uint   `json:"moduleId"`
	StatusProcedure string `json:"statusProcedure"`
	Meta
}

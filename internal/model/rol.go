package model

// Rol is a named role that can be granted to users and associated to forms.
type Rol struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TypeRol     string `gorm:"size:100;not null" json:"typeRol"`
	Description string `gorm:"size:500" json:"description"`

	ActiveFlag
	Audit

	UserRols []UserRol `gorm:"foreignKey:RolID" json:"-"`
	RolForms []RolForm `gorm:"foreignKey:RolID" json:"-"`
}

func (Rol) TableName() string { return "rols" }

func (r Rol) GetID() uint { return r.ID }

package model

// RolForm links a Rol to a Form it may access. Permission is free text and
// is stored without interpretation; no vocabulary is enforced.
type RolForm struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	RolID      uint   `gorm:"not null;index" json:"rolId"`
	FormID     uint   `gorm:"not null;index" json:"formId"`
	Permission string `gorm:"size:100" json:"permission"`

	ActiveFlag
	Audit

	Rol  *Rol  `gorm:"foreignKey:RolID" json:"-"`
	Form *Form `gorm:"foreignKey:FormID" json:"-"`
}

func (RolForm) TableName() string { return "rol_forms" }

func (rf RolForm) GetID() uint { return rf.ID }

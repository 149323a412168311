package model

// Module groups forms into a functional area of the application.
type Module struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`

	ActiveFlag
	Audit

	FormModules []FormModule `gorm:"foreignKey:ModuleID" json:"-"`
}

func (Module) TableName() string { return "modules" }

func (m Module) GetID() uint { return m.ID }

package model

// FormModule places a Form inside a Module. StatusProcedure is free text
// describing the state of the placement procedure.
type FormModule struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	FormID          uint   `gorm:"not null;index" json:"formId"`
	ModuleID        uint   `gorm:"not null;index" json:"moduleId"`
	StatusProcedure string `gorm:"size:100" json:"statusProcedure"`

	ActiveFlag
	Audit

	Form   *Form   `gorm:"foreignKey:FormID" json:"-"`
	Module *Module `gorm:"foreignKey:ModuleID" json:"-"`
}

func (FormModule) TableName() string { return "form_modules" }

func (fm FormModule) GetID() uint { return fm.ID }

package model

// Form is a screen or questionnaire reachable through the front end. The
// question/answer fields mirror the legacy schema and are stored verbatim.
type Form struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"size:500" json:"description"`
	Route        string `gorm:"size:255" json:"route"`
	Question     string `gorm:"size:500" json:"question"`
	Answer       string `gorm:"size:500" json:"answer"`
	TypeQuestion string `gorm:"size:100" json:"typeQuestion"`

	ActiveFlag
	Audit

	RolForms    []RolForm    `gorm:"foreignKey:FormID" json:"-"`
	FormModules []FormModule `gorm:"foreignKey:FormID" json:"-"`
}

func (Form) TableName() string { return "forms" }

func (f Form) GetID() uint { return f.ID }

package model

// Person holds the personal data behind a user account. A person may exist
// without credentials; at most one User row references it.
type Person struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	FirstName            string `gorm:"size:100;not null" json:"firstName"`
	LastName             string `gorm:"size:100;not null" json:"lastName"`
	Email                string `gorm:"size:255" json:"email"`
	PhoneNumber          string `gorm:"size:30" json:"phoneNumber"`
	TypeIdentification   string `gorm:"size:30" json:"typeIdentification"`
	NumberIdentification int64  `gorm:"not null" json:"numberIdentification"`
	Signing              string `gorm:"size:255" json:"signing"`

	ActiveFlag
	Audit

	User *User `gorm:"foreignKey:PersonID" json:"-"`
}

func (Person) TableName() string { return "persons" }

func (p Person) GetID() uint { return p.ID }

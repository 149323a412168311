package model

// User is a login account bound to exactly one Person. Password stores a
// bcrypt hash, never plaintext.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email    string `gorm:"size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	PersonID uint   `gorm:"not null;uniqueIndex" json:"personId"`

	ActiveFlag
	Audit

	Person   *Person   `gorm:"foreignKey:PersonID" json:"-"`
	UserRols []UserRol `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "users" }

func (u User) GetID() uint { return u.ID }

package model

// UserRol assigns a Rol to a User. Uniqueness of an active (UserID, RolID)
// pair is enforced by the composite index.
type UserRol struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_rol" json:"userId"`
	RolID  uint `gorm:"not null;uniqueIndex:idx_user_rol" json:"rolId"`

	ActiveFlag
	Audit

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Rol  *Rol  `gorm:"foreignKey:RolID" json:"-"`
}

func (UserRol) TableName() string { return "user_rols" }

func (ur UserRol) GetID() uint { return ur.ID }

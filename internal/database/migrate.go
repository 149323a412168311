package database

import (
	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/model"
)

// Migrate runs AutoMigrate for all models. Called at application startup;
// ordering matters so that foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Person{},
		&model.User{},
		&model.Rol{},
		&model.Form{},
		&model.Module{},
		&model.UserRol{},
		&model.RolForm{},
		&model.FormModule{},
	)
}

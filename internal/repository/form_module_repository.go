package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/model"
)

// FormModuleRepository adds module relationship queries to the generic
// repository for the FormModule join entity.
type FormModuleRepository struct {
	*Repository[model.FormModule, *model.FormModule]
}

func NewFormModuleRepository(db *gorm.DB) *FormModuleRepository {
	return &FormModuleRepository{Repository: New[model.FormModule, *model.FormModule](db)}
}

// FormsByModule returns the forms placed in a module through active
// FormModule rows.
func (r *FormModuleRepository) FormsByModule(ctx context.Context, moduleID uint) ([]model.Form, error) {
	var out []model.Form
	err := r.DB().WithContext(ctx).
		Joins("JOIN form_modules fm ON fm.form_id = forms.id").
		Where("fm.module_id = ? AND fm.active = ?", moduleID, true).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/modelsec/security-admin/internal/model"
)

// RolFormRepository adds rol/form relationship queries to the generic
// repository for the RolForm join entity.
type RolFormRepository struct {
	*Repository[model.RolForm, *model.RolForm]
}

func NewRolFormRepository(db *gorm.DB) *RolFormRepository {
	return &RolFormRepository{Repository: New[model.RolForm, *model.RolForm](db)}
}

// ListByRol returns all RolForm rows referencing the given rol.
func (r *RolFormRepository) ListByRol(ctx context.Context, rolID uint) ([]model.RolForm, error) {
	var out []model.RolForm
	err := r.DB().WithContext(ctx).Where("rol_id = ?", rolID).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByForm returns all RolForm rows referencing the given form.
func (r *RolFormRepository) ListByForm(ctx context.Context, formID uint) ([]model.RolForm, error) {
	var out []model.RolForm
	err := r.DB().WithContext(ctx).Where("form_id = ?", formID).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FormsByRol returns the forms assigned to a rol through active RolForm rows.
func (r *RolFormRepository) FormsByRol(ctx context.Context, rolID uint) ([]model.Form, error) {
	var out []model.Form
	err := r.DB().WithContext(ctx).
		Joins("JOIN rol_forms rf ON rf.form_id = forms.id").
		Where("rf.rol_id = ? AND rf.active = ?", rolID, true).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

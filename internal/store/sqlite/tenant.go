package sqlite

import (
	"context"

	"galaxia/internal/store/model"

	"gorm.io/gorm"
)

type tenantRepo struct {
	db *gorm.DB
}

func (r *tenantRepo) Create(ctx context.Context, tenant *model.TenantModel) error {
	return r.db.WithContext(ctx).Create(tenant).Error
}

func (r *tenantRepo) FindByID(ctx context.Context, id string) (*model.TenantModel, error) {
	var tenant model.TenantModel
	err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &tenant, nil
}

func (r *tenantRepo) FirstActive(ctx context.Context) (*model.TenantModel, error) {
	var tenant model.TenantModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		First(&tenant).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &tenant, nil
}

func (r *tenantRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TenantModel{}).Count(&count).Error
	return count, err
}

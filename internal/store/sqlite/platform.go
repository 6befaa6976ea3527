package sqlite

import (
	"context"

	"galaxia/internal/store/model"

	"gorm.io/gorm"
)

type platformRepo struct {
	db *gorm.DB
}

func (r *platformRepo) Create(ctx context.Context, platform *model.PlatformModel) error {
	return r.db.WithContext(ctx).Create(platform).Error
}

func (r *platformRepo) FindByID(ctx context.Context, tenantID, id string) (*model.PlatformModel, error) {
	var platform model.PlatformModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&platform).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &platform, nil
}

func (r *platformRepo) List(ctx context.Context, tenantID string) ([]model.PlatformModel, error) {
	var platforms []model.PlatformModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&platforms).Error
	return platforms, err
}

func (r *platformRepo) FirstActive(ctx context.Context, tenantID string) (*model.PlatformModel, error) {
	var platform model.PlatformModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Order("created_at ASC").
		First(&platform).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &platform, nil
}

func (r *platformRepo) Count(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PlatformModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

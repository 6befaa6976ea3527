package sqlite

import (
	"context"

	"galaxia/internal/store/model"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func (r *productRepo) Create(ctx context.Context, product *model.ProductModel) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) Save(ctx context.Context, product *model.ProductModel) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepo) FindByID(ctx context.Context, tenantID, id string) (*model.ProductModel, error) {
	var product model.ProductModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&product).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (r *productRepo) FindByIDs(ctx context.Context, tenantID string, ids []string) ([]model.ProductModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []model.ProductModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&products).Error
	return products, err
}

func (r *productRepo) List(ctx context.Context, tenantID string, onlyActive bool) ([]model.ProductModel, error) {
	q := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	var products []model.ProductModel
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Delete(ctx context.Context, tenantID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.ProductModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return wrapNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *productRepo) Count(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

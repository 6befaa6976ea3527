package sqlite

import (
	"context"

	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

// Create persists the order and its items in one go. Callers that need
// atomicity with other writes run this inside a UnitOfWork.
func (r *orderRepo) Create(ctx context.Context, order *model.OrderModel) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) Save(ctx context.Context, order *model.OrderModel) error {
	return r.db.WithContext(ctx).Omit("Items", "Platform").Save(order).Error
}

func (r *orderRepo) FindByID(ctx context.Context, tenantID, id string) (*model.OrderModel, error) {
	var order model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Platform").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&order).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, tenantID string, filter store.OrderListFilter) ([]model.OrderModel, error) {
	q := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Platform").
		Where("tenant_id = ?", tenantID)
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var orders []model.OrderModel
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// Delete removes the order and its items. Only recent orders reach
// this path; old ones are canceled instead.
func (r *orderRepo) Delete(ctx context.Context, tenantID, id string) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.OrderModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return wrapNotFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *orderRepo) Count(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) CountItemsByProduct(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.OrderItemModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

package sqlite

import (
	"context"

	"galaxia/internal/store/model"

	"gorm.io/gorm"
)

type reportRepo struct {
	db *gorm.DB
}

func (r *reportRepo) Insert(ctx context.Context, report *model.InsightReportModel) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepo) ListRecent(ctx context.Context, tenantID string, limit int) ([]model.InsightReportModel, error) {
	if limit <= 0 {
		limit = 20
	}
	var reports []model.InsightReportModel
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

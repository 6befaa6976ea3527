// Package storetest fornece um Store em memória para os testes de
// serviço, sem depender de um arquivo sqlite.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"galaxia/internal/store"
	"galaxia/internal/store/model"
)

// MemStore implements store.Store over plain maps. It is safe for
// concurrent use; transactions write straight through.
type MemStore struct {
	mu        sync.RWMutex
	tenants   map[string]model.TenantModel
	platforms map[string]model.PlatformModel
	products  map[string]model.ProductModel
	orders    map[string]model.OrderModel
	reports   []model.InsightReportModel

	seq int
}

var _ store.Store = (*MemStore)(nil)

func New() *MemStore {
	return &MemStore{
		tenants:   map[string]model.TenantModel{},
		platforms: map[string]model.PlatformModel{},
		products:  map[string]model.ProductModel{},
		orders:    map[string]model.OrderModel{},
	}
}

// nextTime hands out strictly increasing creation timestamps so that
// "oldest first" orderings are deterministic in tests.
func (s *MemStore) nextTime() time.Time {
	s.seq++
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
}

func (s *MemStore) Begin(ctx context.Context) (store.UnitOfWork, error) {
	return memUnitOfWork{store: s}, nil
}

func (s *MemStore) Tenants() store.TenantRepository     { return tenantRepo{s} }
func (s *MemStore) Platforms() store.PlatformRepository { return platformRepo{s} }
func (s *MemStore) Products() store.ProductRepository   { return productRepo{s} }
func (s *MemStore) Orders() store.OrderRepository       { return orderRepo{s} }
func (s *MemStore) Reports() store.ReportRepository     { return reportRepo{s} }

func (s *MemStore) Ping(ctx context.Context) error { return nil }
func (s *MemStore) Close() error                   { return nil }

type memUnitOfWork struct{ store *MemStore }

func (u memUnitOfWork) Commit() error                    { return nil }
func (u memUnitOfWork) Rollback() error                  { return nil }
func (u memUnitOfWork) Products() store.ProductRepository { return productRepo{u.store} }
func (u memUnitOfWork) Orders() store.OrderRepository     { return orderRepo{u.store} }

type tenantRepo struct{ s *MemStore }

func (r tenantRepo) Create(ctx context.Context, tenant *model.TenantModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tenant.CreatedAt.IsZero() {
		tenant.CreatedAt = r.s.nextTime()
	}
	r.s.tenants[tenant.ID] = *tenant
	return nil
}

func (r tenantRepo) FindByID(ctx context.Context, id string) (*model.TenantModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	tenant, ok := r.s.tenants[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &tenant, nil
}

func (r tenantRepo) FirstActive(ctx context.Context) (*model.TenantModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var candidates []model.TenantModel
	for _, tenant := range r.s.tenants {
		if tenant.Active {
			candidates = append(candidates, tenant)
		}
	}
	if len(candidates) == 0 {
		return nil, store.ErrNotFound
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	return &candidates[0], nil
}

func (r tenantRepo) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.tenants)), nil
}

type platformRepo struct{ s *MemStore }

func (r platformRepo) Create(ctx context.Context, platform *model.PlatformModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if platform.CreatedAt.IsZero() {
		platform.CreatedAt = r.s.nextTime()
	}
	r.s.platforms[platform.ID] = *platform
	return nil
}

func (r platformRepo) FindByID(ctx context.Context, tenantID, id string) (*model.PlatformModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	platform, ok := r.s.platforms[id]
	if !ok || platform.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	return &platform, nil
}

func (r platformRepo) List(ctx context.Context, tenantID string) ([]model.PlatformModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.PlatformModel
	for _, platform := range r.s.platforms {
		if platform.TenantID == tenantID {
			out = append(out, platform)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r platformRepo) FirstActive(ctx context.Context, tenantID string) (*model.PlatformModel, error) {
	platforms, err := r.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	for _, platform := range platforms {
		if platform.Active {
			p := platform
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r platformRepo) Count(ctx context.Context, tenantID string) (int64, error) {
	platforms, err := r.List(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	return int64(len(platforms)), nil
}

type productRepo struct{ s *MemStore }

func (r productRepo) Create(ctx context.Context, product *model.ProductModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = r.s.nextTime()
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r productRepo) Save(ctx context.Context, product *model.ProductModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r productRepo) FindByID(ctx context.Context, tenantID, id string) (*model.ProductModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	product, ok := r.s.products[id]
	if !ok || product.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	return &product, nil
}

func (r productRepo) FindByIDs(ctx context.Context, tenantID string, ids []string) ([]model.ProductModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.ProductModel
	for _, id := range ids {
		if product, ok := r.s.products[id]; ok && product.TenantID == tenantID {
			out = append(out, product)
		}
	}
	return out, nil
}

func (r productRepo) List(ctx context.Context, tenantID string, onlyActive bool) ([]model.ProductModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.ProductModel
	for _, product := range r.s.products {
		if product.TenantID != tenantID {
			continue
		}
		if onlyActive && !product.Active {
			continue
		}
		out = append(out, product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r productRepo) Delete(ctx context.Context, tenantID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product, ok := r.s.products[id]
	if !ok || product.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r productRepo) Count(ctx context.Context, tenantID string) (int64, error) {
	products, err := r.List(ctx, tenantID, false)
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

type orderRepo struct{ s *MemStore }

func (r orderRepo) Create(ctx context.Context, order *model.OrderModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = r.s.nextTime()
	}
	r.s.orders[order.ID] = *order
	return nil
}

func (r orderRepo) Save(ctx context.Context, order *model.OrderModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[order.ID]; !ok {
		return store.ErrNotFound
	}
	r.s.orders[order.ID] = *order
	return nil
}

func (r orderRepo) FindByID(ctx context.Context, tenantID, id string) (*model.OrderModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	order, ok := r.s.orders[id]
	if !ok || order.TenantID != tenantID {
		return nil, store.ErrNotFound
	}
	if platform, ok := r.s.platforms[order.PlatformID]; ok {
		order.Platform = &platform
	}
	return &order, nil
}

func (r orderRepo) List(ctx context.Context, tenantID string, filter store.OrderListFilter) ([]model.OrderModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.OrderModel
	for _, order := range r.s.orders {
		if order.TenantID != tenantID {
			continue
		}
		if filter.From != nil && order.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !order.CreatedAt.Before(*filter.To) {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r orderRepo) Delete(ctx context.Context, tenantID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok || order.TenantID != tenantID {
		return store.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

func (r orderRepo) Count(ctx context.Context, tenantID string) (int64, error) {
	orders, err := r.List(ctx, tenantID, store.OrderListFilter{})
	if err != nil {
		return 0, err
	}
	return int64(len(orders)), nil
}

func (r orderRepo) CountItemsByProduct(ctx context.Context, productID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, order := range r.s.orders {
		for _, item := range order.Items {
			if item.ProductID == productID {
				count++
			}
		}
	}
	return count, nil
}

type reportRepo struct{ s *MemStore }

func (r reportRepo) Insert(ctx context.Context, report *model.InsightReportModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = r.s.nextTime()
	}
	r.s.reports = append(r.s.reports, *report)
	return nil
}

func (r reportRepo) ListRecent(ctx context.Context, tenantID string, limit int) ([]model.InsightReportModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.InsightReportModel
	for i := len(r.s.reports) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.reports[i].TenantID == tenantID {
			out = append(out, r.s.reports[i])
		}
	}
	return out, nil
}

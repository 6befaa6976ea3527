package store

import (
	"context"
	"errors"
	"time"

	"galaxia/internal/store/model"
)

// ErrNotFound is returned when a record does not exist or belongs to
// another tenant. Handlers map it to 404.
var ErrNotFound = errors.New("registro não encontrado")

// UnitOfWork defines a transaction scope. Order creation writes the
// order and its items atomically through one of these.
type UnitOfWork interface {
	// Commit commits the transaction.
	Commit() error
	// Rollback rolls back the transaction.
	Rollback() error

	// Products returns the product repository within this transaction.
	Products() ProductRepository
	// Orders returns the order repository within this transaction.
	Orders() OrderRepository
}

// Store is the entry point for database access. Read-only paths use
// the repositories directly; multi-write paths go through Begin.
type Store interface {
	// Begin starts a new UnitOfWork (transaction).
	Begin(ctx context.Context) (UnitOfWork, error)

	Tenants() TenantRepository
	Platforms() PlatformRepository
	Products() ProductRepository
	Orders() OrderRepository
	Reports() ReportRepository

	// Ping verifies database connectivity (health endpoint).
	Ping(ctx context.Context) error
	// Close closes the store connection.
	Close() error
}

// TenantRepository handles tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *model.TenantModel) error
	FindByID(ctx context.Context, id string) (*model.TenantModel, error)
	// FirstActive returns the oldest active tenant, the stub fallback
	// when no tenant is pinned by configuration.
	FirstActive(ctx context.Context) (*model.TenantModel, error)
	Count(ctx context.Context) (int64, error)
}

// PlatformRepository handles sales-channel persistence.
type PlatformRepository interface {
	Create(ctx context.Context, platform *model.PlatformModel) error
	FindByID(ctx context.Context, tenantID, id string) (*model.PlatformModel, error)
	List(ctx context.Context, tenantID string) ([]model.PlatformModel, error)
	// FirstActive returns the tenant's first active platform, used as
	// the assistant's fee source.
	FirstActive(ctx context.Context, tenantID string) (*model.PlatformModel, error)
	Count(ctx context.Context, tenantID string) (int64, error)
}

// ProductRepository handles product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *model.ProductModel) error
	Save(ctx context.Context, product *model.ProductModel) error
	FindByID(ctx context.Context, tenantID, id string) (*model.ProductModel, error)
	FindByIDs(ctx context.Context, tenantID string, ids []string) ([]model.ProductModel, error)
	List(ctx context.Context, tenantID string, onlyActive bool) ([]model.ProductModel, error)
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int64, error)
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

// OrderRepository handles order persistence. Create persists the order
// together with its line items.
type OrderRepository interface {
	Create(ctx context.Context, order *model.OrderModel) error
	Save(ctx context.Context, order *model.OrderModel) error
	FindByID(ctx context.Context, tenantID, id string) (*model.OrderModel, error)
	List(ctx context.Context, tenantID string, filter OrderListFilter) ([]model.OrderModel, error)
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int64, error)
	// CountItemsByProduct reports how many order lines reference a
	// product; products with history are deactivated, never deleted.
	CountItemsByProduct(ctx context.Context, productID string) (int64, error)
}

// ReportRepository persists assistant insight snapshots.
type ReportRepository interface {
	Insert(ctx context.Context, report *model.InsightReportModel) error
	ListRecent(ctx context.Context, tenantID string, limit int) ([]model.InsightReportModel, error)
}

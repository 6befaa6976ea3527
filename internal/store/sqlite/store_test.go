package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestStore(t *testing.T) *SqliteStore {
	t.Helper()
	st, err := NewSqliteStore(filepath.Join(t.TempDir(), "galaxia-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func createTenant(t *testing.T, st *SqliteStore) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, st.Tenants().Create(context.Background(), &model.TenantModel{
		ID: id, Name: "Galáxia Gourmet", Active: true,
	}))
	return id
}

func TestTenantRepository(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("round trip", func(t *testing.T) {
		id := createTenant(t, st)
		found, err := st.Tenants().FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Galáxia Gourmet", found.Name)

		count, err := st.Tenants().Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("missing id maps to ErrNotFound", func(t *testing.T) {
		_, err := st.Tenants().FindByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tenantID := createTenant(t, st)

	burger := &model.ProductModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          "Hambúrguer Clássico",
		SalePrice:     dec("28.90"),
		EstimatedCost: dec("12.00"),
		Active:        true,
	}
	require.NoError(t, st.Products().Create(ctx, burger))

	inactive := &model.ProductModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          "Fora do Cardápio",
		SalePrice:     dec("10.00"),
		EstimatedCost: dec("4.00"),
		Active:        false,
	}
	require.NoError(t, st.Products().Create(ctx, inactive))

	t.Run("decimal columns survive the round trip", func(t *testing.T) {
		found, err := st.Products().FindByID(ctx, tenantID, burger.ID)
		require.NoError(t, err)
		assert.True(t, found.SalePrice.Equal(dec("28.90")), found.SalePrice.String())
		assert.True(t, found.EstimatedCost.Equal(dec("12.00")))
	})

	t.Run("onlyActive filters", func(t *testing.T) {
		all, err := st.Products().List(ctx, tenantID, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		active, err := st.Products().List(ctx, tenantID, true)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, burger.ID, active[0].ID)
	})

	t.Run("FindByIDs scopes to tenant", func(t *testing.T) {
		otherTenant := createTenant(t, st)
		found, err := st.Products().FindByIDs(ctx, otherTenant, []string{burger.ID})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, st.Products().Delete(ctx, tenantID, inactive.ID))
		_, err := st.Products().FindByID(ctx, tenantID, inactive.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)

		err = st.Products().Delete(ctx, tenantID, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tenantID := createTenant(t, st)

	platform := &model.PlatformModel{
		ID:                uuid.NewString(),
		TenantID:          tenantID,
		Name:              "iFood",
		Type:              model.PlatformTypeDelivery,
		DefaultFeePercent: dec("0.23"),
		Active:            true,
	}
	require.NoError(t, st.Platforms().Create(ctx, platform))

	product := &model.ProductModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          "Hambúrguer Clássico",
		SalePrice:     dec("28.90"),
		EstimatedCost: dec("12.00"),
		Active:        true,
	}
	require.NoError(t, st.Products().Create(ctx, product))

	order := &model.OrderModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		PlatformID:    platform.ID,
		Status:        model.OrderStatusNew,
		PaymentMethod: model.PaymentPix,
		GrossTotal:    dec("57.80"),
		TotalCost:     dec("24.00"),
		Items: []model.OrderItemModel{{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Quantity:  2,
			UnitPrice: dec("28.90"),
			UnitCost:  dec("12.00"),
		}},
	}

	t.Run("create through a unit of work", func(t *testing.T) {
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}
		uow, err := st.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Orders().Create(ctx, order))
		require.NoError(t, uow.Commit())
	})

	t.Run("FindByID preloads items and platform", func(t *testing.T) {
		found, err := st.Orders().FindByID(ctx, tenantID, order.ID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, product.ID, found.Items[0].ProductID)
		require.NotNil(t, found.Platform)
		assert.Equal(t, "iFood", found.Platform.Name)
		require.NotNil(t, found.Items[0].Product)
		assert.Equal(t, "Hambúrguer Clássico", found.Items[0].Product.Name)
	})

	t.Run("rollback leaves nothing behind", func(t *testing.T) {
		ghost := &model.OrderModel{
			ID:            uuid.NewString(),
			TenantID:      tenantID,
			PlatformID:    platform.ID,
			Status:        model.OrderStatusNew,
			PaymentMethod: model.PaymentCash,
		}
		uow, err := st.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Orders().Create(ctx, ghost))
		require.NoError(t, uow.Rollback())

		_, err = st.Orders().FindByID(ctx, tenantID, ghost.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list filters by status and window", func(t *testing.T) {
		all, err := st.Orders().List(ctx, tenantID, store.OrderListFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)

		canceled, err := st.Orders().List(ctx, tenantID, store.OrderListFilter{Status: model.OrderStatusCanceled})
		require.NoError(t, err)
		assert.Empty(t, canceled)

		future := time.Now().Add(time.Hour)
		none, err := st.Orders().List(ctx, tenantID, store.OrderListFilter{From: &future})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("CountItemsByProduct", func(t *testing.T) {
		count, err := st.Orders().CountItemsByProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("delete removes items too", func(t *testing.T) {
		require.NoError(t, st.Orders().Delete(ctx, tenantID, order.ID))
		_, err := st.Orders().FindByID(ctx, tenantID, order.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)

		count, err := st.Orders().CountItemsByProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	tenantID := createTenant(t, st)

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for score := 1; score <= 3; score++ {
		require.NoError(t, st.Reports().Insert(ctx, &model.InsightReportModel{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			HealthScore: score * 10,
			Payload:     []byte(`{"ok":true}`),
			CreatedAt:   base.Add(time.Duration(score) * time.Minute),
		}))
	}

	recent, err := st.Reports().ListRecent(ctx, tenantID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 30, recent[0].HealthScore)
}

package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"galaxia/internal/store/model"
	"galaxia/internal/store/storetest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu    sync.Mutex
	texts []string
	seen  chan struct{}
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{seen: make(chan struct{}, 8)}
}

func (n *captureNotifier) SendText(text string) error {
	n.mu.Lock()
	n.texts = append(n.texts, text)
	n.mu.Unlock()
	n.seen <- struct{}{}
	return nil
}

func (n *captureNotifier) wait(t *testing.T) string {
	t.Helper()
	select {
	case <-n.seen:
	case <-time.After(2 * time.Second):
		t.Fatal("notificação não chegou")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.texts[len(n.texts)-1]
}

type fixture struct {
	store    *storetest.MemStore
	service  *Service
	notifier *captureNotifier
	tenantID string
	platform *model.PlatformModel
	burger   *model.ProductModel
	fries    *model.ProductModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	st := storetest.New()
	tenantID := uuid.NewString()
	require.NoError(t, st.Tenants().Create(ctx, &model.TenantModel{
		ID: tenantID, Name: "Galáxia Gourmet", Active: true,
	}))

	platform := &model.PlatformModel{
		ID:                uuid.NewString(),
		TenantID:          tenantID,
		Name:              "iFood",
		Type:              model.PlatformTypeDelivery,
		DefaultFeePercent: decimal.RequireFromString("0.23"),
		Active:            true,
	}
	require.NoError(t, st.Platforms().Create(ctx, platform))

	burger := &model.ProductModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          "Hambúrguer Clássico",
		SalePrice:     decimal.RequireFromString("28.90"),
		EstimatedCost: decimal.RequireFromString("12.00"),
		Active:        true,
	}
	fries := &model.ProductModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          "Batata Frita Grande",
		SalePrice:     decimal.RequireFromString("18.00"),
		EstimatedCost: decimal.RequireFromString("6.20"),
		Active:        true,
	}
	require.NoError(t, st.Products().Create(ctx, burger))
	require.NoError(t, st.Products().Create(ctx, fries))

	tn := newCaptureNotifier()
	return &fixture{
		store:    st,
		service:  NewService(st, tn),
		notifier: tn,
		tenantID: tenantID,
		platform: platform,
		burger:   burger,
		fries:    fries,
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes totals and snapshots", func(t *testing.T) {
		f := newFixture(t)
		order, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items: []ItemInput{
				{ProductID: f.burger.ID, Quantity: 2},
				{ProductID: f.fries.ID, Quantity: 1},
			},
			CustomerName: "Ana",
		})
		require.NoError(t, err)

		// 2×28.90 + 18.00 = 75.80 bruto; custo 2×12.00 + 6.20 = 30.20
		assert.True(t, order.GrossTotal.Equal(decimal.RequireFromString("75.80")), order.GrossTotal.String())
		assert.True(t, order.TotalCost.Equal(decimal.RequireFromString("30.20")), order.TotalCost.String())
		assert.True(t, order.PlatformFeeValue.Equal(decimal.RequireFromString("17.434")), order.PlatformFeeValue.String())
		assert.True(t, order.NetProfit.Equal(decimal.RequireFromString("28.166")), order.NetProfit.String())
		assert.Equal(t, model.OrderStatusNew, order.Status)

		require.Len(t, order.Items, 2)
		assert.True(t, order.Items[0].UnitPrice.Equal(f.burger.SalePrice))
		assert.True(t, order.Items[0].UnitCost.Equal(f.burger.EstimatedCost))

		text := f.notifier.wait(t)
		assert.Contains(t, text, "NOVO PEDIDO")
		assert.Contains(t, text, "Hambúrguer Clássico")

		saved, err := f.service.Get(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		assert.True(t, saved.GrossTotal.Equal(order.GrossTotal))
	})

	t.Run("product edits do not rewrite history", func(t *testing.T) {
		f := newFixture(t)
		order, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentCash,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		f.burger.SalePrice = decimal.RequireFromString("99.90")
		require.NoError(t, f.store.Products().Save(ctx, f.burger))

		saved, err := f.service.Get(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		assert.True(t, saved.GrossTotal.Equal(decimal.RequireFromString("28.90")))
		assert.True(t, saved.Items[0].UnitPrice.Equal(decimal.RequireFromString("28.90")))
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    uuid.NewString(),
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		f := newFixture(t)
		f.burger.Active = false
		require.NoError(t, f.store.Products().Save(ctx, f.burger))

		_, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("rejects empty cart and bad quantity", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 0}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: "BARTER",
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestReplicateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes at current prices", func(t *testing.T) {
		f := newFixture(t)
		original, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
			Notes:         "sem cebola",
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		f.burger.SalePrice = decimal.RequireFromString("32.90")
		require.NoError(t, f.store.Products().Save(ctx, f.burger))

		replica, err := f.service.Replicate(ctx, f.tenantID, original.ID)
		require.NoError(t, err)
		assert.NotEqual(t, original.ID, replica.ID)
		assert.True(t, replica.GrossTotal.Equal(decimal.RequireFromString("32.90")))
		assert.Contains(t, replica.Notes, "[Replicado de")
		assert.Contains(t, replica.Notes, "sem cebola")
		assert.Equal(t, original.PaymentMethod, replica.PaymentMethod)

		text := f.notifier.wait(t)
		assert.Contains(t, text, "REPLICADO")
	})

	t.Run("aborts when a product went inactive", func(t *testing.T) {
		f := newFixture(t)
		original, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.fries.ID, Quantity: 2}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		f.fries.Active = false
		require.NoError(t, f.store.Products().Save(ctx, f.fries))

		_, err = f.service.Replicate(ctx, f.tenantID, original.ID)
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("status change notifies", func(t *testing.T) {
		f := newFixture(t)
		order, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		status := model.OrderStatusDelivered
		updated, err := f.service.Update(ctx, f.tenantID, order.ID, UpdateInput{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusDelivered, updated.Status)

		text := f.notifier.wait(t)
		assert.Contains(t, text, "ATUALIZADO")
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newFixture(t)
		order, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		status := "TELEPORTED"
		_, err = f.service.Update(ctx, f.tenantID, order.ID, UpdateInput{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("recent order is removed", func(t *testing.T) {
		f := newFixture(t)
		order, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		saved, err := f.store.Orders().FindByID(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		f.service.now = func() time.Time { return saved.CreatedAt.Add(time.Hour) }

		result, err := f.service.Delete(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		assert.False(t, result.Canceled)

		_, err = f.service.Get(ctx, f.tenantID, order.ID)
		assert.Error(t, err)
	})

	t.Run("old order is canceled instead", func(t *testing.T) {
		f := newFixture(t)
		order, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)

		saved, err := f.store.Orders().FindByID(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		f.service.now = func() time.Time { return saved.CreatedAt.Add(25 * time.Hour) }

		result, err := f.service.Delete(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		assert.True(t, result.Canceled)

		kept, err := f.service.Get(ctx, f.tenantID, order.ID)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusCanceled, kept.Status)
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.service.Create(ctx, f.tenantID, CreateInput{
			PlatformID:    f.platform.ID,
			PaymentMethod: model.PaymentPix,
			Items:         []ItemInput{{ProductID: f.burger.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		f.notifier.wait(t)
	}

	all, err := f.service.List(ctx, f.tenantID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	otherDay := time.Date(1999, 1, 1, 12, 0, 0, 0, time.UTC)
	none, err := f.service.List(ctx, f.tenantID, &otherDay)
	require.NoError(t, err)
	assert.Empty(t, none)
}

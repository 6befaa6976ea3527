package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"galaxia/internal/gateway/notifier"
	"galaxia/internal/logger"
	"galaxia/internal/pricing"
	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"github.com/google/uuid"
)

var (
	// ErrInvalidInput marks validation failures; handlers map it to 400.
	ErrInvalidInput = errors.New("pedido inválido")
	// ErrProductUnavailable is returned when a referenced product is
	// missing or inactive at computation time.
	ErrProductUnavailable = errors.New("produto indisponível")
)

// deleteWindow is how long an order stays hard-deletable. Older orders
// are only canceled, keeping the financial history intact.
const deleteWindow = 24 * time.Hour

// Service implementa o fluxo de pedidos: criação com totais congelados,
// replicação a preços atuais, atualização de status e cancelamento.
type Service struct {
	store    store.Store
	notifier notifier.TextNotifier
	now      func() time.Time
}

func NewService(st store.Store, tn notifier.TextNotifier) *Service {
	if tn == nil {
		tn = notifier.Noop{}
	}
	return &Service{store: st, notifier: tn, now: time.Now}
}

// ItemInput references a product by id; price and cost are resolved
// and frozen server-side, never taken from the client.
type ItemInput struct {
	ProductID string
	Quantity  int64
}

type CreateInput struct {
	PlatformID    string
	PaymentMethod string
	Items         []ItemInput
	Channel       string
	CustomerName  string
	Notes         string
}

func (in CreateInput) validate() error {
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: pelo menos um item é necessário", ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantidade deve ser >= 1", ErrInvalidInput)
		}
	}
	if !model.ValidPaymentMethod(in.PaymentMethod) {
		return fmt.Errorf("%w: forma de pagamento desconhecida (%s)", ErrInvalidInput, in.PaymentMethod)
	}
	return nil
}

// Create resolves products, freezes their current price/cost into line
// items, computes the order totals and persists everything atomically.
// The Telegram notice goes out after commit, best-effort.
func (s *Service) Create(ctx context.Context, tenantID string, in CreateInput) (*model.OrderModel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	platform, err := s.store.Platforms().FindByID(ctx, tenantID, in.PlatformID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: plataforma inválida", ErrInvalidInput)
		}
		return nil, err
	}

	items, lines, names, err := s.resolveItems(ctx, tenantID, in.Items)
	if err != nil {
		return nil, err
	}

	totals := pricing.ComputeOrderTotals(lines, platform.DefaultFeePercent)
	order := &model.OrderModel{
		ID:               uuid.NewString(),
		TenantID:         tenantID,
		PlatformID:       platform.ID,
		Status:           model.OrderStatusNew,
		PaymentMethod:    in.PaymentMethod,
		Channel:          in.Channel,
		CustomerName:     in.CustomerName,
		Notes:            in.Notes,
		GrossTotal:       totals.GrossTotal,
		TotalCost:        totals.TotalCost,
		PlatformFeeValue: totals.PlatformFeeValue,
		NetProfit:        totals.NetProfit,
		MarginPct:        totals.MarginPct,
		Items:            items,
	}
	if err := s.persist(ctx, order); err != nil {
		return nil, err
	}
	order.Platform = platform

	s.notifyAsync(newOrderMessage(order, platform.Name, names, s.now()))
	return order, nil
}

// Replicate recomputes an old order at today's prices. Products that
// disappeared or were deactivated since then abort the replication.
func (s *Service) Replicate(ctx context.Context, tenantID, orderID string) (*model.OrderModel, error) {
	original, err := s.store.Orders().FindByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, err
	}
	platform, err := s.store.Platforms().FindByID(ctx, tenantID, original.PlatformID)
	if err != nil {
		return nil, err
	}

	inputs := make([]ItemInput, 0, len(original.Items))
	for _, item := range original.Items {
		inputs = append(inputs, ItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	items, lines, names, err := s.resolveItems(ctx, tenantID, inputs)
	if err != nil {
		return nil, err
	}

	totals := pricing.ComputeOrderTotals(lines, platform.DefaultFeePercent)
	notes := strings.TrimSpace(fmt.Sprintf("[Replicado de %s] %s",
		original.CreatedAt.Format("02/01/2006"), original.Notes))
	order := &model.OrderModel{
		ID:               uuid.NewString(),
		TenantID:         tenantID,
		PlatformID:       platform.ID,
		Status:           model.OrderStatusNew,
		PaymentMethod:    original.PaymentMethod,
		Channel:          original.Channel,
		CustomerName:     original.CustomerName,
		Notes:            notes,
		GrossTotal:       totals.GrossTotal,
		TotalCost:        totals.TotalCost,
		PlatformFeeValue: totals.PlatformFeeValue,
		NetProfit:        totals.NetProfit,
		MarginPct:        totals.MarginPct,
		Items:            items,
	}
	if err := s.persist(ctx, order); err != nil {
		return nil, err
	}
	order.Platform = platform

	s.notifyAsync(replicatedOrderMessage(order, platform.Name, names, s.now()))
	return order, nil
}

// resolveItems loads the referenced products and freezes their current
// price/cost. Every product must exist, belong to the tenant and be
// active.
func (s *Service) resolveItems(ctx context.Context, tenantID string, inputs []ItemInput) ([]model.OrderItemModel, []pricing.LineItem, []string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ProductID)
	}
	products, err := s.store.Products().FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, nil, nil, err
	}
	byID := make(map[string]model.ProductModel, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]model.OrderItemModel, 0, len(inputs))
	lines := make([]pricing.LineItem, 0, len(inputs))
	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		product, ok := byID[in.ProductID]
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: produto %s não encontrado", ErrProductUnavailable, in.ProductID)
		}
		if !product.Active {
			return nil, nil, nil, fmt.Errorf("%w: produto %q não está mais disponível", ErrProductUnavailable, product.Name)
		}
		items = append(items, model.OrderItemModel{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Quantity:  in.Quantity,
			UnitPrice: product.SalePrice,
			UnitCost:  product.EstimatedCost,
		})
		lines = append(lines, pricing.LineItem{
			UnitPrice: product.SalePrice,
			UnitCost:  product.EstimatedCost,
			Quantity:  in.Quantity,
		})
		names = append(names, fmt.Sprintf("• %s (%dx)", product.Name, in.Quantity))
	}
	return items, lines, names, nil
}

func (s *Service) persist(ctx context.Context, order *model.OrderModel) error {
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	uow, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	if err := uow.Orders().Create(ctx, order); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (s *Service) Get(ctx context.Context, tenantID, id string) (*model.OrderModel, error) {
	return s.store.Orders().FindByID(ctx, tenantID, id)
}

// List returns the tenant's orders, newest first, optionally limited
// to a single day.
func (s *Service) List(ctx context.Context, tenantID string, day *time.Time) ([]model.OrderModel, error) {
	filter := store.OrderListFilter{}
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.Add(24*time.Hour - time.Nanosecond)
		filter.From = &start
		filter.To = &end
	}
	return s.store.Orders().List(ctx, tenantID, filter)
}

// UpdateInput applies only the fields that are present. Totals are
// frozen and cannot be edited.
type UpdateInput struct {
	Status        *string
	PaymentMethod *string
	CustomerName  *string
	Notes         *string
}

func (s *Service) Update(ctx context.Context, tenantID, id string, in UpdateInput) (*model.OrderModel, error) {
	order, err := s.store.Orders().FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	previousStatus := order.Status
	if in.Status != nil {
		if !model.ValidOrderStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status desconhecido (%s)", ErrInvalidInput, *in.Status)
		}
		order.Status = *in.Status
	}
	if in.PaymentMethod != nil {
		if !model.ValidPaymentMethod(*in.PaymentMethod) {
			return nil, fmt.Errorf("%w: forma de pagamento desconhecida (%s)", ErrInvalidInput, *in.PaymentMethod)
		}
		order.PaymentMethod = *in.PaymentMethod
	}
	if in.CustomerName != nil {
		order.CustomerName = *in.CustomerName
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if err := s.store.Orders().Save(ctx, order); err != nil {
		return nil, err
	}

	if order.Status != previousStatus {
		platformName := ""
		if order.Platform != nil {
			platformName = order.Platform.Name
		}
		s.notifyAsync(statusChangedMessage(order, platformName, s.now()))
	}
	return order, nil
}

// DeleteResult tells the caller whether the order was removed or only
// canceled.
type DeleteResult struct {
	Canceled bool
	Message  string
}

// Delete removes recent orders outright; orders older than 24h are
// canceled instead so reports stay auditable.
func (s *Service) Delete(ctx context.Context, tenantID, id string) (DeleteResult, error) {
	order, err := s.store.Orders().FindByID(ctx, tenantID, id)
	if err != nil {
		return DeleteResult{}, err
	}
	if s.now().Sub(order.CreatedAt) < deleteWindow {
		if err := s.store.Orders().Delete(ctx, tenantID, id); err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Message: "Pedido excluído com sucesso"}, nil
	}
	order.Status = model.OrderStatusCanceled
	if err := s.store.Orders().Save(ctx, order); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{
		Canceled: true,
		Message:  "Pedido cancelado (pedidos com mais de 24h não podem ser excluídos)",
	}, nil
}

// notifyAsync fires the notification on its own goroutine. Failures
// are logged and swallowed; order flow never depends on Telegram.
func (s *Service) notifyAsync(msg notifier.StructuredMessage) {
	go func() {
		if err := s.notifier.SendText(msg.RenderMarkdown()); err != nil {
			logger.Warnf("notificação telegram falhou: %v", err)
		}
	}()
}

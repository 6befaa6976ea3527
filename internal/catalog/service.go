package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"galaxia/internal/pricing"
	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks validation failures; handlers map it to 400.
var ErrInvalidInput = errors.New("entrada inválida")

// Service implementa as regras de catálogo: produtos e plataformas.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// ProductInput carries the fields of a product create/update.
type ProductInput struct {
	Name          string
	SalePrice     decimal.Decimal
	EstimatedCost decimal.Decimal
	Active        *bool
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: nome do produto é obrigatório", ErrInvalidInput)
	}
	if in.SalePrice.Sign() < 0 {
		return fmt.Errorf("%w: preço de venda não pode ser negativo", ErrInvalidInput)
	}
	if in.EstimatedCost.Sign() < 0 {
		return fmt.Errorf("%w: custo estimado não pode ser negativo", ErrInvalidInput)
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, tenantID string, in ProductInput) (*model.ProductModel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	product := &model.ProductModel{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		Name:          strings.TrimSpace(in.Name),
		SalePrice:     in.SalePrice,
		EstimatedCost: in.EstimatedCost,
		Active:        active,
	}
	if err := s.store.Products().Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ProductUpdate applies only the fields that are present.
type ProductUpdate struct {
	Name          *string
	SalePrice     *decimal.Decimal
	EstimatedCost *decimal.Decimal
	Active        *bool
}

func (s *Service) UpdateProduct(ctx context.Context, tenantID, id string, in ProductUpdate) (*model.ProductModel, error) {
	product, err := s.store.Products().FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: nome do produto é obrigatório", ErrInvalidInput)
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.SalePrice != nil {
		if in.SalePrice.Sign() < 0 {
			return nil, fmt.Errorf("%w: preço de venda não pode ser negativo", ErrInvalidInput)
		}
		product.SalePrice = *in.SalePrice
	}
	if in.EstimatedCost != nil {
		if in.EstimatedCost.Sign() < 0 {
			return nil, fmt.Errorf("%w: custo estimado não pode ser negativo", ErrInvalidInput)
		}
		product.EstimatedCost = *in.EstimatedCost
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if err := s.store.Products().Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, tenantID, id string) (*model.ProductModel, error) {
	return s.store.Products().FindByID(ctx, tenantID, id)
}

func (s *Service) ListProducts(ctx context.Context, tenantID string) ([]model.ProductModel, error) {
	return s.store.Products().List(ctx, tenantID, false)
}

// DeleteProduct removes a product, or deactivates it when order items
// still reference it (history must keep resolving product names).
// The returned bool is true when the product was deactivated.
func (s *Service) DeleteProduct(ctx context.Context, tenantID, id string) (bool, error) {
	product, err := s.store.Products().FindByID(ctx, tenantID, id)
	if err != nil {
		return false, err
	}
	referenced, err := s.store.Orders().CountItemsByProduct(ctx, id)
	if err != nil {
		return false, err
	}
	if referenced > 0 {
		product.Active = false
		if err := s.store.Products().Save(ctx, product); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, s.store.Products().Delete(ctx, tenantID, id)
}

// PreviewPrice is the live suggested-price preview for the product
// form: given a cost and fee, the price that reaches the margin target.
func (s *Service) PreviewPrice(unitCost, feeRate, targetMarginPct decimal.Decimal) decimal.Decimal {
	return pricing.SuggestPrice(unitCost, feeRate, targetMarginPct)
}

// PlatformInput carries the fields of a platform create.
type PlatformInput struct {
	Name              string
	Type              string
	DefaultFeePercent decimal.Decimal
	Active            *bool
}

func (in PlatformInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: nome da plataforma é obrigatório", ErrInvalidInput)
	}
	if !model.ValidPlatformType(in.Type) {
		return fmt.Errorf("%w: tipo de plataforma desconhecido (%s)", ErrInvalidInput, in.Type)
	}
	if in.DefaultFeePercent.Sign() < 0 || in.DefaultFeePercent.Cmp(decimal.NewFromInt(1)) > 0 {
		return fmt.Errorf("%w: taxa deve ser uma fração entre 0 e 1", ErrInvalidInput)
	}
	return nil
}

func (s *Service) CreatePlatform(ctx context.Context, tenantID string, in PlatformInput) (*model.PlatformModel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	platform := &model.PlatformModel{
		ID:                uuid.NewString(),
		TenantID:          tenantID,
		Name:              strings.TrimSpace(in.Name),
		Type:              in.Type,
		DefaultFeePercent: in.DefaultFeePercent,
		Active:            active,
	}
	if err := s.store.Platforms().Create(ctx, platform); err != nil {
		return nil, err
	}
	return platform, nil
}

func (s *Service) ListPlatforms(ctx context.Context, tenantID string) ([]model.PlatformModel, error) {
	return s.store.Platforms().List(ctx, tenantID)
}

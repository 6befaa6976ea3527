package insights

import (
	"context"
	"encoding/json"
	"errors"

	"galaxia/internal/config/loader"
	"galaxia/internal/logger"
	"galaxia/internal/pricing"
	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary agrega o estado do portfólio para o painel do assistente.
type Summary struct {
	TotalProducts      int             `json:"totalProducts"`
	ProductsWithIssues int             `json:"productsWithIssues"`
	LosingMoneyCount   int             `json:"losingMoneyCount"`
	LowMarginCount     int             `json:"lowMarginCount"`
	TotalPotentialLoss decimal.Decimal `json:"totalPotentialLoss"`
	HealthScore        int             `json:"healthScore"`
}

// ProductAdvice is one per-product recommendation row.
type ProductAdvice struct {
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	CurrentPrice    decimal.Decimal `json:"currentPrice"`
	SuggestedPrice  decimal.Decimal `json:"suggestedPrice"`
	CurrentMargin   decimal.Decimal `json:"currentMargin"`
	PotentialProfit decimal.Decimal `json:"potentialProfit"`
	Message         string          `json:"message"`
	Kind            pricing.Health  `json:"type"`
}

// Insights is the full assistant payload.
type Insights struct {
	Summary         Summary                  `json:"summary"`
	LosingMoney     []pricing.LossEntry      `json:"losingMoney"`
	LowMargin       []pricing.LowMarginEntry `json:"lowMargin"`
	Recommendations []ProductAdvice          `json:"recommendations"`
}

// Service roda o assistente financeiro sobre o catálogo do tenant.
type Service struct {
	store    store.Store
	settings *loader.AssistantLoader
}

func NewService(st store.Store, settings *loader.AssistantLoader) *Service {
	return &Service{store: st, settings: settings}
}

func emptyInsights() *Insights {
	return &Insights{
		Summary: Summary{
			TotalPotentialLoss: decimal.Zero,
			HealthScore:        100,
		},
		LosingMoney:     []pricing.LossEntry{},
		LowMargin:       []pricing.LowMarginEntry{},
		Recommendations: []ProductAdvice{},
	}
}

// Generate analyzes the tenant's active products against the fee of
// its first active platform (or the configured default when none
// exists) and archives the resulting payload.
func (s *Service) Generate(ctx context.Context, tenantID string) (*Insights, error) {
	settings := s.settings.Snapshot()

	feeRate := settings.DefaultFeePercent
	if platform, err := s.store.Platforms().FirstActive(ctx, tenantID); err == nil {
		feeRate = platform.DefaultFeePercent
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	products, err := s.store.Products().List(ctx, tenantID, true)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return emptyInsights(), nil
	}

	snapshots := make([]pricing.ProductSnapshot, 0, len(products))
	for _, p := range products {
		snapshots = append(snapshots, pricing.ProductSnapshot{
			ID:            p.ID,
			Name:          p.Name,
			SalePrice:     p.SalePrice,
			EstimatedCost: p.EstimatedCost,
		})
	}

	target := settings.TargetMarginPercent
	analysis := pricing.AnalyzePortfolio(snapshots, feeRate, target)

	advice := make([]ProductAdvice, 0, analysis.Flagged())
	for _, p := range products {
		rec, flagged := pricing.Recommend(p.Name, p.SalePrice, p.EstimatedCost, feeRate, target)
		if !flagged {
			continue
		}
		advice = append(advice, ProductAdvice{
			ProductID:       p.ID,
			ProductName:     p.Name,
			CurrentPrice:    p.SalePrice,
			SuggestedPrice:  rec.SuggestedPrice,
			CurrentMargin:   rec.CurrentMargin,
			PotentialProfit: rec.PotentialProfit,
			Message:         rec.Message,
			Kind:            rec.Kind,
		})
	}

	result := &Insights{
		Summary: Summary{
			TotalProducts:      len(products),
			ProductsWithIssues: analysis.Flagged(),
			LosingMoneyCount:   len(analysis.LosingMoney),
			LowMarginCount:     len(analysis.LowMargin),
			TotalPotentialLoss: analysis.TotalPotentialLoss,
			HealthScore:        pricing.HealthScore(len(products), analysis.Flagged()),
		},
		LosingMoney:     analysis.LosingMoney,
		LowMargin:       analysis.LowMargin,
		Recommendations: advice,
	}

	s.archive(ctx, tenantID, result)
	return result, nil
}

// archive stores the payload for later inspection. A failed archive
// never fails the request.
func (s *Service) archive(ctx context.Context, tenantID string, result *Insights) {
	payload, err := json.Marshal(result)
	if err != nil {
		logger.Warnf("insight report marshal failed: %v", err)
		return
	}
	report := &model.InsightReportModel{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		HealthScore: result.Summary.HealthScore,
		Payload:     payload,
	}
	if err := s.store.Reports().Insert(ctx, report); err != nil {
		logger.Warnf("insight report insert failed: %v", err)
	}
}

// History lists recently archived reports, newest first.
func (s *Service) History(ctx context.Context, tenantID string, limit int) ([]model.InsightReportModel, error) {
	return s.store.Reports().ListRecent(ctx, tenantID, limit)
}

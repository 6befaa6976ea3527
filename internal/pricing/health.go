package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Health classifies the financial state of a single product.
type Health string

const (
	HealthHealthy   Health = "healthy"
	HealthLowMargin Health = "low_margin"
	HealthLoss      Health = "loss"
)

// Recommendation is the assistant's advice for a flagged product.
// Kind is never HealthHealthy: healthy products produce no recommendation.
type Recommendation struct {
	Kind            Health          `json:"type"`
	Message         string          `json:"message"`
	SuggestedPrice  decimal.Decimal `json:"suggestedPrice"`
	CurrentMargin   decimal.Decimal `json:"currentMargin"`
	PotentialProfit decimal.Decimal `json:"potentialProfit"`
}

// Classify runs the tri-state product health check.
// A negative profit is always a loss, checked before the margin
// threshold so a zero-revenue product cannot slip through as low_margin.
func Classify(salePrice, unitCost, feeRate, targetMarginPct decimal.Decimal) Health {
	fee := PlatformFee(salePrice, feeRate)
	profit := NetProfit(salePrice, unitCost, fee)
	if profit.Sign() < 0 {
		return HealthLoss
	}
	if MarginPercent(profit, salePrice).Cmp(targetMarginPct) < 0 {
		return HealthLowMargin
	}
	return HealthHealthy
}

// UnitLoss returns the per-unit loss of a product, or zero when the
// product is not losing money.
func UnitLoss(salePrice, unitCost, feeRate decimal.Decimal) decimal.Decimal {
	profit := NetProfit(salePrice, unitCost, PlatformFee(salePrice, feeRate))
	if profit.Sign() < 0 {
		return profit.Neg()
	}
	return decimal.Zero
}

// Recommend builds the assistant recommendation for a product.
// The second return is false when the product is healthy.
// PotentialProfit is the profit the product would make at the suggested
// price, not at the current one.
func Recommend(name string, salePrice, unitCost, feeRate, targetMarginPct decimal.Decimal) (Recommendation, bool) {
	health := Classify(salePrice, unitCost, feeRate, targetMarginPct)
	if health == HealthHealthy {
		return Recommendation{}, false
	}

	currentProfit := NetProfit(salePrice, unitCost, PlatformFee(salePrice, feeRate))
	currentMargin := MarginPercent(currentProfit, salePrice)
	suggested := SuggestPrice(unitCost, feeRate, targetMarginPct)
	potential := NetProfit(suggested, unitCost, PlatformFee(suggested, feeRate))

	rec := Recommendation{
		Kind:            health,
		SuggestedPrice:  suggested,
		CurrentMargin:   currentMargin,
		PotentialProfit: potential,
	}
	switch health {
	case HealthLoss:
		loss := UnitLoss(salePrice, unitCost, feeRate)
		rec.Message = fmt.Sprintf("⚠️ %s está gerando prejuízo de %s por unidade. Reajuste urgente necessário!",
			name, loss.StringFixed(2))
	case HealthLowMargin:
		rec.Message = fmt.Sprintf("📊 %s tem margem baixa (%s%%). Considere aumentar o preço para melhorar a rentabilidade.",
			name, currentMargin.StringFixed(1))
	}
	return rec, true
}

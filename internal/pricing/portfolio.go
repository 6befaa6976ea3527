package pricing

import "github.com/shopspring/decimal"

// ProductSnapshot is a read-only view of a product for analysis.
// It carries no persistence concerns; callers pass fresh copies.
type ProductSnapshot struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
}

// LossEntry is a product currently sold at a loss.
type LossEntry struct {
	Product        ProductSnapshot `json:"product"`
	Loss           decimal.Decimal `json:"loss"`
	Recommendation Recommendation  `json:"recommendation"`
}

// LowMarginEntry is a product below the target margin.
// Margin is on the percent scale (0-100), same as Recommendation.
type LowMarginEntry struct {
	Product        ProductSnapshot `json:"product"`
	Margin         decimal.Decimal `json:"margin"`
	Recommendation Recommendation  `json:"recommendation"`
}

// Analysis partitions a portfolio into the products that need attention.
// Healthy products are omitted. Both lists follow the input iteration
// order; callers that want severity ordering must sort themselves.
type Analysis struct {
	LosingMoney        []LossEntry      `json:"losingMoney"`
	LowMargin          []LowMarginEntry `json:"lowMargin"`
	TotalPotentialLoss decimal.Decimal  `json:"totalPotentialLoss"`
}

// AnalyzePortfolio classifies every product independently and
// aggregates the per-unit losses of the losing ones.
func AnalyzePortfolio(products []ProductSnapshot, feeRate, targetMarginPct decimal.Decimal) Analysis {
	analysis := Analysis{
		LosingMoney:        []LossEntry{},
		LowMargin:          []LowMarginEntry{},
		TotalPotentialLoss: decimal.Zero,
	}
	for _, p := range products {
		rec, flagged := Recommend(p.Name, p.SalePrice, p.EstimatedCost, feeRate, targetMarginPct)
		if !flagged {
			continue
		}
		switch rec.Kind {
		case HealthLoss:
			loss := UnitLoss(p.SalePrice, p.EstimatedCost, feeRate)
			analysis.LosingMoney = append(analysis.LosingMoney, LossEntry{
				Product:        p,
				Loss:           loss,
				Recommendation: rec,
			})
			analysis.TotalPotentialLoss = analysis.TotalPotentialLoss.Add(loss)
		case HealthLowMargin:
			analysis.LowMargin = append(analysis.LowMargin, LowMarginEntry{
				Product:        p,
				Margin:         rec.CurrentMargin,
				Recommendation: rec,
			})
		}
	}
	return analysis
}

// Flagged returns how many products the analysis singled out.
func (a Analysis) Flagged() int {
	return len(a.LosingMoney) + len(a.LowMargin)
}

// HealthScore is the share of unflagged products, rounded to an int
// percentage. An empty portfolio scores 100.
func HealthScore(total, flagged int) int {
	if total <= 0 {
		return 100
	}
	score := decimal.NewFromInt(int64(total - flagged)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decHundred).
		Round(0)
	return int(score.IntPart())
}

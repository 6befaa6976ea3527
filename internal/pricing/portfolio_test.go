package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePortfolio() []ProductSnapshot {
	return []ProductSnapshot{
		// loss: fee 2.3, profit -1.3
		{ID: "a", Name: "Refrigerante", SalePrice: dec("10"), EstimatedCost: dec("9")},
		// low margin: fee 4.6, profit 0.4, margin 2%
		{ID: "b", Name: "X-Bacon", SalePrice: dec("20"), EstimatedCost: dec("15")},
		// healthy: fee 6.9, profit 11.1, margin 37%
		{ID: "c", Name: "Combo", SalePrice: dec("30"), EstimatedCost: dec("12")},
	}
}

func TestAnalyzePortfolioPartitions(t *testing.T) {
	analysis := AnalyzePortfolio(samplePortfolio(), dec("0.23"), dec("30"))

	require.Len(t, analysis.LosingMoney, 1)
	require.Len(t, analysis.LowMargin, 1)
	assert.Equal(t, "a", analysis.LosingMoney[0].Product.ID)
	assert.Equal(t, "b", analysis.LowMargin[0].Product.ID)
	assert.True(t, analysis.TotalPotentialLoss.Equal(dec("1.3")),
		"total loss = %s", analysis.TotalPotentialLoss)

	// healthy product appears in neither list
	for _, e := range analysis.LosingMoney {
		assert.NotEqual(t, "c", e.Product.ID)
	}
	for _, e := range analysis.LowMargin {
		assert.NotEqual(t, "c", e.Product.ID)
	}
}

func TestAnalyzePortfolioKeepsInputOrder(t *testing.T) {
	products := []ProductSnapshot{
		{ID: "p1", Name: "Um", SalePrice: dec("10"), EstimatedCost: dec("9")},
		{ID: "p2", Name: "Dois", SalePrice: dec("5"), EstimatedCost: dec("8")},
		{ID: "p3", Name: "Três", SalePrice: dec("1"), EstimatedCost: dec("20")},
	}
	analysis := AnalyzePortfolio(products, dec("0.23"), dec("30"))
	require.Len(t, analysis.LosingMoney, 3)
	assert.Equal(t, "p1", analysis.LosingMoney[0].Product.ID)
	assert.Equal(t, "p2", analysis.LosingMoney[1].Product.ID)
	assert.Equal(t, "p3", analysis.LosingMoney[2].Product.ID)
}

func TestAnalyzePortfolioLowMarginUsesPercentScale(t *testing.T) {
	analysis := AnalyzePortfolio(samplePortfolio(), dec("0.23"), dec("30"))
	require.Len(t, analysis.LowMargin, 1)
	entry := analysis.LowMargin[0]
	// 2, not 0.02: both the entry and its recommendation share the
	// percent scale.
	assert.True(t, entry.Margin.Equal(dec("2")), "margin = %s", entry.Margin)
	assert.True(t, entry.Margin.Equal(entry.Recommendation.CurrentMargin))
}

func TestAnalyzePortfolioEmpty(t *testing.T) {
	analysis := AnalyzePortfolio(nil, dec("0.23"), dec("30"))
	assert.Empty(t, analysis.LosingMoney)
	assert.Empty(t, analysis.LowMargin)
	assert.True(t, analysis.TotalPotentialLoss.IsZero())
	assert.Equal(t, 0, analysis.Flagged())
}

func TestHealthScore(t *testing.T) {
	assert.Equal(t, 100, HealthScore(0, 0))
	assert.Equal(t, 100, HealthScore(5, 0))
	assert.Equal(t, 0, HealthScore(4, 4))
	// 2/3 = 66.67% -> 67
	assert.Equal(t, 67, HealthScore(3, 1))
	// 1/3 = 33.3% -> 33
	assert.Equal(t, 33, HealthScore(3, 2))
}

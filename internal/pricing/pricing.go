package pricing

import "github.com/shopspring/decimal"

// Cálculos financeiros da Galáxia Gourmet.
// Todas as fórmulas são puras e determinísticas: mesma entrada, mesma saída.
// Money values are decimal throughout; float64 never touches currency math.

var (
	decOne     = decimal.NewFromInt(1)
	decHundred = decimal.NewFromInt(100)

	// fallbackMarkup is applied by SuggestPrice when fee + target margin
	// consume the whole price and the algebraic solution is impossible.
	fallbackMarkup = decimal.RequireFromString("1.5")

	// DefaultTargetMarginPercent is the margin target assumed when the
	// caller does not carry an explicit one (30%).
	DefaultTargetMarginPercent = decimal.NewFromInt(30)
)

// PlatformFee returns the platform's cut of the gross total.
// feeRate is a fraction in [0,1]; out-of-range values are a caller error.
func PlatformFee(grossTotal, feeRate decimal.Decimal) decimal.Decimal {
	return grossTotal.Mul(feeRate)
}

// NetProfit returns gross minus cost of goods minus platform fee.
// May be negative (loss).
func NetProfit(grossTotal, totalCost, platformFee decimal.Decimal) decimal.Decimal {
	return grossTotal.Sub(totalCost).Sub(platformFee)
}

// MarginPercent returns net profit as a percentage of the gross total.
// Zero gross yields margin 0, never a division error.
func MarginPercent(netProfit, grossTotal decimal.Decimal) decimal.Decimal {
	if grossTotal.IsZero() {
		return decimal.Zero
	}
	return netProfit.Div(grossTotal).Mul(decHundred)
}

// SuggestPrice solves price = cost / (1 - feeRate - targetMarginPct/100),
// the price needed to reach the target margin after the platform fee.
//
// When the denominator is <= 0 the target is mathematically unreachable
// (fee + margem >= 100%); the function falls back to cost × 1.5. O valor
// de fallback é uma heurística grosseira, não um preço de mercado.
//
// The result is rounded to 2 decimal places, half away from zero.
func SuggestPrice(unitCost, feeRate, targetMarginPct decimal.Decimal) decimal.Decimal {
	denominator := decOne.Sub(feeRate).Sub(targetMarginPct.Div(decHundred))
	if denominator.Sign() <= 0 {
		return unitCost.Mul(fallbackMarkup).Round(2)
	}
	return unitCost.Div(denominator).Round(2)
}

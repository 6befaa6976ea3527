package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPlatformFee(t *testing.T) {
	fee := PlatformFee(dec("100"), dec("0.23"))
	assert.True(t, fee.Equal(dec("23")), "fee = %s", fee)
}

func TestNetProfit(t *testing.T) {
	profit := NetProfit(dec("100"), dec("40"), dec("23"))
	assert.True(t, profit.Equal(dec("37")), "profit = %s", profit)
}

func TestNetProfitCanBeNegative(t *testing.T) {
	profit := NetProfit(dec("10"), dec("9"), dec("2.3"))
	assert.True(t, profit.Equal(dec("-1.3")), "profit = %s", profit)
}

func TestMarginPercent(t *testing.T) {
	margin := MarginPercent(dec("37"), dec("100"))
	assert.True(t, margin.Equal(dec("37")), "margin = %s", margin)
}

func TestMarginPercentZeroGross(t *testing.T) {
	for _, profit := range []string{"0", "10", "-5.5"} {
		margin := MarginPercent(dec(profit), decimal.Zero)
		assert.True(t, margin.IsZero(), "profit=%s margin=%s", profit, margin)
	}
}

func TestSuggestPrice(t *testing.T) {
	// 12 / (1 - 0.23 - 0.30) = 12 / 0.47 = 25.5319... -> 25.53
	price := SuggestPrice(dec("12"), dec("0.23"), dec("30"))
	assert.True(t, price.Equal(dec("25.53")), "price = %s", price)
}

func TestSuggestPriceRoundsHalfUp(t *testing.T) {
	// 10 / 0.8 = 12.5 exactly; a half-cent input must round away from zero.
	price := SuggestPrice(dec("10.004"), dec("0"), dec("0"))
	assert.True(t, price.Equal(dec("10.00")), "price = %s", price)
	price = SuggestPrice(dec("10.005"), dec("0"), dec("0"))
	assert.True(t, price.Equal(dec("10.01")), "price = %s", price)
}

func TestSuggestPriceDegenerateDenominator(t *testing.T) {
	// denominator = 1 - 0.6 - 0.5 = -0.1 -> fallback cost * 1.5
	price := SuggestPrice(dec("10"), dec("0.6"), dec("50"))
	assert.True(t, price.Equal(dec("15")), "price = %s", price)

	// exactly zero denominator also falls back
	price = SuggestPrice(dec("10"), dec("0.7"), dec("30"))
	assert.True(t, price.Equal(dec("15")), "price = %s", price)
}

func TestPricingIsIdempotent(t *testing.T) {
	first := SuggestPrice(dec("12.34"), dec("0.23"), dec("30"))
	second := SuggestPrice(dec("12.34"), dec("0.23"), dec("30"))
	require.True(t, first.Equal(second))
	assert.Equal(t, first.String(), second.String())
}

package pricing

import "github.com/shopspring/decimal"

// LineItem is one resolved order line. UnitPrice and UnitCost are
// snapshots frozen by the caller at resolution time; the calculator
// never looks products up again.
type LineItem struct {
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	Quantity  int64
}

// OrderTotals is the derived profitability of a whole order.
// It is recomputed from scratch on any input change.
type OrderTotals struct {
	GrossTotal       decimal.Decimal `json:"grossTotal"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	PlatformFeeValue decimal.Decimal `json:"platformFeeValue"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	MarginPct        decimal.Decimal `json:"marginPct"`
}

// ComputeOrderTotals applies the pricing formulas to a cart.
// Items must already be resolved and valid; missing or inactive
// products are rejected upstream by the store lookup.
func ComputeOrderTotals(items []LineItem, feeRate decimal.Decimal) OrderTotals {
	gross := decimal.Zero
	cost := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(item.Quantity)
		gross = gross.Add(item.UnitPrice.Mul(qty))
		cost = cost.Add(item.UnitCost.Mul(qty))
	}
	fee := PlatformFee(gross, feeRate)
	profit := NetProfit(gross, cost, fee)
	return OrderTotals{
		GrossTotal:       gross,
		TotalCost:        cost,
		PlatformFeeValue: fee,
		NetProfit:        profit,
		MarginPct:        MarginPercent(profit, gross),
	}
}

package reports

import (
	"context"
	"sort"
	"time"

	"galaxia/internal/store"
	"galaxia/internal/store/model"

	"github.com/shopspring/decimal"
)

// Summary agrega a operação de um período.
type Summary struct {
	OrdersCount  int             `json:"ordersCount"`
	GrossRevenue decimal.Decimal `json:"grossRevenue"`
	FeesTotal    decimal.Decimal `json:"feesTotal"`
	CostsTotal   decimal.Decimal `json:"costsTotal"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	AvgMargin    decimal.Decimal `json:"avgMargin"`
}

// DailyPoint is one day of the series behind the dashboard chart.
type DailyPoint struct {
	Date  string          `json:"date"`
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
	Count int             `json:"count"`
}

// Result pairs the aggregate with its daily breakdown.
type Result struct {
	Summary     Summary      `json:"summary"`
	DailySeries []DailyPoint `json:"dailySeries"`
}

// Query narrows the reporting window.
type Query struct {
	From   *time.Time
	To     *time.Time
	Status string
}

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Summarize aggregates the tenant's orders. Canceled orders are left
// out unless the caller filters for them explicitly.
func (s *Service) Summarize(ctx context.Context, tenantID string, q Query) (*Result, error) {
	filter := store.OrderListFilter{Status: q.Status}
	if q.From != nil {
		start := time.Date(q.From.Year(), q.From.Month(), q.From.Day(), 0, 0, 0, 0, q.From.Location())
		filter.From = &start
	}
	if q.To != nil {
		end := time.Date(q.To.Year(), q.To.Month(), q.To.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), q.To.Location())
		filter.To = &end
	}
	orders, err := s.store.Orders().List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	summary := Summary{
		GrossRevenue: decimal.Zero,
		FeesTotal:    decimal.Zero,
		CostsTotal:   decimal.Zero,
		NetProfit:    decimal.Zero,
		AvgMargin:    decimal.Zero,
	}
	daily := make(map[string]*DailyPoint)
	for _, o := range orders {
		if q.Status == "" && o.Status == model.OrderStatusCanceled {
			continue
		}
		summary.OrdersCount++
		summary.GrossRevenue = summary.GrossRevenue.Add(o.GrossTotal)
		summary.FeesTotal = summary.FeesTotal.Add(o.PlatformFeeValue)
		summary.CostsTotal = summary.CostsTotal.Add(o.TotalCost)
		summary.NetProfit = summary.NetProfit.Add(o.NetProfit)

		date := o.CreatedAt.Format("2006-01-02")
		point, ok := daily[date]
		if !ok {
			point = &DailyPoint{Date: date, Gross: decimal.Zero, Net: decimal.Zero}
			daily[date] = point
		}
		point.Gross = point.Gross.Add(o.GrossTotal)
		point.Net = point.Net.Add(o.NetProfit)
		point.Count++
	}
	if summary.GrossRevenue.Sign() > 0 {
		summary.AvgMargin = summary.NetProfit.Div(summary.GrossRevenue).Mul(decimal.NewFromInt(100))
	}

	series := make([]DailyPoint, 0, len(daily))
	for _, point := range daily {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	return &Result{Summary: summary, DailySeries: series}, nil
}

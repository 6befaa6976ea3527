package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status de pedido, congelado no mesmo vocabulário da UI.
const (
	OrderStatusNew            = "NEW"
	OrderStatusConfirmed      = "CONFIRMED"
	OrderStatusPreparing      = "PREPARING"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCanceled       = "CANCELED"
)

const (
	PaymentPix    = "PIX"
	PaymentCredit = "CREDIT"
	PaymentDebit  = "DEBIT"
	PaymentCash   = "CASH"
	PaymentOther  = "OTHER"
)

const (
	PlatformTypeDelivery    = "DELIVERY"
	PlatformTypeManual      = "MANUAL"
	PlatformTypeMarketplace = "MARKETPLACE"
)

type TenantModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Plan      string    `gorm:"column:plan" json:"plan"`
	Active    bool      `gorm:"column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (TenantModel) TableName() string { return "tenants" }

type PlatformModel struct {
	ID                string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	TenantID          string          `gorm:"column:tenant_id;index" json:"tenantId"`
	Name              string          `gorm:"column:name" json:"name"`
	Type              string          `gorm:"column:type" json:"type"`
	DefaultFeePercent decimal.Decimal `gorm:"column:default_fee_percent;type:decimal(6,4)" json:"defaultFeePercent"`
	Active            bool            `gorm:"column:active" json:"active"`
	CreatedAt         time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"column:updated_at" json:"updatedAt"`
}

func (PlatformModel) TableName() string { return "platforms" }

type ProductModel struct {
	ID            string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	TenantID      string          `gorm:"column:tenant_id;index" json:"tenantId"`
	Name          string          `gorm:"column:name" json:"name"`
	SalePrice     decimal.Decimal `gorm:"column:sale_price;type:decimal(12,2)" json:"salePrice"`
	EstimatedCost decimal.Decimal `gorm:"column:estimated_cost;type:decimal(12,2)" json:"estimatedCost"`
	Active        bool            `gorm:"column:active" json:"active"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"column:updated_at" json:"updatedAt"`
}

func (ProductModel) TableName() string { return "products" }

// OrderModel freezes the profitability computed at creation time.
// Totals are never recalculated retroactively; replication creates a
// new order with fresh numbers instead.
type OrderModel struct {
	ID               string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	TenantID         string          `gorm:"column:tenant_id;index" json:"tenantId"`
	PlatformID       string          `gorm:"column:platform_id;index" json:"platformId"`
	Status           string          `gorm:"column:status" json:"status"`
	PaymentMethod    string          `gorm:"column:payment_method" json:"paymentMethod"`
	Channel          string          `gorm:"column:channel" json:"channel,omitempty"`
	CustomerName     string          `gorm:"column:customer_name" json:"customerName,omitempty"`
	Notes            string          `gorm:"column:notes" json:"notes,omitempty"`
	GrossTotal       decimal.Decimal `gorm:"column:gross_total;type:decimal(12,2)" json:"grossTotal"`
	TotalCost        decimal.Decimal `gorm:"column:total_cost;type:decimal(12,2)" json:"totalCost"`
	PlatformFeeValue decimal.Decimal `gorm:"column:platform_fee_value;type:decimal(12,2)" json:"platformFeeValue"`
	NetProfit        decimal.Decimal `gorm:"column:net_profit;type:decimal(12,2)" json:"netProfit"`
	MarginPct        decimal.Decimal `gorm:"column:margin_pct;type:decimal(8,4)" json:"marginPct"`
	CreatedAt        time.Time       `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"column:updated_at" json:"updatedAt"`

	Items    []OrderItemModel `gorm:"foreignKey:OrderID" json:"items"`
	Platform *PlatformModel   `gorm:"foreignKey:PlatformID" json:"platform,omitempty"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel snapshots unit price and cost at order creation so
// later product edits do not rewrite history.
type OrderItemModel struct {
	ID        string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	OrderID   string          `gorm:"column:order_id;index" json:"orderId"`
	ProductID string          `gorm:"column:product_id;index" json:"productId"`
	Quantity  int64           `gorm:"column:quantity" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2)" json:"unitPrice"`
	UnitCost  decimal.Decimal `gorm:"column:unit_cost;type:decimal(12,2)" json:"unitCost"`

	Product *ProductModel `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItemModel) TableName() string { return "order_items" }

// InsightReportModel archives the assistant payload generated for a
// tenant, for later inspection of how the portfolio evolved.
type InsightReportModel struct {
	ID          string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	TenantID    string         `gorm:"column:tenant_id;index" json:"tenantId"`
	HealthScore int            `gorm:"column:health_score" json:"healthScore"`
	Payload     datatypes.JSON `gorm:"column:payload;type:TEXT" json:"payload"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (InsightReportModel) TableName() string { return "insight_reports" }

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the known methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentPix, PaymentCredit, PaymentDebit, PaymentCash, PaymentOther:
		return true
	}
	return false
}

// ValidPlatformType reports whether t is one of the known channel types.
func ValidPlatformType(t string) bool {
	switch t {
	case PlatformTypeDelivery, PlatformTypeManual, PlatformTypeMarketplace:
		return true
	}
	return false
}

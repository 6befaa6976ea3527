package orders

import (
	"time"

	"galaxia/internal/gateway/notifier"
	"galaxia/internal/store/model"

	"github.com/shopspring/decimal"
)

func formatBRL(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

var statusLabels = map[string]string{
	model.OrderStatusNew:            "🆕 Novo",
	model.OrderStatusConfirmed:      "✅ Confirmado",
	model.OrderStatusPreparing:      "👨‍🍳 Preparando",
	model.OrderStatusOutForDelivery: "🚴 Em Entrega",
	model.OrderStatusDelivered:      "✅ Entregue",
	model.OrderStatusCanceled:       "❌ Cancelado",
}

func orderMessage(icon, title string, order *model.OrderModel, platformName string, itemLines []string, at time.Time) notifier.StructuredMessage {
	header := []string{
		"📍 Origem: " + platformName,
		"💰 Total: " + formatBRL(order.GrossTotal),
		"💳 Pagamento: " + order.PaymentMethod,
	}
	if order.CustomerName != "" {
		header = append(header, "👤 Cliente: "+order.CustomerName)
	}
	return notifier.StructuredMessage{
		Icon:  icon,
		Title: title + " – Galáxia Gourmet",
		Sections: []notifier.MessageSection{
			{Lines: header},
			{Title: "🧾 Itens:", Lines: itemLines},
			{Lines: []string{"💵 Lucro: " + formatBRL(order.NetProfit)}},
		},
		Timestamp: at,
	}
}

func newOrderMessage(order *model.OrderModel, platformName string, itemLines []string, at time.Time) notifier.StructuredMessage {
	return orderMessage("🍟", "NOVO PEDIDO", order, platformName, itemLines, at)
}

func replicatedOrderMessage(order *model.OrderModel, platformName string, itemLines []string, at time.Time) notifier.StructuredMessage {
	return orderMessage("🔁", "PEDIDO REPLICADO", order, platformName, itemLines, at)
}

func statusChangedMessage(order *model.OrderModel, platformName string, at time.Time) notifier.StructuredMessage {
	label, ok := statusLabels[order.Status]
	if !ok {
		label = order.Status
	}
	lines := []string{
		"🔄 Status: " + label,
		"💰 Total: " + formatBRL(order.GrossTotal),
	}
	if platformName != "" {
		lines = append(lines, "📍 Plataforma: "+platformName)
	}
	return notifier.StructuredMessage{
		Icon:      "📝",
		Title:     "PEDIDO ATUALIZADO",
		Sections:  []notifier.MessageSection{{Lines: lines}},
		Timestamp: at,
	}
}

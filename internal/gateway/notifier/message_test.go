package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	t.Run("renders header sections and timestamp", func(t *testing.T) {
		msg := StructuredMessage{
			Icon:  "🍟",
			Title: "NOVO PEDIDO – Galáxia Gourmet",
			Sections: []MessageSection{
				{Lines: []string{"📍 Origem: iFood", "💰 Total: R$ 75.80"}},
				{Title: "🧾 Itens:", Lines: []string{"• Hambúrguer Clássico (2x)"}},
			},
			Timestamp: time.Date(2026, 8, 30, 19, 45, 0, 0, time.UTC),
		}
		body := msg.RenderMarkdown()

		assert.True(t, strings.HasPrefix(body, "*🍟 NOVO PEDIDO – Galáxia Gourmet*"))
		assert.Contains(t, body, "*🧾 Itens:*")
		assert.Contains(t, body, "• Hambúrguer Clássico (2x)")
		assert.Contains(t, body, "⏰ 19:45")
	})

	t.Run("skips empty sections and lines", func(t *testing.T) {
		msg := StructuredMessage{
			Title: "AVISO",
			Sections: []MessageSection{
				{Title: "Vazio", Lines: []string{"  ", ""}},
				{Lines: []string{"conteúdo"}},
			},
		}
		body := msg.RenderMarkdown()
		assert.NotContains(t, body, "Vazio")
		assert.Contains(t, body, "conteúdo")
	})

	t.Run("escapes code fences", func(t *testing.T) {
		msg := StructuredMessage{Sections: []MessageSection{{Lines: []string{"```injeção```"}}}}
		assert.NotContains(t, msg.RenderMarkdown(), "```")
	})

	t.Run("trims oversized bodies", func(t *testing.T) {
		msg := StructuredMessage{
			Sections: []MessageSection{{Lines: []string{strings.Repeat("x", 5000)}}},
		}
		body := msg.RenderMarkdown()
		assert.LessOrEqual(t, len(body), maxStructuredMessageLen+3)
		assert.True(t, strings.HasSuffix(body, "..."))
	})

	t.Run("zero timestamp is omitted", func(t *testing.T) {
		msg := StructuredMessage{Sections: []MessageSection{{Lines: []string{"oi"}}}}
		assert.NotContains(t, msg.RenderMarkdown(), "⏰")
	})
}

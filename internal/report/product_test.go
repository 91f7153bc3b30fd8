package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopping-alerter/internal/domain"
)

func TestProductAlertSubject(t *testing.T) {
	subject := ProductAlertSubject("Conta Teste", "2025-06-01")

	assert.Equal(t, "Product Alert - Conta Teste - 2025-06-01", subject)
}

func TestProductAlertBodies(t *testing.T) {
	data := ProductAlertData{
		Disapproved: []domain.ProductIssue{
			{ID: "sku1", Clicks: 1200, Revenue: 3500.5},
		},
		OutOfStock: []domain.ProductIssue{
			{ID: "sku2", Clicks: 40, Revenue: 150},
		},
		ImpactDisapproved: domain.ImpactSummary{
			LostClicks:     1200,
			LostClicksPct:  12,
			LostRevenue:    3500.5,
			LostRevenuePct: 35,
		},
		ImpactOutOfStock: domain.ImpactSummary{
			LostClicks:     40,
			LostClicksPct:  1,
			LostRevenue:    150,
			LostRevenuePct: 2,
		},
		DateRange: domain.DateRangeLast7Days,
	}

	body, htmlBody := ProductAlertBodies(data)

	// Totais somam as duas categorias
	assert.Contains(t, body, "Potential missed performance (LAST_7_DAYS):\n")
	assert.Contains(t, body, "Lost clicks: 1,240\n")
	assert.Contains(t, body, "Lost revenue: €3650.50\n")

	// Seções por categoria, com contagem e ofensores
	assert.Contains(t, body, "Disapproved Products: 1\n")
	assert.Contains(t, body, "Out of Stock Products: 1\n")
	assert.Contains(t, body, "- sku1: €3500.50 revenue, 1,200 clicks\n")
	assert.Contains(t, body, "- sku2: €150.00 revenue, 40 clicks\n")

	assert.Contains(t, htmlBody, "<b>⚠️ Product Issues Detected</b>")
	assert.Contains(t, htmlBody, "<li>Lost clicks: <b>1,240</b></li>")
	assert.Contains(t, htmlBody, "<li>sku1: €3500.50 revenue, 1,200 clicks</li>")
}

func TestProductAlertBodies_emptyCategory(t *testing.T) {
	data := ProductAlertData{
		Disapproved: []domain.ProductIssue{{ID: "sku1", Clicks: 10, Revenue: 100}},
		ImpactDisapproved: domain.ImpactSummary{
			LostClicks:  10,
			LostRevenue: 100,
		},
		DateRange: domain.DateRangeLast7Days,
	}

	body, _ := ProductAlertBodies(data)

	// Categoria vazia aparece zerada e sem lista de ofensores
	assert.Contains(t, body, "Out of Stock Products: 0\nLost clicks: 0\nLost revenue: €0.00\n")
}

func TestTopOffenders(t *testing.T) {
	issues := make([]domain.ProductIssue, 0, 12)
	for i := 0; i < 12; i++ {
		issues = append(issues, domain.ProductIssue{
			ID:      fmt.Sprintf("sku%d", i),
			Revenue: float64(i * 10),
		})
	}

	top := topOffenders(issues)

	// Limitado a dez, ordenado por receita decrescente
	assert.Len(t, top, 10)
	assert.Equal(t, "sku11", top[0].ID)
	assert.Equal(t, "sku2", top[9].ID)

	// A entrada do chamador não é reordenada
	assert.Equal(t, "sku0", issues[0].ID)
}

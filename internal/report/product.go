package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/shopping-alerter/internal/domain"
	"github.com/vfg2006/shopping-alerter/pkg/utils"
)

// Número máximo de produtos listados por seção do alerta
const topOffendersLimit = 10

// ProductAlertData agrega tudo que o formatador do alerta de produtos precisa
type ProductAlertData struct {
	Disapproved       []domain.ProductIssue
	OutOfStock        []domain.ProductIssue
	ImpactDisapproved domain.ImpactSummary
	ImpactOutOfStock  domain.ImpactSummary
	DateRange         domain.DateRange
}

// ProductAlertSubject monta o assunto do alerta de produtos
func ProductAlertSubject(accountName string, date string) string {
	return fmt.Sprintf("Product Alert - %s - %s", accountName, date)
}

// ProductAlertBodies monta os corpos em texto e HTML do alerta de produtos
func ProductAlertBodies(data ProductAlertData) (string, string) {
	totalLostClicks := data.ImpactDisapproved.LostClicks + data.ImpactOutOfStock.LostClicks
	totalLostRevenue := data.ImpactDisapproved.LostRevenue + data.ImpactOutOfStock.LostRevenue

	return productAlertText(data, totalLostClicks, totalLostRevenue),
		productAlertHTML(data, totalLostClicks, totalLostRevenue)
}

func productAlertText(data ProductAlertData, totalLostClicks int64, totalLostRevenue float64) string {
	var b strings.Builder

	b.WriteString("⚠️ Product Issues Detected\n\n")
	fmt.Fprintf(&b, "Potential missed performance (%s):\n", data.DateRange)
	fmt.Fprintf(&b, "Lost clicks: %s\n", utils.FormatThousands(float64(totalLostClicks)))
	fmt.Fprintf(&b, "Lost revenue: €%s\n\n", utils.FormatCurrency(totalLostRevenue))

	b.WriteString("Total Impact:\n")
	fmt.Fprintf(&b, "- Lost clicks: %s\n", utils.FormatThousands(float64(totalLostClicks)))
	fmt.Fprintf(&b, "- Lost revenue: €%s\n\n", utils.FormatCurrency(totalLostRevenue))

	writeIssueSectionText(&b, "Disapproved Products", data.Disapproved, data.ImpactDisapproved)
	b.WriteString("\n")
	writeIssueSectionText(&b, "Out of Stock Products", data.OutOfStock, data.ImpactOutOfStock)

	return b.String()
}

func writeIssueSectionText(b *strings.Builder, title string, issues []domain.ProductIssue, impact domain.ImpactSummary) {
	fmt.Fprintf(b, "%s: %d\n", title, len(issues))
	fmt.Fprintf(b, "Lost clicks: %s\n", utils.FormatThousands(float64(impact.LostClicks)))
	fmt.Fprintf(b, "Lost revenue: €%s\n", utils.FormatCurrency(impact.LostRevenue))

	if len(issues) == 0 {
		return
	}

	b.WriteString("Top offenders (by revenue):\n")
	for _, p := range topOffenders(issues) {
		fmt.Fprintf(b, "- %s: €%s revenue, %s clicks\n",
			p.ID, utils.FormatCurrency(p.Revenue), utils.FormatThousands(float64(p.Clicks)))
	}
}

func productAlertHTML(data ProductAlertData, totalLostClicks int64, totalLostRevenue float64) string {
	var b strings.Builder

	b.WriteString("<b>⚠️ Product Issues Detected</b><br><br>")
	fmt.Fprintf(&b, "<b>Potential missed performance (%s):</b><br>", data.DateRange)
	fmt.Fprintf(&b, "Lost clicks: <b>%s</b><br>", utils.FormatThousands(float64(totalLostClicks)))
	fmt.Fprintf(&b, "Lost revenue: <b>€%s</b><br><br>", utils.FormatCurrency(totalLostRevenue))

	b.WriteString("<b>Total Impact:</b><br><ul>")
	fmt.Fprintf(&b, "<li>Lost clicks: <b>%s</b></li>", utils.FormatThousands(float64(totalLostClicks)))
	fmt.Fprintf(&b, "<li>Lost revenue: <b>€%s</b></li>", utils.FormatCurrency(totalLostRevenue))
	b.WriteString("</ul>")

	writeIssueSectionHTML(&b, "Disapproved Products", data.Disapproved, data.ImpactDisapproved)
	b.WriteString("<br>")
	writeIssueSectionHTML(&b, "Out of Stock Products", data.OutOfStock, data.ImpactOutOfStock)

	return b.String()
}

func writeIssueSectionHTML(b *strings.Builder, title string, issues []domain.ProductIssue, impact domain.ImpactSummary) {
	fmt.Fprintf(b, "<b>%s: %d</b><br>", title, len(issues))
	fmt.Fprintf(b, "Lost clicks: <b>%s</b><br>", utils.FormatThousands(float64(impact.LostClicks)))
	fmt.Fprintf(b, "Lost revenue: <b>€%s</b><br>", utils.FormatCurrency(impact.LostRevenue))

	if len(issues) == 0 {
		return
	}

	b.WriteString("Top offenders (by revenue):<ul>")
	for _, p := range topOffenders(issues) {
		fmt.Fprintf(b, "<li>%s: €%s revenue, %s clicks</li>",
			p.ID, utils.FormatCurrency(p.Revenue), utils.FormatThousands(float64(p.Clicks)))
	}
	b.WriteString("</ul>")
}

// topOffenders ordena por receita decrescente e trunca a lista, sem mutar a
// entrada do chamador.
func topOffenders(issues []domain.ProductIssue) []domain.ProductIssue {
	sorted := make([]domain.ProductIssue, len(issues))
	copy(sorted, issues)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Revenue > sorted[j].Revenue
	})

	if len(sorted) > topOffendersLimit {
		sorted = sorted[:topOffendersLimit]
	}

	return sorted
}

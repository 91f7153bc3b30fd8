package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/shopping-alerter/internal/domain"
)

// NetworkAlertSubject monta o assunto do alerta de redes PMax
func NetworkAlertSubject(accountName string, date string) string {
	return fmt.Sprintf("PMax Network Alert - %s - %s", accountName, date)
}

// NetworkAlertBody monta o corpo em texto do alerta de redes. A decisão de
// enviar ou não pertence ao avaliador de limites, nunca ao formatador.
func NetworkAlertBody(alerts domain.NetworkAlerts, dateRange domain.DateRange, thresholds domain.NetworkThresholds) string {
	var b strings.Builder

	b.WriteString("Performance Max Network Spend Alert\n\n")
	b.WriteString("The following campaigns have exceeded network spend thresholds in the date range: ")
	b.WriteString(dateRange.String())
	b.WriteString("\n\n")

	if len(alerts.Display) > 0 {
		writeNetworkSection(&b, "Display Network Alerts", thresholds.Display, alerts.Display)
		b.WriteString("\n")
	}

	if len(alerts.Video) > 0 {
		writeNetworkSection(&b, "YouTube Network Alerts", thresholds.Video, alerts.Video)
		b.WriteString("\n")
	}

	if len(alerts.Search) > 0 {
		writeNetworkSection(&b, "Search Network Alerts", thresholds.Search, alerts.Search)
	}

	return b.String()
}

func writeNetworkSection(b *strings.Builder, title string, threshold float64, entries []domain.NetworkAlertEntry) {
	fmt.Fprintf(b, "%s (>%s%% threshold):\n", title, formatThreshold(threshold))

	for _, entry := range entries {
		fmt.Fprintf(b, "- %s: %.1f%% ($%.2f)\n", entry.Campaign, entry.Ratio, entry.Spend)
	}
}

// formatThreshold exibe o limite como porcentagem inteira quando possível
// (0.01 → "1", 0.05 → "5", 0.015 → "1.5")
func formatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold*100, 'f', -1, 64)
}

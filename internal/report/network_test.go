package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopping-alerter/internal/domain"
)

func TestNetworkAlertSubject(t *testing.T) {
	subject := NetworkAlertSubject("Conta Teste", "2025-06-01")

	assert.Equal(t, "PMax Network Alert - Conta Teste - 2025-06-01", subject)
}

func TestNetworkAlertBody(t *testing.T) {
	thresholds := domain.NetworkThresholds{
		Display: 0.01,
		Video:   0.01,
		Search:  0.05,
	}

	tests := []struct {
		name     string
		alerts   domain.NetworkAlerts
		validate func(t *testing.T, body string)
	}{
		{
			name: "Todas as redes sinalizadas",
			alerts: domain.NetworkAlerts{
				Display: []domain.NetworkAlertEntry{{Campaign: "Campanha A", Ratio: 3.3, Spend: 10}},
				Video:   []domain.NetworkAlertEntry{{Campaign: "Campanha B", Ratio: 2.0, Spend: 4.5}},
				Search:  []domain.NetworkAlertEntry{{Campaign: "Campanha C", Ratio: 6.0, Spend: 6}},
			},
			validate: func(t *testing.T, body string) {
				expected := "Performance Max Network Spend Alert\n\n" +
					"The following campaigns have exceeded network spend thresholds in the date range: LAST_7_DAYS\n\n" +
					"Display Network Alerts (>1% threshold):\n" +
					"- Campanha A: 3.3% ($10.00)\n\n" +
					"YouTube Network Alerts (>1% threshold):\n" +
					"- Campanha B: 2.0% ($4.50)\n\n" +
					"Search Network Alerts (>5% threshold):\n" +
					"- Campanha C: 6.0% ($6.00)\n"

				assert.Equal(t, expected, body)
			},
		},
		{
			name: "Apenas redes sinalizadas aparecem no corpo",
			alerts: domain.NetworkAlerts{
				Search: []domain.NetworkAlertEntry{{Campaign: "Campanha C", Ratio: 6.0, Spend: 6}},
			},
			validate: func(t *testing.T, body string) {
				assert.NotContains(t, body, "Display Network Alerts")
				assert.NotContains(t, body, "YouTube Network Alerts")
				assert.Contains(t, body, "Search Network Alerts (>5% threshold):\n- Campanha C: 6.0% ($6.00)\n")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NetworkAlertBody(tt.alerts, domain.DateRangeLast7Days, thresholds))
		})
	}
}

func TestFormatThreshold(t *testing.T) {
	assert.Equal(t, "1", formatThreshold(0.01))
	assert.Equal(t, "5", formatThreshold(0.05))
	assert.Equal(t, "1.5", formatThreshold(0.015))
}

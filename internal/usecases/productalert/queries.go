package productalert

import (
	"fmt"

	"github.com/vfg2006/shopping-alerter/internal/domain"
)

func clickedIDsQuery(dateRange domain.DateRange) string {
	return fmt.Sprintf(`
		SELECT segments.product_item_id, metrics.clicks
		FROM shopping_performance_view
		WHERE segments.date DURING %s`, dateRange)
}

func productPerformanceQuery(productID string, dateRange domain.DateRange) string {
	return fmt.Sprintf(`
		SELECT
		  segments.product_item_id,
		  metrics.clicks,
		  metrics.cost_micros,
		  metrics.conversions,
		  metrics.conversions_value
		FROM shopping_performance_view
		WHERE segments.product_item_id = '%s'
		  AND segments.date DURING %s`, productID, dateRange)
}

// Consulta de impacto: cobre TODOS os produtos da janela, não apenas os
// sinalizados, para que os percentuais sejam relativos ao total da conta.
func impactQuery(dateRange domain.DateRange) string {
	return fmt.Sprintf(`
		SELECT segments.product_item_id, metrics.clicks, metrics.conversions_value
		FROM shopping_performance_view
		WHERE segments.date DURING %s`, dateRange)
}

package networkalert

import (
	"fmt"

	"github.com/vfg2006/shopping-alerter/internal/domain"
)

// Consultas GAQL do pipeline de redes. Todas restritas a campanhas
// Performance Max dentro da janela configurada.

func campaignTotalsQuery(dateRange domain.DateRange) string {
	return fmt.Sprintf(`
		SELECT
		  campaign.name,
		  metrics.cost_micros
		FROM campaign
		WHERE
		  segments.date DURING %s
		  AND campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		  AND metrics.cost_micros > 0
		ORDER BY campaign.name`, dateRange)
}

func displayVideoQuery(dateRange domain.DateRange) string {
	return fmt.Sprintf(`
		SELECT
		  campaign.name,
		  segments.asset_interaction_target.asset,
		  metrics.cost_micros,
		  campaign.advertising_channel_type,
		  segments.asset_interaction_target.interaction_on_this_asset
		FROM campaign
		WHERE
		  segments.date DURING %s
		  AND campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		  AND segments.asset_interaction_target.interaction_on_this_asset != 'TRUE'
		ORDER BY campaign.name`, dateRange)
}

func shoppingSpendQuery(dateRange domain.DateRange) string {
	return fmt.Sprintf(`
		SELECT
		  campaign.name,
		  segments.product_title,
		  metrics.cost_micros,
		  campaign.advertising_channel_type
		FROM shopping_performance_view
		WHERE
		  segments.date DURING %s
		  AND campaign.advertising_channel_type = 'PERFORMANCE_MAX'
		ORDER BY campaign.name`, dateRange)
}

// Índice de assets apenas de campanhas habilitadas
const assetTypesQuery = `
	SELECT
	  campaign.name,
	  asset.resource_name,
	  asset_group_asset.field_type
	FROM asset_group_asset
	WHERE
	  campaign.status = 'ENABLED'`

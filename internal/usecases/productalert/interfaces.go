package productalert

import "github.com/vfg2006/shopping-alerter/internal/domain"

// ProductAlerter executa o pipeline de saúde de produtos: coleta os
// produtos clicados, varre o feed de status e envia o alerta de impacto.
type ProductAlerter interface {
	CollectClickedIDs() (domain.IDSet, error)
	Run(clickedIDs domain.IDSet) error
}

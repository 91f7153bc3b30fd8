package networkalert

// NetworkAlerter executa o pipeline de alertas de gasto por rede das
// campanhas Performance Max.
type NetworkAlerter interface {
	Run() error
}

package domain

// NetworkSpend acumula o gasto de uma campanha Performance Max por rede.
// Total é o valor autoritativo da consulta de campanha; Search é o resíduo
// Total - (Shopping + Display + Youtube) e pode ficar negativo quando as
// demais redes são superatribuídas.
type NetworkSpend struct {
	Shopping float64
	Display  float64
	Youtube  float64
	Search   float64
	Total    float64
}

// NetworkThresholds são os limites de proporção de gasto por rede (0-1)
type NetworkThresholds struct {
	Display float64
	Video   float64
	Search  float64
}

// NetworkAlertEntry representa uma campanha que ultrapassou o limite de uma rede
type NetworkAlertEntry struct {
	Campaign string
	Ratio    float64 // porcentagem do gasto total (0-100)
	Spend    float64
}

// NetworkAlerts agrupa as campanhas sinalizadas por rede
type NetworkAlerts struct {
	Display []NetworkAlertEntry
	Video   []NetworkAlertEntry
	Search  []NetworkAlertEntry
}

// HasAlerts indica se alguma rede tem campanhas sinalizadas
func (a NetworkAlerts) HasAlerts() bool {
	return len(a.Display) > 0 || len(a.Video) > 0 || len(a.Search) > 0
}

package domain

// ProductIssue representa um produto com problema no feed, com as métricas
// de desempenho da janela de análise anexadas.
type ProductIssue struct {
	ID          string
	Clicks      int64
	Cost        float64
	Conversions float64
	Revenue     float64
}

// ImpactSummary agrega o impacto estimado de um conjunto de produtos
// sinalizados em relação ao total consultado. Os percentuais são
// arredondados para inteiros.
type ImpactSummary struct {
	LostClicks     int64
	LostClicksPct  int
	LostRevenue    float64
	LostRevenuePct int
}

// IDSet é um conjunto de identificadores de produto normalizados
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

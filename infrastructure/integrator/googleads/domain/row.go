package domain

import "strconv"

// SearchRow é uma linha retornada pela consulta GAQL, com acesso aninhado
// aos campos selecionados. Campos não selecionados ficam com valor zero.
type SearchRow struct {
	Campaign        Campaign        `json:"campaign"`
	Segments        Segments        `json:"segments"`
	Metrics         Metrics         `json:"metrics"`
	Asset           Asset           `json:"asset"`
	AssetGroupAsset AssetGroupAsset `json:"assetGroupAsset"`
	Customer        Customer        `json:"customer"`
}

type Campaign struct {
	Name                   string `json:"name"`
	Status                 string `json:"status"`
	AdvertisingChannelType string `json:"advertisingChannelType"`
}

type Segments struct {
	Date                   string                 `json:"date"`
	ProductItemID          string                 `json:"productItemId"`
	ProductTitle           string                 `json:"productTitle"`
	AssetInteractionTarget AssetInteractionTarget `json:"assetInteractionTarget"`
}

type AssetInteractionTarget struct {
	Asset                  string `json:"asset"`
	InteractionOnThisAsset bool   `json:"interactionOnThisAsset"`
}

type Asset struct {
	ResourceName string `json:"resourceName"`
}

type AssetGroupAsset struct {
	FieldType string `json:"fieldType"`
}

// Customer carrega os metadados da conta usados nos assuntos dos e-mails
type Customer struct {
	DescriptiveName string `json:"descriptiveName"`
	TimeZone        string `json:"timeZone"`
	CurrencyCode    string `json:"currencyCode"`
}

// Tipos de asset relevantes para a classificação de rede
const (
	AssetFieldTypeYoutubeVideo           = "YOUTUBE_VIDEO"
	AssetFieldTypeMarketingImage         = "MARKETING_IMAGE"
	AssetFieldTypePortraitMarketingImage = "PORTRAIT_MARKETING_IMAGE"
	AssetFieldTypeSquareMarketingImage   = "SQUARE_MARKETING_IMAGE"
)

// Metrics traz as métricas da linha. A API serializa inteiros de 64 bits
// como string; os acessores coagem valores ausentes ou não numéricos para
// zero em vez de propagar erro, para manter a agregação resiliente.
type Metrics struct {
	Clicks           string  `json:"clicks"`
	CostMicros       string  `json:"costMicros"`
	Conversions      float64 `json:"conversions"`
	ConversionsValue float64 `json:"conversionsValue"`
}

// ClicksValue retorna o número de cliques, ou zero quando ausente/inválido
func (m Metrics) ClicksValue() int64 {
	clicks, err := strconv.ParseInt(m.Clicks, 10, 64)
	if err != nil {
		return 0
	}
	return clicks
}

// Cost retorna o custo em unidades monetárias (micros / 1e6)
func (m Metrics) Cost() float64 {
	micros, err := strconv.ParseInt(m.CostMicros, 10, 64)
	if err != nil {
		return 0
	}
	return float64(micros) / 1e6
}

package domain

import "strings"

// ProductStatus é o status de um produto no feed, conforme retornado pela
// listagem paginada do Content API.
type ProductStatus struct {
	ProductID           string              `json:"productId"`
	Title               string              `json:"title"`
	DestinationStatuses []DestinationStatus `json:"destinationStatuses"`
	ItemLevelIssues     []ItemLevelIssue    `json:"itemLevelIssues"`
}

type DestinationStatus struct {
	Destination string `json:"destination"`
	Status      string `json:"status"`
}

type ItemLevelIssue struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Servability string `json:"servability"`
}

// IsDisapproved indica se o produto está reprovado em algum destino ou se
// alguma issue de item bloqueia a veiculação.
func (p ProductStatus) IsDisapproved() bool {
	for _, ds := range p.DestinationStatuses {
		if strings.EqualFold(ds.Status, "disapproved") {
			return true
		}
	}

	for _, issue := range p.ItemLevelIssues {
		if issue.Servability == "disapproved" {
			return true
		}
	}

	return false
}

// ProductStatusesPage é uma página da listagem de status de produtos
type ProductStatusesPage struct {
	Resources     []ProductStatus `json:"resources"`
	NextPageToken string          `json:"nextPageToken"`
}

// Product é o detalhe de um produto individual do feed
type Product struct {
	ID           string `json:"id"`
	OfferID      string `json:"offerId"`
	Title        string `json:"title"`
	Availability string `json:"availability"`
}

// IsOutOfStock indica se o produto está marcado como fora de estoque
func (p Product) IsOutOfStock() bool {
	return strings.ToLower(p.Availability) == "out of stock"
}

package utils

import "strings"

// OfferID normaliza um identificador de produto do feed (ex.: "online:en:US:SKU123"),
// retornando apenas o último segmento em minúsculas. É idempotente.
func OfferID(id string) string {
	if id == "" {
		return ""
	}

	parts := strings.Split(id, ":")

	return strings.ToLower(parts[len(parts)-1])
}

package merchantclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	merchantdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/merchant/domain"
	"github.com/vfg2006/shopping-alerter/internal/config"
)

// Tamanho de página da listagem de status de produtos
const statusesPageSize = 250

// Máscara de campos da listagem: apenas o necessário para a classificação
const statusesFields = "resources(productId,title," +
	"destinationStatuses(destination,status)," +
	"itemLevelIssues(code,description,servability))," +
	"nextPageToken"

type Client interface {
	ListProductStatuses(pageToken string) (*merchantdomain.ProductStatusesPage, error)
	GetProduct(productID string) (*merchantdomain.Product, error)
}

type MerchantClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MerchantClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// ListProductStatuses busca uma página da listagem de status de produtos.
// Um pageToken vazio busca a primeira página.
func (c *MerchantClient) ListProductStatuses(pageToken string) (*merchantdomain.ProductStatusesPage, error) {
	endpoint, err := url.Parse(c.cfg.Merchant.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.cfg.Merchant.AccountID, "productstatuses")

	query := endpoint.Query()
	query.Set("maxResults", fmt.Sprintf("%d", statusesPageSize))
	query.Set("fields", statusesFields)
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}
	endpoint.RawQuery = query.Encode()

	var page merchantdomain.ProductStatusesPage
	if err := c.get(endpoint.String(), &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetProduct busca o detalhe de um produto individual, incluindo a
// disponibilidade. Pode falhar por produto sem abortar a varredura.
func (c *MerchantClient) GetProduct(productID string) (*merchantdomain.Product, error) {
	endpoint, err := url.Parse(c.cfg.Merchant.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, c.cfg.Merchant.AccountID, "products", productID)

	var product merchantdomain.Product
	if err := c.get(endpoint.String(), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *MerchantClient) get(endpoint string, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Merchant.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

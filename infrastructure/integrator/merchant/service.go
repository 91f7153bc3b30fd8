package merchant

import (
	merchantdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/merchant/domain"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/merchant/merchantclient"
	"github.com/vfg2006/shopping-alerter/internal/config"
)

// MerchantIntegrator expõe o feed de status de produtos e o detalhe de
// produtos individuais do Merchant Center.
type MerchantIntegrator interface {
	Configured() bool
	ListProductStatuses(pageToken string) (*merchantdomain.ProductStatusesPage, error)
	GetProduct(productID string) (*merchantdomain.Product, error)
}

type MerchantService struct {
	cfg    *config.Config
	Client merchantclient.Client
}

func New(cfg *config.Config, client merchantclient.Client) MerchantIntegrator {
	return &MerchantService{
		cfg:    cfg,
		Client: client,
	}
}

// Configured indica se a integração com o Merchant Center está habilitada.
// Sem a conta configurada o pipeline de produtos não pode executar.
func (s *MerchantService) Configured() bool {
	return s.cfg.Merchant.AccountID != "" && s.cfg.Merchant.AccessToken != ""
}

func (s *MerchantService) ListProductStatuses(pageToken string) (*merchantdomain.ProductStatusesPage, error) {
	return s.Client.ListProductStatuses(pageToken)
}

func (s *MerchantService) GetProduct(productID string) (*merchantdomain.Product, error) {
	return s.Client.GetProduct(productID)
}

package adsclient

import (
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/shopping-alerter/internal/config"
)

type Client interface {
	Search(query string) (RowIterator, error)
	GetCustomer() (*adsdomain.Customer, error)
}

type GoogleAdsClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GoogleAdsClient{
		Cfg: cfg,
	}
}

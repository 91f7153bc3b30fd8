package googleads

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/shopping-alerter/internal/config"
)

// AdsIntegrator é a fachada de consulta usada pelos casos de uso
type AdsIntegrator interface {
	SearchRows(query string) (adsclient.RowIterator, error)
	AccountInfo() (*adsdomain.Customer, error)
}

type AdsService struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) AdsIntegrator {
	return &AdsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *AdsService) SearchRows(query string) (adsclient.RowIterator, error) {
	return s.Client.Search(query)
}

func (s *AdsService) AccountInfo() (*adsdomain.Customer, error) {
	customer, err := s.Client.GetCustomer()
	if err != nil {
		logrus.WithError(err).Error("googleads: falha ao buscar metadados da conta")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_name": customer.DescriptiveName,
		"time_zone":    customer.TimeZone,
	}).Debug("googleads: metadados da conta obtidos")

	return customer, nil
}

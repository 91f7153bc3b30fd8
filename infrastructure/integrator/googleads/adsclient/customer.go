package adsclient

import (
	"github.com/pkg/errors"
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
)

const customerQuery = `
	SELECT
	  customer.descriptive_name,
	  customer.time_zone,
	  customer.currency_code
	FROM customer`

// GetCustomer busca o nome de exibição e o fuso horário da conta
func (c *GoogleAdsClient) GetCustomer() (*adsdomain.Customer, error) {
	it, err := c.Search(customerQuery)
	if err != nil {
		return nil, err
	}

	row, err := it.Next()
	if err != nil {
		if errors.Is(err, ErrIteratorDone) {
			return nil, errors.New("conta não encontrada")
		}
		return nil, err
	}

	customer := row.Customer
	return &customer, nil
}

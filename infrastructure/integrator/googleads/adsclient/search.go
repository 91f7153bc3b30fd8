package adsclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
)

// ErrIteratorDone sinaliza o fim da sequência de linhas de uma consulta
var ErrIteratorDone = errors.New("iterador de linhas esgotado")

const searchPageSize = 10000

// RowIterator percorre as linhas de uma consulta GAQL de forma preguiçosa,
// seguindo o token de continuação da API página a página. A sequência é
// finita e não pode ser reiniciada.
type RowIterator interface {
	Next() (*adsdomain.SearchRow, error)
}

type searchRequest struct {
	Query     string `json:"query"`
	PageSize  int    `json:"pageSize,omitempty"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []adsdomain.SearchRow `json:"results"`
	NextPageToken string                `json:"nextPageToken"`
}

// Search cria um iterador para a consulta. A primeira página só é buscada
// na primeira chamada de Next.
func (c *GoogleAdsClient) Search(query string) (RowIterator, error) {
	return &searchIterator{
		client: c,
		query:  query,
	}, nil
}

type searchIterator struct {
	client    *GoogleAdsClient
	query     string
	rows      []adsdomain.SearchRow
	pos       int
	pageToken string
	started   bool
	exhausted bool
}

func (it *searchIterator) Next() (*adsdomain.SearchRow, error) {
	for it.pos >= len(it.rows) {
		if it.started && it.exhausted {
			return nil, ErrIteratorDone
		}

		if err := it.fetchPage(); err != nil {
			return nil, err
		}
	}

	row := &it.rows[it.pos]
	it.pos++

	return row, nil
}

func (it *searchIterator) fetchPage() error {
	resp, err := it.client.search(it.query, it.pageToken)
	if err != nil {
		return err
	}

	it.started = true
	it.rows = resp.Results
	it.pos = 0
	it.pageToken = resp.NextPageToken

	// Sem token de continuação (ou página vazia) a sequência termina
	if it.pageToken == "" || len(resp.Results) == 0 {
		it.exhausted = true
	}

	return nil
}

func (c *GoogleAdsClient) search(query string, pageToken string) (*searchResponse, error) {
	url := fmt.Sprintf("%s/customers/%s/googleAds:search", c.Cfg.GoogleAds.URL, c.Cfg.GoogleAds.CustomerID)

	payload, err := json.Marshal(searchRequest{
		Query:     query,
		PageSize:  searchPageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de consulta")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GoogleAds.AccessToken)
	req.Header.Set("developer-token", c.Cfg.GoogleAds.DeveloperToken)
	if c.Cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.GoogleAds.LoginCustomerID)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição de consulta")
		return nil, errors.Wrap(err, "erro ao consultar a API do Google Ads")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("consulta retornou status %d: %s", resp.StatusCode, string(body))
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da consulta")
		return nil, err
	}

	return &response, nil
}

// NewSliceIterator cria um iterador sobre linhas já materializadas.
// Usado pelos testes para substituir a API real.
func NewSliceIterator(rows []adsdomain.SearchRow) RowIterator {
	return &sliceIterator{rows: rows}
}

type sliceIterator struct {
	rows []adsdomain.SearchRow
	pos  int
}

func (it *sliceIterator) Next() (*adsdomain.SearchRow, error) {
	if it.pos >= len(it.rows) {
		return nil, ErrIteratorDone
	}

	row := &it.rows[it.pos]
	it.pos++

	return row, nil
}

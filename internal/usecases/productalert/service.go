package productalert

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/merchant"
	"github.com/vfg2006/shopping-alerter/infrastructure/mailer"
	"github.com/vfg2006/shopping-alerter/internal/config"
	"github.com/vfg2006/shopping-alerter/internal/domain"
	"github.com/vfg2006/shopping-alerter/internal/report"
	"github.com/vfg2006/shopping-alerter/pkg/utils"
)

// ErrMerchantNotConfigured aborta o pipeline de produtos antes de qualquer
// processamento quando a integração com o feed não está habilitada.
var ErrMerchantNotConfigured = errors.New(
	"integração com o Merchant Center não está habilitada: configure MERCHANT_ACCOUNT_ID e MERCHANT_ACCESS_TOKEN")

// Service implementa o pipeline de saúde de produtos: cruza os produtos
// clicados com o feed de status, classifica reprovados e fora de estoque,
// calcula o impacto em cliques/receita e envia o alerta.
type Service struct {
	cfg             *config.Config
	adsService      googleads.AdsIntegrator
	merchantService merchant.MerchantIntegrator
	mailSender      mailer.Sender
}

func NewService(
	cfg *config.Config,
	adsService googleads.AdsIntegrator,
	merchantService merchant.MerchantIntegrator,
	mailSender mailer.Sender,
) ProductAlerter {
	return &Service{
		cfg:             cfg,
		adsService:      adsService,
		merchantService: merchantService,
		mailSender:      mailSender,
	}
}

// CollectClickedIDs retorna o conjunto de identificadores normalizados de
// produtos com pelo menos o mínimo configurado de cliques na janela.
func (s *Service) CollectClickedIDs() (domain.IDSet, error) {
	dateRange := domain.DateRange(s.cfg.Alerting.ShoppingDateRange)
	ids := make(domain.IDSet)

	err := s.forEachRow(clickedIDsQuery(dateRange), func(row *adsdomain.SearchRow) {
		idNorm := utils.OfferID(row.Segments.ProductItemID)
		if idNorm != "" && row.Metrics.ClicksValue() >= s.cfg.Alerting.MinClicks {
			ids.Add(idNorm)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao coletar produtos clicados")
	}

	logrus.WithFields(logrus.Fields{
		"products":   ids.Len(),
		"min_clicks": s.cfg.Alerting.MinClicks,
		"date_range": dateRange,
	}).Info("ProductAlert: produtos com cliques suficientes coletados")

	return ids, nil
}

func (s *Service) Run(clickedIDs domain.IDSet) error {
	if !s.merchantService.Configured() {
		return ErrMerchantNotConfigured
	}

	dateRange := domain.DateRange(s.cfg.Alerting.ShoppingDateRange)

	disapproved, outOfStock, err := s.getProblematicItems(clickedIDs, dateRange)
	if err != nil {
		return errors.Wrap(err, "erro ao varrer o feed de status de produtos")
	}

	logrus.WithFields(logrus.Fields{
		"disapproved":  len(disapproved),
		"out_of_stock": len(outOfStock),
	}).Info("ProductAlert: varredura do feed concluída")

	if len(disapproved) == 0 && len(outOfStock) == 0 {
		logrus.Info("ProductAlert: nenhum problema encontrado, e-mail não será enviado")
		return nil
	}

	logrus.Info("ProductAlert: calculando impacto de desempenho")

	impactDisapproved, err := s.getPerformanceImpact(disapproved, dateRange)
	if err != nil {
		return err
	}

	impactOutOfStock, err := s.getPerformanceImpact(outOfStock, dateRange)
	if err != nil {
		return err
	}

	account, err := s.adsService.AccountInfo()
	if err != nil {
		return err
	}

	body, htmlBody := report.ProductAlertBodies(report.ProductAlertData{
		Disapproved:       disapproved,
		OutOfStock:        outOfStock,
		ImpactDisapproved: impactDisapproved,
		ImpactOutOfStock:  impactOutOfStock,
		DateRange:         dateRange,
	})

	mail := domain.Mail{
		To:       s.cfg.Alerting.Recipients,
		Subject:  report.ProductAlertSubject(account.DescriptiveName, utils.Today(account.TimeZone)),
		Body:     body,
		HTMLBody: htmlBody,
	}

	return s.mailSender.Send(mail)
}

// getProblematicItems varre o feed paginado de status e classifica os
// produtos clicados em reprovados e fora de estoque. Um produto pode
// aparecer nas duas listas. Falha de consulta individual de produto é
// registrada e o produto é pulado, sem abortar a varredura.
func (s *Service) getProblematicItems(clickedIDs domain.IDSet, dateRange domain.DateRange) ([]domain.ProductIssue, []domain.ProductIssue, error) {
	disapproved := make([]domain.ProductIssue, 0)
	outOfStock := make([]domain.ProductIssue, 0)

	pageToken := ""
	processedCount := 0

	for {
		page, err := s.merchantService.ListProductStatuses(pageToken)
		if err != nil {
			return nil, nil, err
		}

		if len(page.Resources) == 0 {
			break
		}

		for _, status := range page.Resources {
			processedCount++

			// Produtos sem cliques qualificados ficam fora da análise
			idNorm := utils.OfferID(status.ProductID)
			if !clickedIDs.Contains(idNorm) {
				continue
			}

			isDisapproved := status.IsDisapproved()

			product, err := s.merchantService.GetProduct(status.ProductID)
			if err != nil {
				logrus.WithError(err).WithField("product_id", status.ProductID).
					Warn("ProductAlert: erro ao consultar produto, pulando")
				continue
			}

			isOutOfStock := product.IsOutOfStock()

			if !isDisapproved && !isOutOfStock {
				continue
			}

			issue, err := s.getProductPerformance(idNorm, dateRange)
			if err != nil {
				logrus.WithError(err).WithField("product_id", status.ProductID).
					Warn("ProductAlert: erro ao consultar desempenho do produto, pulando")
				continue
			}

			if isDisapproved {
				disapproved = append(disapproved, issue)
			}
			if isOutOfStock {
				outOfStock = append(outOfStock, issue)
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	logrus.WithField("processed", processedCount).Debug("ProductAlert: registros de status processados")

	return disapproved, outOfStock, nil
}

// getProductPerformance agrega as métricas do produto na janela de análise
func (s *Service) getProductPerformance(productID string, dateRange domain.DateRange) (domain.ProductIssue, error) {
	issue := domain.ProductIssue{ID: productID}

	err := s.forEachRow(productPerformanceQuery(productID, dateRange), func(row *adsdomain.SearchRow) {
		issue.Clicks += row.Metrics.ClicksValue()
		issue.Cost += row.Metrics.Cost()
		issue.Conversions += row.Metrics.Conversions
		issue.Revenue += row.Metrics.ConversionsValue
	})
	if err != nil {
		return domain.ProductIssue{}, err
	}

	return issue, nil
}

// getPerformanceImpact calcula o impacto dos produtos sinalizados em
// relação ao total da janela. Lista vazia retorna zeros sem emitir consulta.
func (s *Service) getPerformanceImpact(items []domain.ProductIssue, dateRange domain.DateRange) (domain.ImpactSummary, error) {
	if len(items) == 0 {
		return domain.ImpactSummary{}, nil
	}

	flagged := make(domain.IDSet, len(items))
	for _, item := range items {
		flagged.Add(item.ID)
	}

	var lostClicks, totalClicks int64
	var lostRevenue, totalRevenue float64

	err := s.forEachRow(impactQuery(dateRange), func(row *adsdomain.SearchRow) {
		id := utils.OfferID(row.Segments.ProductItemID)
		clicks := row.Metrics.ClicksValue()
		revenue := row.Metrics.ConversionsValue

		if flagged.Contains(id) {
			lostClicks += clicks
			lostRevenue += revenue
		}

		totalClicks += clicks
		totalRevenue += revenue
	})
	if err != nil {
		return domain.ImpactSummary{}, err
	}

	return domain.ImpactSummary{
		LostClicks:     lostClicks,
		LostClicksPct:  roundPct(float64(lostClicks), float64(totalClicks)),
		LostRevenue:    lostRevenue,
		LostRevenuePct: roundPct(lostRevenue, totalRevenue),
	}, nil
}

func roundPct(lost, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * lost / total))
}

func (s *Service) forEachRow(query string, fn func(row *adsdomain.SearchRow)) error {
	it, err := s.adsService.SearchRows(query)
	if err != nil {
		return err
	}

	for {
		row, err := it.Next()
		if err != nil {
			if errors.Is(err, adsclient.ErrIteratorDone) {
				return nil
			}
			return err
		}

		fn(row)
	}
}

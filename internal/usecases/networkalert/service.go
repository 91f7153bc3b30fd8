package networkalert

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/shopping-alerter/infrastructure/mailer"
	"github.com/vfg2006/shopping-alerter/internal/config"
	"github.com/vfg2006/shopping-alerter/internal/domain"
	"github.com/vfg2006/shopping-alerter/internal/report"
	"github.com/vfg2006/shopping-alerter/pkg/utils"
)

// Service implementa o pipeline de alertas de gasto por rede: agrega o
// gasto das campanhas Performance Max em shopping/display/youtube/search,
// avalia os limites configurados e envia o e-mail de alerta.
type Service struct {
	cfg        *config.Config
	adsService googleads.AdsIntegrator
	mailSender mailer.Sender
}

func NewService(
	cfg *config.Config,
	adsService googleads.AdsIntegrator,
	mailSender mailer.Sender,
) NetworkAlerter {
	return &Service{
		cfg:        cfg,
		adsService: adsService,
		mailSender: mailSender,
	}
}

func (s *Service) Run() error {
	dateRange := domain.DateRange(s.cfg.Alerting.PMaxDateRange)

	logrus.WithField("date_range", dateRange).Info("NetworkAlert: iniciando análise de gasto por rede")

	spendByCampaign, err := s.collectNetworkSpend(dateRange)
	if err != nil {
		return errors.Wrap(err, "erro ao agregar gasto por rede")
	}

	alerts := EvaluateThresholds(spendByCampaign, s.cfg.Alerting.NetworkThresholds())
	if !alerts.HasAlerts() {
		logrus.Info("NetworkAlert: nenhuma campanha ultrapassou os limites, e-mail não será enviado")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"display": len(alerts.Display),
		"video":   len(alerts.Video),
		"search":  len(alerts.Search),
	}).Info("NetworkAlert: campanhas sinalizadas por rede")

	account, err := s.adsService.AccountInfo()
	if err != nil {
		return err
	}

	mail := domain.Mail{
		To:      s.cfg.Alerting.Recipients,
		Subject: report.NetworkAlertSubject(account.DescriptiveName, utils.Today(account.TimeZone)),
		Body:    report.NetworkAlertBody(alerts, dateRange, s.cfg.Alerting.NetworkThresholds()),
	}

	return s.mailSender.Send(mail)
}

// collectNetworkSpend monta o mapa campanha → gasto por rede a partir das
// quatro consultas do pipeline.
func (s *Service) collectNetworkSpend(dateRange domain.DateRange) (map[string]*domain.NetworkSpend, error) {
	spendByCampaign := make(map[string]*domain.NetworkSpend)

	// 1. Gasto de shopping por campanha
	err := s.forEachRow(shoppingSpendQuery(dateRange), func(row *adsdomain.SearchRow) {
		spend := ensureSpend(spendByCampaign, row.Campaign.Name)
		spend.Shopping += row.Metrics.Cost()
	})
	if err != nil {
		return nil, err
	}

	// 2. Índice de tipo de asset (apenas campanhas habilitadas)
	assetTypes := make(map[string]string)
	err = s.forEachRow(assetTypesQuery, func(row *adsdomain.SearchRow) {
		assetTypes[row.Asset.ResourceName] = row.AssetGroupAsset.FieldType
	})
	if err != nil {
		return nil, err
	}

	// 3. Gasto de display/video por campanha, classificado pelo índice.
	// Tipos de asset não reconhecidos são ignorados.
	err = s.forEachRow(displayVideoQuery(dateRange), func(row *adsdomain.SearchRow) {
		spend := ensureSpend(spendByCampaign, row.Campaign.Name)
		cost := row.Metrics.Cost()

		switch assetTypes[row.Segments.AssetInteractionTarget.Asset] {
		case adsdomain.AssetFieldTypeYoutubeVideo:
			spend.Youtube += cost
		case adsdomain.AssetFieldTypeMarketingImage,
			adsdomain.AssetFieldTypePortraitMarketingImage,
			adsdomain.AssetFieldTypeSquareMarketingImage:
			spend.Display += cost
		}
	})
	if err != nil {
		return nil, err
	}

	// 4. Total autoritativo por campanha
	campaignTotals := make(map[string]float64)
	err = s.forEachRow(campaignTotalsQuery(dateRange), func(row *adsdomain.SearchRow) {
		campaignTotals[row.Campaign.Name] = row.Metrics.Cost()
	})
	if err != nil {
		return nil, err
	}

	for name, total := range campaignTotals {
		spend := ensureSpend(spendByCampaign, name)
		spend.Total = total
	}

	// 5. Search é o resíduo do total; pode ficar negativo quando as demais
	// redes são superatribuídas, e isso é preservado.
	for name, spend := range spendByCampaign {
		if _, ok := campaignTotals[name]; !ok {
			spend.Total = 0
		}
		spend.Search = spend.Total - (spend.Shopping + spend.Display + spend.Youtube)
	}

	logrus.WithField("campaigns", len(spendByCampaign)).Debug("NetworkAlert: agregação de gasto concluída")

	return spendByCampaign, nil
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

func ensureSpend(spendByCampaign map[string]*domain.NetworkSpend, campaignName string) *domain.NetworkSpend {
	spend, ok := spendByCampaign[campaignName]
	if !ok {
		spend = &domain.NetworkSpend{}
		spendByCampaign[campaignName] = spend
	}
	return spend
}

// EvaluateThresholds avalia cada campanha contra os limites por rede.
// Campanhas com total zero são excluídas (evita divisão por zero) e a
// comparação é estritamente maior: proporção igual ao limite não sinaliza.
func EvaluateThresholds(spendByCampaign map[string]*domain.NetworkSpend, thresholds domain.NetworkThresholds) domain.NetworkAlerts {
	var alerts domain.NetworkAlerts

	for campaignName, spend := range spendByCampaign {
		if spend.Total == 0 {
			continue
		}

		displayRatio := spend.Display / spend.Total
		videoRatio := spend.Youtube / spend.Total
		searchRatio := spend.Search / spend.Total

		if displayRatio > thresholds.Display {
			alerts.Display = append(alerts.Display, newAlertEntry(campaignName, displayRatio, spend.Display))
		}
		if videoRatio > thresholds.Video {
			alerts.Video = append(alerts.Video, newAlertEntry(campaignName, videoRatio, spend.Youtube))
		}
		if searchRatio > thresholds.Search {
			alerts.Search = append(alerts.Search, newAlertEntry(campaignName, searchRatio, spend.Search))
		}
	}

	sortAlertEntries(alerts.Display)
	sortAlertEntries(alerts.Video)
	sortAlertEntries(alerts.Search)

	return alerts
}

func newAlertEntry(campaignName string, ratio float64, spend float64) domain.NetworkAlertEntry {
	return domain.NetworkAlertEntry{
		Campaign: campaignName,
		Ratio:    utils.RoundWithOneDecimalPlace(ratio * 100),
		Spend:    utils.RoundWithTwoDecimalPlace(spend),
	}
}

// Mapas não têm ordem estável; o e-mail lista campanhas em ordem alfabética
func sortAlertEntries(entries []domain.NetworkAlertEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Campaign < entries[j].Campaign
	})
}

package networkalert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/domain"
	adsmocks "github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/mocks"
	mailermocks "github.com/vfg2006/shopping-alerter/infrastructure/mailer/mocks"
	"github.com/vfg2006/shopping-alerter/internal/config"
	"github.com/vfg2006/shopping-alerter/internal/domain"
	"github.com/vfg2006/shopping-alerter/pkg/utils"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Alerting: config.Alerting{
			Recipients:       []string{"alertas@example.com"},
			DisplayThreshold: 0.01,
			VideoThreshold:   0.01,
			SearchThreshold:  0.05,
			PMaxDateRange:    "LAST_7_DAYS",
		},
	}
}

func TestEvaluateThresholds(t *testing.T) {
	thresholds := domain.NetworkThresholds{
		Display: 0.01,
		Video:   0.01,
		Search:  0.05,
	}

	tests := []struct {
		name     string
		spend    map[string]*domain.NetworkSpend
		validate func(t *testing.T, alerts domain.NetworkAlerts)
	}{
		{
			name: "Proporção igual ao limite não sinaliza (comparação estrita)",
			spend: map[string]*domain.NetworkSpend{
				"Campanha A": {Total: 100, Display: 1, Search: 5},
			},
			validate: func(t *testing.T, alerts domain.NetworkAlerts) {
				assert.False(t, alerts.HasAlerts())
			},
		},
		{
			name: "Display acima do limite sinaliza com proporção e gasto arredondados",
			spend: map[string]*domain.NetworkSpend{
				"Campanha A": {Total: 300, Display: 10.004},
			},
			validate: func(t *testing.T, alerts domain.NetworkAlerts) {
				assert.Len(t, alerts.Display, 1)
				assert.Equal(t, "Campanha A", alerts.Display[0].Campaign)
				assert.Equal(t, 3.3, alerts.Display[0].Ratio)
				assert.Equal(t, 10.0, alerts.Display[0].Spend)
				assert.Empty(t, alerts.Video)
				assert.Empty(t, alerts.Search)
			},
		},
		{
			name: "Campanha com total zero é excluída da avaliação",
			spend: map[string]*domain.NetworkSpend{
				"Campanha A": {Total: 0, Display: 5, Youtube: 5, Search: 5},
			},
			validate: func(t *testing.T, alerts domain.NetworkAlerts) {
				assert.False(t, alerts.HasAlerts())
			},
		},
		{
			name: "Resíduo negativo de search não sinaliza",
			spend: map[string]*domain.NetworkSpend{
				"Campanha A": {Total: 100, Shopping: 120, Search: -20},
			},
			validate: func(t *testing.T, alerts domain.NetworkAlerts) {
				assert.Empty(t, alerts.Search)
			},
		},
		{
			name: "Campanhas sinalizadas são listadas em ordem alfabética",
			spend: map[string]*domain.NetworkSpend{
				"Campanha B": {Total: 100, Search: 10},
				"Campanha A": {Total: 100, Search: 20},
			},
			validate: func(t *testing.T, alerts domain.NetworkAlerts) {
				assert.Len(t, alerts.Search, 2)
				assert.Equal(t, "Campanha A", alerts.Search[0].Campaign)
				assert.Equal(t, "Campanha B", alerts.Search[1].Campaign)
			},
		},
		{
			name: "Mesma campanha pode sinalizar em mais de uma rede",
			spend: map[string]*domain.NetworkSpend{
				"Campanha A": {Total: 100, Display: 2, Youtube: 3, Search: 6},
			},
			validate: func(t *testing.T, alerts domain.NetworkAlerts) {
				assert.Len(t, alerts.Display, 1)
				assert.Len(t, alerts.Video, 1)
				assert.Len(t, alerts.Search, 1)
				assert.Equal(t, 3.0, alerts.Video[0].Ratio)
				assert.Equal(t, 3.0, alerts.Video[0].Spend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, EvaluateThresholds(tt.spend, thresholds))
		})
	}
}

func TestService_collectNetworkSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAds := adsmocks.NewMockAdsIntegrator(ctrl)

	service := &Service{
		cfg:        testConfig(),
		adsService: mockAds,
	}

	// As consultas são emitidas na ordem: shopping, índice de assets,
	// display/video e totais por campanha
	shoppingRows := []adsdomain.SearchRow{
		{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "25000000"}},
		{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "15000000"}},
		{Campaign: adsdomain.Campaign{Name: "Campanha B"}, Metrics: adsdomain.Metrics{CostMicros: "10000000"}},
	}
	assetRows := []adsdomain.SearchRow{
		{Asset: adsdomain.Asset{ResourceName: "customers/1/assets/10"}, AssetGroupAsset: adsdomain.AssetGroupAsset{FieldType: adsdomain.AssetFieldTypeMarketingImage}},
		{Asset: adsdomain.Asset{ResourceName: "customers/1/assets/20"}, AssetGroupAsset: adsdomain.AssetGroupAsset{FieldType: adsdomain.AssetFieldTypeYoutubeVideo}},
		{Asset: adsdomain.Asset{ResourceName: "customers/1/assets/30"}, AssetGroupAsset: adsdomain.AssetGroupAsset{FieldType: "HEADLINE"}},
	}
	displayVideoRows := []adsdomain.SearchRow{
		{
			Campaign: adsdomain.Campaign{Name: "Campanha A"},
			Segments: adsdomain.Segments{AssetInteractionTarget: adsdomain.AssetInteractionTarget{Asset: "customers/1/assets/10"}},
			Metrics:  adsdomain.Metrics{CostMicros: "3000000"},
		},
		{
			Campaign: adsdomain.Campaign{Name: "Campanha A"},
			Segments: adsdomain.Segments{AssetInteractionTarget: adsdomain.AssetInteractionTarget{Asset: "customers/1/assets/20"}},
			Metrics:  adsdomain.Metrics{CostMicros: "2000000"},
		},
		{
			// Asset fora do índice (texto) é ignorado na classificação
			Campaign: adsdomain.Campaign{Name: "Campanha A"},
			Segments: adsdomain.Segments{AssetInteractionTarget: adsdomain.AssetInteractionTarget{Asset: "customers/1/assets/30"}},
			Metrics:  adsdomain.Metrics{CostMicros: "9000000"},
		},
	}
	totalRows := []adsdomain.SearchRow{
		{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "100000000"}},
	}

	mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(shoppingRows), nil)
	mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(assetRows), nil)
	mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(displayVideoRows), nil)
	mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(totalRows), nil)

	spend, err := service.collectNetworkSpend(domain.DateRangeLast7Days)

	assert.NoError(t, err)
	assert.Len(t, spend, 2)

	// Campanha A: search é o resíduo do total autoritativo
	assert.Equal(t, 40.0, spend["Campanha A"].Shopping)
	assert.Equal(t, 3.0, spend["Campanha A"].Display)
	assert.Equal(t, 2.0, spend["Campanha A"].Youtube)
	assert.Equal(t, 100.0, spend["Campanha A"].Total)
	assert.Equal(t, 55.0, spend["Campanha A"].Search)

	// Campanha B não aparece nos totais: total zerado e resíduo negativo preservado
	assert.Equal(t, 10.0, spend["Campanha B"].Shopping)
	assert.Equal(t, 0.0, spend["Campanha B"].Total)
	assert.Equal(t, -10.0, spend["Campanha B"].Search)
}

func TestService_Run(t *testing.T) {
	tests := []struct {
		name  string
		setup func(mockAds *adsmocks.MockAdsIntegrator, mockMailer *mailermocks.MockSender)
	}{
		{
			name: "Search acima do limite dispara exatamente um e-mail",
			setup: func(mockAds *adsmocks.MockAdsIntegrator, mockMailer *mailermocks.MockSender) {
				shoppingRows := []adsdomain.SearchRow{
					{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "94000000"}},
				}
				totalRows := []adsdomain.SearchRow{
					{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "100000000"}},
				}

				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(shoppingRows), nil)
				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(nil), nil)
				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(nil), nil)
				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(totalRows), nil)

				mockAds.EXPECT().AccountInfo().Return(&adsdomain.Customer{
					DescriptiveName: "Conta Teste",
					TimeZone:        "UTC",
				}, nil)

				mockMailer.EXPECT().Send(gomock.Any()).DoAndReturn(func(mail domain.Mail) error {
					assert.Equal(t, []string{"alertas@example.com"}, mail.To)
					assert.Equal(t, "PMax Network Alert - Conta Teste - "+utils.Today("UTC"), mail.Subject)
					assert.Contains(t, mail.Body, "Search Network Alerts (>5% threshold):")
					assert.Contains(t, mail.Body, "- Campanha A: 6.0% ($6.00)")
					assert.NotContains(t, mail.Body, "Display Network Alerts")
					return nil
				})
			},
		},
		{
			name: "Nenhuma campanha acima do limite: nenhum e-mail enviado",
			setup: func(mockAds *adsmocks.MockAdsIntegrator, mockMailer *mailermocks.MockSender) {
				shoppingRows := []adsdomain.SearchRow{
					{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "100000000"}},
				}
				totalRows := []adsdomain.SearchRow{
					{Campaign: adsdomain.Campaign{Name: "Campanha A"}, Metrics: adsdomain.Metrics{CostMicros: "100000000"}},
				}

				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(shoppingRows), nil)
				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(nil), nil)
				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(nil), nil)
				mockAds.EXPECT().SearchRows(gomock.Any()).Return(adsclient.NewSliceIterator(totalRows), nil)

				// Sem expectativa de AccountInfo nem de Send: qualquer chamada falha o teste
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAds := adsmocks.NewMockAdsIntegrator(ctrl)
			mockMailer := mailermocks.NewMockSender(ctrl)

			tt.setup(mockAds, mockMailer)

			service := &Service{
				cfg:        testConfig(),
				adsService: mockAds,
				mailSender: mockMailer,
			}

			assert.NoError(t, service.Run())
		})
	}
}

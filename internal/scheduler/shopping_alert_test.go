package scheduler

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopping-alerter/internal/domain"
	networkmocks "github.com/vfg2006/shopping-alerter/internal/usecases/networkalert/mocks"
	productmocks "github.com/vfg2006/shopping-alerter/internal/usecases/productalert/mocks"
	"github.com/vfg2006/shopping-alerter/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func TestShoppingAlertService_RunAlerts(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mockNetwork *networkmocks.MockNetworkAlerter, mockProduct *productmocks.MockProductAlerter)
		validate func(t *testing.T, service *ShoppingAlertService, err error)
	}{
		{
			name: "Rodada completa executa os pipelines em sequência",
			setup: func(mockNetwork *networkmocks.MockNetworkAlerter, mockProduct *productmocks.MockProductAlerter) {
				clickedIDs := domain.NewIDSet("sku1", "sku2")

				gomock.InOrder(
					mockNetwork.EXPECT().Run().Return(nil),
					mockProduct.EXPECT().CollectClickedIDs().Return(clickedIDs, nil),
					mockProduct.EXPECT().Run(clickedIDs).Return(nil),
				)
			},
			validate: func(t *testing.T, service *ShoppingAlertService, err error) {
				assert.NoError(t, err)
				assert.Empty(t, service.lastRunError)
				assert.False(t, service.lastRunCompletedAt.IsZero())
			},
		},
		{
			name: "Falha no pipeline de redes interrompe a rodada",
			setup: func(mockNetwork *networkmocks.MockNetworkAlerter, mockProduct *productmocks.MockProductAlerter) {
				mockNetwork.EXPECT().Run().Return(errors.New("erro na consulta de gasto"))
				// O pipeline de produtos não chega a executar
			},
			validate: func(t *testing.T, service *ShoppingAlertService, err error) {
				assert.Error(t, err)
				assert.Equal(t, "erro na consulta de gasto", service.lastRunError)
			},
		},
		{
			name: "Falha na coleta de cliques interrompe antes da análise de produtos",
			setup: func(mockNetwork *networkmocks.MockNetworkAlerter, mockProduct *productmocks.MockProductAlerter) {
				mockNetwork.EXPECT().Run().Return(nil)
				mockProduct.EXPECT().CollectClickedIDs().Return(nil, errors.New("erro na coleta"))
			},
			validate: func(t *testing.T, service *ShoppingAlertService, err error) {
				assert.Error(t, err)
				assert.Equal(t, "erro na coleta", service.lastRunError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockNetwork := networkmocks.NewMockNetworkAlerter(ctrl)
			mockProduct := productmocks.NewMockProductAlerter(ctrl)

			tt.setup(mockNetwork, mockProduct)

			service := &ShoppingAlertService{
				networkAlerter: mockNetwork,
				productAlerter: mockProduct,
			}

			err := service.RunAlerts()

			tt.validate(t, service, err)
		})
	}
}

func TestShoppingAlertService_RunAlerts_alreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa configurada: rodada em andamento não dispara os pipelines
	mockNetwork := networkmocks.NewMockNetworkAlerter(ctrl)
	mockProduct := productmocks.NewMockProductAlerter(ctrl)

	service := &ShoppingAlertService{
		networkAlerter: mockNetwork,
		productAlerter: mockProduct,
		syncRunning:    true,
	}

	assert.NoError(t, service.RunAlerts())
}

func TestShoppingAlertService_GetStatus(t *testing.T) {
	service := &ShoppingAlertService{
		config: ShoppingAlertConfig{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, "", status["last_run_error"])
}

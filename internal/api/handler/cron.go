package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/internal/scheduler"
	"github.com/vfg2006/shopping-alerter/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeShoppingAlert = "shopping-alert"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ShoppingAlertService *scheduler.ShoppingAlertService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeShoppingAlert, CronJobTypeAll:
			if services.ShoppingAlertService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de alertas de shopping não disponível", nil)
				return
			}
			services.ShoppingAlertService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: shopping-alert, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.ShoppingAlertService != nil {
			status["shopping_alert"] = services.ShoppingAlertService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}

// Package scheduler contém o agendamento da execução dos pipelines de alerta
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/internal/config"
	"github.com/vfg2006/shopping-alerter/internal/usecases/networkalert"
	"github.com/vfg2006/shopping-alerter/internal/usecases/productalert"
	"github.com/vfg2006/shopping-alerter/pkg/log"
)

type ShoppingAlertConfig struct {
	CronSchedule string
	Enabled      bool
}

// ShoppingAlertService agenda e executa a rodada combinada de alertas:
// primeiro o pipeline de redes PMax, depois a coleta de produtos clicados
// e por fim o pipeline de saúde de produtos, estritamente em sequência.
type ShoppingAlertService struct {
	scheduler          *gocron.Scheduler
	networkAlerter     networkalert.NetworkAlerter
	productAlerter     productalert.ProductAlerter
	config             ShoppingAlertConfig
	syncRunning        bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunError       string
}

func NewShoppingAlertService(
	networkAlerter networkalert.NetworkAlerter,
	productAlerter productalert.ProductAlerter,
	cfg *config.Config,
) *ShoppingAlertService {
	alertConfig := ShoppingAlertConfig{
		CronSchedule: cfg.ShoppingAlertSync.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.ShoppingAlertSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": alertConfig.CronSchedule,
	}).Info("Configuração do agendador de alertas de shopping carregada")

	return &ShoppingAlertService{
		scheduler:      scheduler,
		networkAlerter: networkAlerter,
		productAlerter: productAlerter,
		config:         alertConfig,
	}
}

func (s *ShoppingAlertService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de alertas de shopping desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de alertas de shopping")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunAlerts(); err != nil {
			logrus.WithError(err).Error("Erro na execução dos alertas de shopping")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar execução dos alertas de shopping: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron dos alertas de shopping")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAlerts executa uma rodada completa dos dois pipelines. Os pipelines
// não compartilham estado mutável além do conjunto de produtos clicados.
func (s *ShoppingAlertService) RunAlerts() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Rodada de alertas de shopping já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	// Cada rodada recebe um ID próprio para correlacionar os logs
	ctx, _ := log.WithRunID(context.Background())
	runLog := log.ForContext(ctx)

	runLog.Info("Iniciando rodada de alertas de shopping")

	runLog.Info("Etapa 1/3: alertas de rede das campanhas PMax")
	if err := s.networkAlerter.Run(); err != nil {
		s.lastRunError = err.Error()
		return err
	}

	runLog.Info("Etapa 2/3: coletando cliques para análise de produtos")
	clickedIDs, err := s.productAlerter.CollectClickedIDs()
	if err != nil {
		s.lastRunError = err.Error()
		return err
	}

	runLog.Info("Etapa 3/3: analisando problemas de produtos")
	if err := s.productAlerter.Run(clickedIDs); err != nil {
		s.lastRunError = err.Error()
		return err
	}

	s.lastRunError = ""
	runLog.Info("Rodada de alertas de shopping concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma rodada de alertas
func (s *ShoppingAlertService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Rodada de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando rodada manual de alertas de shopping")
	go func() {
		if err := s.RunAlerts(); err != nil {
			logrus.WithError(err).Error("Erro na rodada manual de alertas de shopping")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ShoppingAlertService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":          s.config.Enabled,
		"sync_cron":             s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_error":        s.lastRunError,
	}
}

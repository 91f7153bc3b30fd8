package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/merchant"
	"github.com/vfg2006/shopping-alerter/infrastructure/integrator/merchant/merchantclient"
	"github.com/vfg2006/shopping-alerter/infrastructure/mailer"
	"github.com/vfg2006/shopping-alerter/internal/api"
	"github.com/vfg2006/shopping-alerter/internal/config"
	"github.com/vfg2006/shopping-alerter/internal/scheduler"
	"github.com/vfg2006/shopping-alerter/internal/usecases/networkalert"
	"github.com/vfg2006/shopping-alerter/internal/usecases/productalert"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	merchantClient := merchantclient.NewClient(cfg)
	merchantIntegrator := merchant.New(cfg, merchantClient)

	mailSender := mailer.New(cfg)

	networkAlertService := networkalert.NewService(cfg, adsIntegrator, mailSender)
	productAlertService := productalert.NewService(cfg, adsIntegrator, merchantIntegrator, mailSender)

	shoppingAlertService := scheduler.NewShoppingAlertService(
		networkAlertService,
		productAlertService,
		cfg,
	)

	if err := shoppingAlertService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de alertas de shopping")
	} else {
		logrus.Info("Agendador de alertas de shopping iniciado com sucesso")
	}

	server, err := api.New(cfg, shoppingAlertService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/shopping-alerter/internal/domain"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	GoogleAds         GoogleAds         `mapstructure:",squash"`
	Merchant          Merchant          `mapstructure:",squash"`
	SMTP              SMTP              `mapstructure:",squash"`
	Alerting          Alerting          `mapstructure:",squash"`
	ShoppingAlertSync ShoppingAlertSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	CustomerID      string `mapstructure:"google_ads_customer_id"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	AccessToken     string `mapstructure:"google_ads_access_token"`
}

type Merchant struct {
	URL         string `mapstructure:"merchant_url"`
	AccountID   string `mapstructure:"merchant_account_id"`
	AccessToken string `mapstructure:"merchant_access_token"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	User     string `mapstructure:"smtp_user"`
	Password string `mapstructure:"smtp_password"`
	From     string `mapstructure:"smtp_from"`
}

type Alerting struct {
	Recipients        []string `mapstructure:"alert_emails"`
	DisplayThreshold  float64  `mapstructure:"display_threshold"`
	VideoThreshold    float64  `mapstructure:"video_threshold"`
	SearchThreshold   float64  `mapstructure:"search_threshold"`
	MinClicks         int64    `mapstructure:"min_clicks"`
	PMaxDateRange     string   `mapstructure:"pmax_date_range"`
	ShoppingDateRange string   `mapstructure:"shopping_date_range"`
}

type ShoppingAlertSync struct {
	CronSchedule string `mapstructure:"shopping_alert_sync_cron"`
	Enabled      bool   `mapstructure:"shopping_alert_sync_enabled"`
}

// NetworkThresholds converte os limites configurados para o tipo de domínio
func (a Alerting) NetworkThresholds() domain.NetworkThresholds {
	return domain.NetworkThresholds{
		Display: a.DisplayThreshold,
		Video:   a.VideoThreshold,
		Search:  a.SearchThreshold,
	}
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")

	viper.SetDefault("MERCHANT_URL", "https://shoppingcontent.googleapis.com/content/v2.1")

	viper.SetDefault("SMTP_PORT", 587)

	// Limites de proporção de gasto por rede (fração do gasto total)
	viper.SetDefault("DISPLAY_THRESHOLD", 0.01) // 1% do gasto total
	viper.SetDefault("VIDEO_THRESHOLD", 0.01)   // 1% do gasto total
	viper.SetDefault("SEARCH_THRESHOLD", 0.05)  // 5% do gasto total
	viper.SetDefault("MIN_CLICKS", 1)

	viper.SetDefault("PMAX_DATE_RANGE", "LAST_7_DAYS")
	viper.SetDefault("SHOPPING_DATE_RANGE", "LAST_7_DAYS")

	viper.SetDefault("SHOPPING_ALERT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("SHOPPING_ALERT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	if err := domain.DateRange(config.Alerting.PMaxDateRange).Validate(); err != nil {
		return nil, fmt.Errorf("PMAX_DATE_RANGE: %w", err)
	}
	if err := domain.DateRange(config.Alerting.ShoppingDateRange).Validate(); err != nil {
		return nil, fmt.Errorf("SHOPPING_DATE_RANGE: %w", err)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

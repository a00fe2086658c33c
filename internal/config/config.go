package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Ranking       Ranking       `mapstructure:",squash"`
	Tranco        Tranco        `mapstructure:",squash"`
	RankingWarmup RankingWarmup `mapstructure:",squash"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Ranking agrupa os parâmetros do cache de rankings por domínio
type Ranking struct {
	CacheHours    float64 `mapstructure:"cache_hours"`
	MaxConcurrent int     `mapstructure:"ranking_max_concurrent"`
	MaxDomains    int     `mapstructure:"ranking_max_domains"`
	KeepOnEmpty   bool    `mapstructure:"ranking_keep_on_empty"`
}

// Tranco agrupa os parâmetros do cliente HTTP da API do Tranco
type Tranco struct {
	BaseURL                 string  `mapstructure:"tranco_base_url"`
	TimeoutSeconds          int     `mapstructure:"tranco_timeout_seconds"`
	BreakerMaxRequests      uint32  `mapstructure:"tranco_breaker_max_requests"`
	BreakerIntervalSeconds  int     `mapstructure:"tranco_breaker_interval_seconds"`
	BreakerTimeoutSeconds   int     `mapstructure:"tranco_breaker_timeout_seconds"`
	BreakerFailureThreshold float64 `mapstructure:"tranco_breaker_failure_threshold"`
	BreakerMinRequests      uint32  `mapstructure:"tranco_breaker_min_requests"`
}

type RankingWarmup struct {
	CronSchedule string   `mapstructure:"ranking_warmup_cron"`
	Domains      []string `mapstructure:"ranking_warmup_domains"`
	Enabled      bool     `mapstructure:"ranking_warmup_enabled"`
	// Registros que vencem antes da próxima execução já são renovados nesta
	RefreshAheadHours float64 `mapstructure:"ranking_warmup_refresh_ahead_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ranking")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("CACHE_HOURS", 24)
	viper.SetDefault("RANKING_MAX_CONCURRENT", 10)
	viper.SetDefault("RANKING_MAX_DOMAINS", 50)
	viper.SetDefault("RANKING_KEEP_ON_EMPTY", false)

	viper.SetDefault("TRANCO_BASE_URL", "https://tranco-list.eu/api/ranks")
	viper.SetDefault("TRANCO_TIMEOUT_SECONDS", 15)
	viper.SetDefault("TRANCO_BREAKER_MAX_REQUESTS", 5)
	viper.SetDefault("TRANCO_BREAKER_INTERVAL_SECONDS", 30)
	viper.SetDefault("TRANCO_BREAKER_TIMEOUT_SECONDS", 60)
	viper.SetDefault("TRANCO_BREAKER_FAILURE_THRESHOLD", 0.8)
	viper.SetDefault("TRANCO_BREAKER_MIN_REQUESTS", 5)

	viper.SetDefault("RANKING_WARMUP_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("RANKING_WARMUP_DOMAINS", []string{})
	viper.SetDefault("RANKING_WARMUP_ENABLED", false)
	viper.SetDefault("RANKING_WARMUP_REFRESH_AHEAD_HOURS", 6) // Mesmo intervalo da cron padrão

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

func (c *Config) validate() error {
	if c.Ranking.CacheHours <= 0 {
		return fmt.Errorf("CACHE_HOURS deve ser positivo, recebido: %v", c.Ranking.CacheHours)
	}

	if c.Ranking.MaxConcurrent <= 0 {
		return fmt.Errorf("RANKING_MAX_CONCURRENT deve ser positivo, recebido: %d", c.Ranking.MaxConcurrent)
	}

	if c.Ranking.MaxDomains <= 0 {
		return fmt.Errorf("RANKING_MAX_DOMAINS deve ser positivo, recebido: %d", c.Ranking.MaxDomains)
	}

	if c.RankingWarmup.RefreshAheadHours < 0 {
		return fmt.Errorf("RANKING_WARMUP_REFRESH_AHEAD_HOURS não pode ser negativo, recebido: %v", c.RankingWarmup.RefreshAheadHours)
	}

	if c.Tranco.BaseURL == "" {
		return fmt.Errorf("TRANCO_BASE_URL é obrigatório")
	}

	return nil
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

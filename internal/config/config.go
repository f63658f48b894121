package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Backends aceitos em HISTORY_STORE
const (
	HistoryStoreMemory   = "memory"
	HistoryStorePostgres = "postgres"
	HistoryStoreSQLite   = "sqlite"
	HistoryStoreBolt     = "bolt"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	History          History          `mapstructure:",squash"`
	Dataset          Dataset          `mapstructure:",squash"`
	Reveal           Reveal           `mapstructure:",squash"`
	Chat             Chat             `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	HistoryRetention HistoryRetention `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type History struct {
	Store      string `mapstructure:"history_store"`
	SQLitePath string `mapstructure:"history_sqlite_path"`
	BoltPath   string `mapstructure:"history_bolt_path"`
	Key        string `mapstructure:"history_key"`
}

type Dataset struct {
	File string `mapstructure:"dataset_file"`
}

// Reveal guarda os tempos da animação em milissegundos
type Reveal struct {
	ResponseDelayMs int `mapstructure:"response_delay_ms"`
	CharDelayMs     int `mapstructure:"reveal_char_delay_ms"`
	LineDelayMs     int `mapstructure:"reveal_line_delay_ms"`
	LongThreshold   int `mapstructure:"reveal_long_threshold"`
}

func (r Reveal) ResponseDelay() time.Duration {
	return time.Duration(r.ResponseDelayMs) * time.Millisecond
}

func (r Reveal) CharDelay() time.Duration {
	return time.Duration(r.CharDelayMs) * time.Millisecond
}

func (r Reveal) LineDelay() time.Duration {
	return time.Duration(r.LineDelayMs) * time.Millisecond
}

type Chat struct {
	UserDisplayName string `mapstructure:"user_display_name"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type HistoryRetention struct {
	CronSchedule string `mapstructure:"history_retention_cron"`
	Days         int    `mapstructure:"history_retention_days"`
	Enabled      bool   `mapstructure:"history_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creator_assistant?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("HISTORY_STORE", HistoryStoreMemory)
	viper.SetDefault("HISTORY_SQLITE_PATH", "creator-assistant.db")
	viper.SetDefault("HISTORY_BOLT_PATH", "creator-assistant.bolt")
	viper.SetDefault("HISTORY_KEY", "chatHistory")

	viper.SetDefault("DATASET_FILE", "") // vazio usa o dataset de exemplo

	viper.SetDefault("RESPONSE_DELAY_MS", 800)    // Latência simulada antes da resposta
	viper.SetDefault("REVEAL_CHAR_DELAY_MS", 12)  // Intervalo entre caracteres
	viper.SetDefault("REVEAL_LINE_DELAY_MS", 60)  // Intervalo entre linhas em respostas longas
	viper.SetDefault("REVEAL_LONG_THRESHOLD", 600) // Acima disto (em caracteres) revela por linha

	viper.SetDefault("USER_DISPLAY_NAME", "Dave")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("HISTORY_RETENTION_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("HISTORY_RETENTION_DAYS", 30)         // Conversas paradas há mais de 30 dias
	viper.SetDefault("HISTORY_RETENTION_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	config.History.Store = strings.ToLower(strings.TrimSpace(config.History.Store))
	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejeita combinações que impediriam o serviço de subir
func (c *Config) Validate() error {
	switch c.History.Store {
	case HistoryStoreMemory, HistoryStorePostgres, HistoryStoreSQLite, HistoryStoreBolt:
	default:
		return fmt.Errorf("HISTORY_STORE inválido: %q (use memory, postgres, sqlite ou bolt)", c.History.Store)
	}

	if strings.TrimSpace(c.History.Key) == "" {
		return fmt.Errorf("HISTORY_KEY não pode ser vazio")
	}

	if c.Reveal.ResponseDelayMs < 0 || c.Reveal.CharDelayMs < 0 || c.Reveal.LineDelayMs < 0 {
		return fmt.Errorf("os intervalos da animação não podem ser negativos")
	}

	if c.HistoryRetention.Enabled && c.HistoryRetention.Days <= 0 {
		return fmt.Errorf("HISTORY_RETENTION_DAYS deve ser maior que zero")
	}

	return nil
}

// IsDevelopment indica se os logs devem omitir campos ruidosos
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development" || a.Env == "dev"
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

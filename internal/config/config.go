package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	URI  string `mapstructure:"mongodb_uri"`
	Name string `mapstructure:"mongodb_database"`
	// ForceFallback pula a tentativa de conexão e usa o dataset gerado
	ForceFallback  bool `mapstructure:"force_fallback"`
	ConnectTimeout int  `mapstructure:"mongodb_connect_timeout_seconds"`
}

type Dataset struct {
	// Seed do gerador do dataset de fallback. 0 deriva do relógio a cada
	// start (comportamento original); qualquer outro valor produz fixtures
	// reproduzíveis.
	Seed int64 `mapstructure:"dataset_seed"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	WindowHours  int    `mapstructure:"snapshot_sync_window_hours"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DATABASE", "trendai")
	viper.SetDefault("MONGODB_CONNECT_TIMEOUT_SECONDS", 5)
	viper.SetDefault("FORCE_FALLBACK", false)

	viper.SetDefault("DATASET_SEED", 0)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults para persistência periódica de snapshots de métricas
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("SNAPSHOT_SYNC_WINDOW_HOURS", 24)
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

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

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv               = "local"
	defaultConfigDir         = ".ecitoyen"
	defaultDataFile          = "portal.db"
	defaultStorageDriver     = DriverSQLite
	defaultAPIBaseURL        = "http://localhost:8000/api"
	defaultProcessingDelayMs = 2000
	defaultAuthMode          = "demo"
	defaultHTTPTimeout       = 30
)

// Драйверы хранилища (STORAGE_DRIVER).
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Env               string `mapstructure:"app_env"`
	ConfigDir         string `mapstructure:"config_dir"`
	StorageDriver     string `mapstructure:"storage_driver"`
	DataPath          string `mapstructure:"data_path"`
	APIBaseURL        string `mapstructure:"api_base_url"`
	ProcessingDelayMs int    `mapstructure:"processing_delay_ms"`
	AuthMode          string `mapstructure:"auth_mode"`
	HTTPTimeout       int    `mapstructure:"http_timeout_seconds"`
}

// MustLoad загружает конфигурацию клиента
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и значения по умолчанию.
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("STORAGE_DRIVER", defaultStorageDriver)
	viper.SetDefault("API_BASE_URL", defaultAPIBaseURL)
	viper.SetDefault("PROCESSING_DELAY_MS", defaultProcessingDelayMs)
	viper.SetDefault("AUTH_MODE", defaultAuthMode)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	cfg := &Config{
		Env:               viper.GetString("APP_ENV"),
		ConfigDir:         configDir,
		StorageDriver:     viper.GetString("STORAGE_DRIVER"),
		DataPath:          dataPath,
		APIBaseURL:        viper.GetString("API_BASE_URL"),
		ProcessingDelayMs: viper.GetInt("PROCESSING_DELAY_MS"),
		AuthMode:          viper.GetString("AUTH_MODE"),
		HTTPTimeout:       viper.GetInt("HTTP_TIMEOUT_SECONDS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.StorageDriver == DriverSQLite {
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("storage_driver должен быть sqlite или memory, получено %q", c.StorageDriver)
	}
	if c.StorageDriver == DriverSQLite && c.DataPath == "" {
		return fmt.Errorf("data_path не может быть пустым")
	}
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url не может быть пустым")
	}
	if c.ProcessingDelayMs < 0 {
		return fmt.Errorf("processing_delay_ms не может быть отрицательным")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout_seconds должен быть положительным")
	}
	return nil
}

// ProcessingDelay - пауза, имитирующая обработку оплаты или записи.
func (c *Config) ProcessingDelay() time.Duration {
	return time.Duration(c.ProcessingDelayMs) * time.Millisecond
}

// Timeout - таймаут HTTP-клиента удаленного API.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}

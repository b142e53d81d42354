package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecitoyen/cmd/client/cmd/types"
	"ecitoyen/internal/app/client"
	"ecitoyen/internal/app/client/config"
	"ecitoyen/internal/domain/session"
	"ecitoyen/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	ephemeral bool
	apiURL    string
	app       *client.App
)

var rootCmd = &cobra.Command{
	Use:   "ecitoyen",
	Short: "e-Citoyen - portail municipal en ligne de commande",
	Long: `e-Citoyen - клиент муниципального портала: заявки на документы,
оплата сборов, запись на прием и уведомления.

Все данные хранятся локально (SQLite в ~/.ecitoyen) и переживают перезапуск.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Erreur: %s\n", verr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		}
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if ephemeral {
		cfg.StorageDriver = config.DriverMemory
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}

	env := cfg.Env
	if debug {
		env = "local"
	}
	log := logger.New(env)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".ecitoyen"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().Bool("json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "хранить данные только в памяти")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "базовый URL удаленного API")
}

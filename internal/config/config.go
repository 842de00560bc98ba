// Package config loads application settings from the config file,
// environment and flags, and configures the process-wide logger.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/alexanderramin/intray/internal/llm"
)

// Settings is a snapshot of the resolved configuration.
type Settings struct {
	DataDir string
	Dataset string
	LLM     llm.Config
}

// Init wires viper to the config file and environment. When cfgFile is
// empty the standard locations are searched; a missing file is fine,
// defaults apply.
func Init(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(filepath.Join(home, ".config", "intray"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("INTRAY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("data.dir", defaultDataDir())
	viper.SetDefault("data.dataset", "default")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")

	def := llm.DefaultConfig()
	viper.SetDefault("llm.endpoint", def.Endpoint)
	viper.SetDefault("llm.model", def.Model)
	viper.SetDefault("llm.temperature", def.Temperature)
	viper.SetDefault("llm.max_tokens", def.MaxTokens)
	viper.SetDefault("llm.timeout_ms", def.TimeoutMs)
	viper.SetDefault("llm.max_retries", def.MaxRetries)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "intray")
}

// Load returns the resolved settings. Call after Init.
func Load() Settings {
	return Settings{
		DataDir: viper.GetString("data.dir"),
		Dataset: viper.GetString("data.dataset"),
		LLM: llm.Config{
			Endpoint:    viper.GetString("llm.endpoint"),
			Model:       viper.GetString("llm.model"),
			Temperature: viper.GetFloat64("llm.temperature"),
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			TimeoutMs:   viper.GetInt("llm.timeout_ms"),
			MaxRetries:  viper.GetInt("llm.max_retries"),
		},
	}
}

// SetupLogging installs the default slog logger according to the
// logging.level and logging.format settings.
func SetupLogging() error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "console":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format: %s", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidAdvanceDelay         = errors.New("advance delay must be between 2s and 5s")
)

const (
	minAdvanceDelay = 2 * time.Second
	maxAdvanceDelay = 5 * time.Second
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`           // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`             // Telegram API token loaded from environment
	PhrasesPath      string `mapstructure:"phrases_path"`  // path to JSON file with quiz phrases
	FeedbackPath     string `mapstructure:"feedback_path"` // path to YAML feedback catalog
	WordsPath        string `mapstructure:"words_path"`    // path to YAML word categories
	Game             Game   `mapstructure:"game"`          // quiz game section
	DB               DB     `mapstructure:"database"`      // database configuration section
}

// Game contains quiz pacing parameters.
type Game struct {
	AdvanceDelay time.Duration `mapstructure:"advance_delay"` // pause before the next phrase is shown
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// LoadFiles reads only the file-backed part of the configuration.
// It does not require secrets and is used by offline tooling.
func LoadFiles() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return cfg, nil
}

func newViper() (*viper.Viper, error) {
	// A missing .env is fine, real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("phrases_path", "assets/data/phrases.json")
	v.SetDefault("feedback_path", "assets/data/feedback.yaml")
	v.SetDefault("words_path", "assets/data/words.yaml")
	v.SetDefault("game.advance_delay", "2s")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return v, nil
}

func unmarshal(v *viper.Viper) (*Config, error) {
	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Game.AdvanceDelay < minAdvanceDelay || cfg.Game.AdvanceDelay > maxAdvanceDelay {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAdvanceDelay, cfg.Game.AdvanceDelay)
	}

	return &cfg, nil
}

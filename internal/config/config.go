package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env"`           // current application environment (local, dev, production)
	TelegramAPIToken string    `mapstructure:"-"`             // Telegram API token loaded from environment
	ProjectsPath     string    `mapstructure:"projects_path"` // path to the YAML project catalog
	Debug            bool      `mapstructure:"debug"`         // verbose Telegram API logging
	Countdown        Countdown `mapstructure:"countdown"`     // countdown section
	Quiz             Quiz      `mapstructure:"quiz"`          // quiz section
	DB               DB        `mapstructure:"database"`      // database configuration section
}

// Countdown configures the graduation countdown.
type Countdown struct {
	TargetDate string `mapstructure:"target_date"` // YYYY-MM-DD
	Location   string `mapstructure:"location"`    // IANA zone or UTC offset the date is in
	Schedule   string `mapstructure:"schedule"`    // cron spec for refreshing sent countdowns
}

// Quiz configures the teaching style quiz.
type Quiz struct {
	DefaultVariant string `mapstructure:"default_variant"` // variant behind /quiz: majority or pattern
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Options controls where Load looks for configuration.
type Options struct {
	ConfigPaths []string // directories searched for config.yaml
	EnvFiles    []string // dotenv files loaded before reading the environment
	RequireDB   bool     // fail when DATABASE_URL is missing
	RequireBot  bool     // fail when TELEGRAM_API_TOKEN is missing
}

// DefaultOptions are used by the bot binary.
func DefaultOptions() Options {
	return Options{
		ConfigPaths: []string{"./config"},
		EnvFiles:    []string{".env"},
		RequireDB:   true,
		RequireBot:  true,
	}
}

// Load reads configuration with DefaultOptions.
func Load() (*Config, error) {
	return LoadWith(DefaultOptions())
}

// LoadWith reads configuration from config files, dotenv files and environment variables.
func LoadWith(opts Options) (*Config, error) {
	// Missing dotenv files are fine; real environment variables win.
	for _, f := range opts.EnvFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range opts.ConfigPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("env", "local")
	v.SetDefault("debug", false)
	v.SetDefault("projects_path", "assets/projects.yaml")
	v.SetDefault("countdown.target_date", entities.DefaultCountdownTarget)
	v.SetDefault("countdown.location", "UTC")
	v.SetDefault("countdown.schedule", "0 * * * *")
	v.SetDefault("quiz.default_variant", "majority")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if opts.RequireBot && cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.DB.URL = v.GetString("database_url")
	if opts.RequireDB && cfg.DB.URL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}

	return &cfg, nil
}

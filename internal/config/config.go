package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	JWTTTL      time.Duration `mapstructure:"JWT_TTL"`
	Port        string        `mapstructure:"PORT"`
	GinMode     string        `mapstructure:"GIN_MODE"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LogEncoding string        `mapstructure:"LOG_ENCODING"`
	AutoMigrate bool          `mapstructure:"AUTO_MIGRATE"`
	TxRetries   int           `mapstructure:"TX_RETRIES"`
}

var AppConfig *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_TTL", "168h")
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "json")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("TX_RETRIES", 3)
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	cfg, err := decode(v)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	AppConfig = cfg
}

// Defaults returns a Config populated only with default values.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// defaults are static; a failure here is a programming error
		panic(err)
	}
	return cfg
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.TxRetries < 1 {
		cfg.TxRetries = 1
	}
	return &cfg, nil
}

// Package config loads the service configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	Env               string        `mapstructure:"ENV"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	MongoURL          string        `mapstructure:"MONGODB_URL"`
	MongoDatabase     string        `mapstructure:"MONGODB_DATABASE"`
	RedisURL          string        `mapstructure:"REDIS_URL"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTTTL            time.Duration `mapstructure:"JWT_TTL"`
	OTPTTL            time.Duration `mapstructure:"OTP_TTL"`
	CORSOrigins       []string      `mapstructure:"CORS_ORIGINS"`
	UploadDir         string        `mapstructure:"UPLOAD_DIR"`
	SMTPHost          string        `mapstructure:"SMTP_HOST"`
	SMTPPort          int           `mapstructure:"SMTP_PORT"`
	SMTPUsername      string        `mapstructure:"SMTP_USERNAME"`
	SMTPPassword      string        `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom          string        `mapstructure:"SMTP_FROM"`
	RazorpayKeyID     string        `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string        `mapstructure:"RAZORPAY_KEY_SECRET"`
	JobsEnabled       bool          `mapstructure:"JOBS_ENABLED"`
	ReconcileSchedule string        `mapstructure:"RECONCILE_SCHEDULE"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "MONGODB_URL", "MONGODB_DATABASE", "REDIS_URL", "CACHE_TTL",
	"JWT_SECRET", "JWT_TTL", "OTP_TTL", "CORS_ORIGINS", "UPLOAD_DIR",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM",
	"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "JOBS_ENABLED", "RECONCILE_SCHEDULE",
}

/*
* Load the .env file if there is one
* Bind every key to the environment and apply the defaults
* Unmarshal into Config
 */
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file loaded")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGODB_DATABASE", "mediconnect")
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("JWT_TTL", "1h")
	v.SetDefault("OTP_TTL", "10m")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "./files")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("JOBS_ENABLED", true)
	v.SetDefault("RECONCILE_SCHEDULE", "5 0 * * *")

	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	return cfg, nil
}

// Validate checks what the HTTP server needs before it can start.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURL == "" {
		errs = append(errs, errors.New("MONGODB_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

func (c *Config) PaymentsEnabled() bool {
	return c.RazorpayKeyID != "" && c.RazorpayKeySecret != ""
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Auth     AuthConfig     `json:"auth"`
	Matcher  MatcherConfig  `json:"matcher"`
	History  HistoryConfig  `json:"history"`
	Realtime RealtimeConfig `json:"realtime"`
	Notify   NotifyConfig   `json:"notify"`
	Photos   PhotosConfig   `json:"photos"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	CORSOrigins     []string      `json:"cors_origins"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AuthConfig struct {
	JWTSecret string        `json:"-"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

type MatcherConfig struct {
	RadiusKM float64 `json:"radius_km"`
	// RestrictToActive limits matching to volunteers holding an open
	// realtime connection.
	RestrictToActive bool `json:"restrict_to_active"`
}

type HistoryConfig struct {
	Retention       time.Duration `json:"retention"`
	PruneOnWrite    bool          `json:"prune_on_write"`
	SweepInterval   time.Duration `json:"sweep_interval"`
	RecentLimit     int           `json:"recent_limit"`
	DashboardWindow time.Duration `json:"dashboard_window"`
}

type RealtimeConfig struct {
	AllowedOrigins []string      `json:"allowed_origins"`
	SnapshotTTL    time.Duration `json:"snapshot_ttl"`
	WriteTimeout   time.Duration `json:"write_timeout"`
}

type NotifyChannel string

const (
	NotifyWebhook  NotifyChannel = "webhook"
	NotifySendGrid NotifyChannel = "sendgrid"
	NotifyLog      NotifyChannel = "log"
)

type NotifyConfig struct {
	Channel        NotifyChannel `json:"channel"`
	QueueKey       string        `json:"queue_key"`
	WebhookURL     string        `json:"webhook_url"`
	SendGridAPIKey string        `json:"-"`
	FromEmail      string        `json:"from_email"`
	FromName       string        `json:"from_name"`
}

type PhotosConfig struct {
	Dir          string `json:"dir"`
	MaxSizeBytes int64  `json:"max_size_bytes"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     getEnvList("HTTP_CORS_ORIGINS", []string{"*"}),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "wesalvator"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Matcher: MatcherConfig{
			RadiusKM:         getEnvFloat("MATCH_RADIUS_KM", 10),
			RestrictToActive: getEnvBool("MATCH_RESTRICT_TO_ACTIVE", false),
		},
		History: HistoryConfig{
			Retention:       getEnvDuration("HISTORY_RETENTION", 24*time.Hour),
			PruneOnWrite:    getEnvBool("HISTORY_PRUNE_ON_WRITE", true),
			SweepInterval:   getEnvDuration("HISTORY_SWEEP_INTERVAL", 10*time.Minute),
			RecentLimit:     getEnvInt("HISTORY_RECENT_LIMIT", 10),
			DashboardWindow: getEnvDuration("HISTORY_DASHBOARD_WINDOW", time.Hour),
		},
		Realtime: RealtimeConfig{
			AllowedOrigins: getEnvList("WS_ALLOWED_ORIGINS", []string{"*"}),
			SnapshotTTL:    getEnvDuration("WS_SNAPSHOT_TTL", 5*time.Minute),
			WriteTimeout:   getEnvDuration("WS_WRITE_TIMEOUT", 10*time.Second),
		},
		Notify: NotifyConfig{
			Channel:        NotifyChannel(getEnv("NOTIFY_CHANNEL", string(NotifyLog))),
			QueueKey:       getEnv("NOTIFY_QUEUE_KEY", "notifications:queue"),
			WebhookURL:     getEnv("NOTIFY_WEBHOOK_URL", ""),
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromEmail:      getEnv("NOTIFY_FROM_EMAIL", "rescue@wesalvator.org"),
			FromName:       getEnv("NOTIFY_FROM_NAME", "Rescue Team"),
		},
		Photos: PhotosConfig{
			Dir:          getEnv("PHOTOS_DIR", "./media/animal_reports"),
			MaxSizeBytes: int64(getEnvInt("PHOTOS_MAX_SIZE_BYTES", 10<<20)),
		},
	}

	if cfg.Auth.JWTSecret == "" && cfg.Env == "local" {
		cfg.Auth.JWTSecret = "local-development-secret-change-me!!"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Float64("match_radius_km", cfg.Matcher.RadiusKM),
		slog.Bool("match_restrict_to_active", cfg.Matcher.RestrictToActive),
		slog.Duration("history_retention", cfg.History.Retention),
		slog.String("notify_channel", string(cfg.Notify.Channel)))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if len(c.Auth.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters")
	}

	if c.Matcher.RadiusKM <= 0 {
		return errors.New("MATCH_RADIUS_KM must be positive")
	}

	if c.History.Retention <= 0 {
		return errors.New("HISTORY_RETENTION must be positive")
	}
	if c.History.SweepInterval <= 0 {
		return errors.New("HISTORY_SWEEP_INTERVAL must be positive")
	}
	if c.History.RecentLimit <= 0 {
		return errors.New("HISTORY_RECENT_LIMIT must be positive")
	}

	switch c.Notify.Channel {
	case NotifyLog:
	case NotifyWebhook:
		if c.Notify.WebhookURL == "" {
			return errors.New("NOTIFY_WEBHOOK_URL required for webhook channel")
		}
	case NotifySendGrid:
		if c.Notify.SendGridAPIKey == "" {
			return errors.New("SENDGRID_API_KEY required for sendgrid channel")
		}
	default:
		return errors.New("NOTIFY_CHANNEL must be one of webhook, sendgrid, log")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

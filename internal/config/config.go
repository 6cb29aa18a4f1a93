package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	BookingService BookingServiceConfig `toml:"booking_service"`
	Session        SessionConfig        `toml:"session"`
	Pickers        PickersConfig        `toml:"pickers"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingServiceConfig настройки клиента внешнего сервиса бронирований
type BookingServiceConfig struct {
	URL            string  `toml:"url"`
	Timeout        int     `toml:"timeout"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// SessionConfig настройки источника bearer-токена
type SessionConfig struct {
	TokenEnv  string `toml:"token_env"`
	TokenFile string `toml:"token_file"`
}

// PickersConfig настройки реестра picker-сессий
type PickersConfig struct {
	IdleTTLMinutes         int `toml:"idle_ttl_minutes"`
	JanitorIntervalSeconds int `toml:"janitor_interval_seconds"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults подставляет дефолтные значения для незаполненных полей
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8090
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "kaizen-booking"
	}
	if cfg.BookingService.Timeout == 0 {
		cfg.BookingService.Timeout = 5
	}
	if cfg.BookingService.RateLimitRPS == 0 {
		cfg.BookingService.RateLimitRPS = 20
	}
	if cfg.BookingService.RateLimitBurst == 0 {
		cfg.BookingService.RateLimitBurst = 40
	}
	if cfg.Pickers.IdleTTLMinutes == 0 {
		cfg.Pickers.IdleTTLMinutes = 30
	}
	if cfg.Pickers.JanitorIntervalSeconds == 0 {
		cfg.Pickers.JanitorIntervalSeconds = 60
	}
}

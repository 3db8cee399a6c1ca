package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	// Auth - явная конфигурация токенов, внедряется в TokenService
	// при конструировании (никаких ambient lookups по коду)
	Auth struct {
		AccessTTL  time.Duration `yaml:"access_ttl"`
		RefreshTTL time.Duration `yaml:"refresh_ttl"`
		Algorithm  string        `yaml:"algorithm"`
		BcryptCost int           `yaml:"bcrypt_cost"`
	} `yaml:"auth"`

	// Учетные данные первого SUPER_ADMIN: без них в свежей БД некому
	// пройти auth gate и создать остальных пользователей
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig загружает config.yaml (если есть) и накладывает переменные
// окружения поверх. Переменные окружения всегда имеют приоритет.
func LoadConfig() {
	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("failed to parse config.yaml: %v", err)
		}
	}

	// Значения по умолчанию
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Auth.AccessTTL == 0 {
		cfg.Auth.AccessTTL = 12 * time.Hour
	}
	if cfg.Auth.RefreshTTL == 0 {
		cfg.Auth.RefreshTTL = 7 * 24 * time.Hour
	}
	if cfg.Auth.Algorithm == "" {
		cfg.Auth.Algorithm = "RS256"
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}

	// Переопределение из окружения
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}
	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Fatalf("invalid SERVER_PORT %q: %v", portStr, err)
		}
		cfg.Server.Port = port
	}
	if ttl := os.Getenv("ACCESS_EXP_TIME"); ttl != "" {
		cfg.Auth.AccessTTL = mustParseDuration("ACCESS_EXP_TIME", ttl)
	}
	if ttl := os.Getenv("REFRESH_EXP_TIME"); ttl != "" {
		cfg.Auth.RefreshTTL = mustParseDuration("REFRESH_EXP_TIME", ttl)
	}
	if email := os.Getenv("FIRST_ADMIN_EMAIL"); email != "" {
		cfg.FirstAdminEmail = email
	}
	if password := os.Getenv("FIRST_ADMIN_PASSWORD"); password != "" {
		cfg.FirstAdminPassword = password
	}

	AppConfig = &cfg
}

func mustParseDuration(name, value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid %s %q: %v", name, value, err)
	}
	return d
}

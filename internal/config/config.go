// Package config loads settings from an optional YAML file with
// environment variables taking precedence over everything in it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Admin    AdminConfig    `yaml:"admin"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	// Operator is the internal address notified for every submission.
	Operator string `yaml:"operator"`
}

type AdminConfig struct {
	ExportToken string `yaml:"export_token"`
}

func envStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Load reads path if it exists and then applies env overrides. A missing
// file is not an error; env-only deployments are the common case.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	envInt(&cfg.Server.Port, "PORT")
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}

	envStr(&cfg.Database.DSN, "DB_DSN")
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		cfg.Database.DSN = dsnFromParts()
	}

	envStr(&cfg.SMTP.Host, "SMTP_HOST")
	envInt(&cfg.SMTP.Port, "SMTP_PORT")
	envStr(&cfg.SMTP.Username, "SMTP_USER")
	envStr(&cfg.SMTP.Password, "SMTP_PASS")
	envStr(&cfg.SMTP.From, "SMTP_FROM")
	envStr(&cfg.SMTP.Operator, "OPERATOR_EMAIL")
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	envStr(&cfg.Admin.ExportToken, "ADMIN_EXPORT_TOKEN")

	return cfg, nil
}

func dsnFromParts() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = os.Getenv("POSTGRES_USER")
	}
	if user == "" {
		user = "postgres"
	}
	pass := os.Getenv("DB_PASSWORD")
	if pass == "" {
		pass = os.Getenv("POSTGRES_PASSWORD")
	}
	if pass == "" {
		pass = "postgres"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = os.Getenv("POSTGRES_DB")
	}
	if name == "" {
		name = "loomtrade"
	}
	ssl := os.Getenv("DB_SSLMODE")
	if ssl == "" {
		ssl = "disable"
	}
	return "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=" + ssl
}

// Package config loads service configuration from an optional YAML file
// with environment variables taking precedence.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hearhut/storefront-api/checkout"
)

type Config struct {
	Port          string                 `yaml:"port"`
	StorePath     string                 `yaml:"store_path"`
	DatabaseURL   string                 `yaml:"database_url"`
	BackupDir     string                 `yaml:"backup_dir"`
	AdminAPIKey   string                 `yaml:"admin_api_key"`
	WebhookSecret string                 `yaml:"webhook_secret"`
	Gateway       checkout.GatewayConfig `yaml:"gateway"`
	Email         checkout.EmailConfig   `yaml:"email"`
}

// Load reads path if it exists, then applies env overrides. A missing file
// is fine; env-only deployments are the common case.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:      "8080",
		StorePath: "hearhut.db",
	}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	overrideStr(&cfg.Port, "PORT")
	overrideStr(&cfg.StorePath, "STORE_PATH")
	overrideStr(&cfg.DatabaseURL, "DATABASE_URL")
	overrideStr(&cfg.BackupDir, "BACKUP_DIR")
	overrideStr(&cfg.AdminAPIKey, "ADMIN_API_KEY")
	overrideStr(&cfg.WebhookSecret, "PAY_WEBHOOK_SECRET")
	overrideStr(&cfg.Gateway.KeyID, "PAY_KEY_ID")
	overrideStr(&cfg.Gateway.KeySecret, "PAY_KEY_SECRET")
	overrideStr(&cfg.Gateway.APIURL, "PAY_API_URL")
	overrideStr(&cfg.Gateway.Mode, "PAY_MODE")
	overrideStr(&cfg.Email.ServiceID, "EMAILJS_SERVICE_ID")
	overrideStr(&cfg.Email.TemplateID, "EMAILJS_TEMPLATE_ID")
	overrideStr(&cfg.Email.PublicKey, "EMAILJS_PUBLIC_KEY")
	overrideStr(&cfg.Email.APIURL, "EMAILJS_API_URL")

	return cfg, nil
}

func overrideStr(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

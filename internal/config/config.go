package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Facturador"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"facturador"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	}

	// Fiscal holds the gateway credentials and per-kind document series.
	// Credentials are resolved here once at startup, never in handler code.
	Fiscal struct {
		APIURL        string          `envconfig:"FISCAL_API_URL"`
		Token         string          `envconfig:"FISCAL_API_TOKEN"`
		SeriesInvoice string          `envconfig:"FISCAL_SERIE_FACTURA" default:"FFF1"`
		SeriesReceipt string          `envconfig:"FISCAL_SERIE_BOLETA" default:"BBB1"`
		TaxPercent    decimal.Decimal `envconfig:"FISCAL_TAX_PERCENT" default:"18"`
	}

	Uploads struct {
		Dir string `envconfig:"UPLOAD_DIR" default:"uploads/vouchers"`
	}

	Email struct {
		BaseURL string `envconfig:"EMAIL_API_URL" default:"https://api.resend.com"`
		APIKey  string `envconfig:"RESEND_API_KEY"`
		From    string `envconfig:"EMAIL_FROM" default:"ventas@andeantex.com"`
	}

	Push struct {
		BaseURL string `envconfig:"PUSH_API_URL"`
		Key     string `envconfig:"PUSH_API_KEY"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

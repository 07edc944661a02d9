package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config contiene la configuración del servicio cargada desde variables de entorno
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"firmeza_db"`

	// Tasa de IVA aplicada a las ventas (19% por defecto)
	TaxRate float64 `envconfig:"TAX_RATE" default:"0.19"`

	// Directorio donde se escriben los PDF de recibos y prefijo público del locator
	ReceiptDir     string `envconfig:"RECEIPT_DIR" default:"./receipts"`
	ReceiptBaseURL string `envconfig:"RECEIPT_BASE_URL" default:"/receipts"`

	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY" default:""`
	EmailFrom      string `envconfig:"EMAIL_FROM" default:"no-reply@firmeza.local"`

	PrometheusEnabled bool `envconfig:"PROMETHEUS_ENABLED" default:"false"`
}

// Load carga la configuración desde el entorno
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN construye el string de conexión de PostgreSQL
func (c *Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, API endpoints), secrets
// - default: Values common across all environments (timezone, timeouts, sync tuning)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Sync       SyncConfig
	Storefront StorefrontConfig
	Retailer   RetailerConfig
	Kafka      KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	Mode string `envconfig:"GIN_MODE" default:"release"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"1h"`
}

type SyncConfig struct {
	BatchSize          int           `envconfig:"SYNC_BATCH_SIZE" default:"10"`
	LeaseTTL           time.Duration `envconfig:"SYNC_LEASE_TTL" default:"5m"`
	MaxAttempts        int           `envconfig:"SYNC_MAX_ATTEMPTS" default:"3"`
	Concurrency        int           `envconfig:"SYNC_CONCURRENCY" default:"5"`
	ShopConcurrency    int           `envconfig:"SYNC_SHOP_CONCURRENCY" default:"4"`
	Schedule           string        `envconfig:"SYNC_SCHEDULE" default:"@every 1m"`
	PurgeSchedule      string        `envconfig:"SYNC_PURGE_SCHEDULE" default:"@daily"`
	PurgeAfter         time.Duration `envconfig:"SYNC_PURGE_AFTER" default:"24h"`
	RequeuePageSize    int           `envconfig:"SYNC_REQUEUE_PAGE_SIZE" default:"500"`
	MissingStockPolicy string        `envconfig:"SYNC_MISSING_STOCK_POLICY" default:"retry"`
}

type StorefrontConfig struct {
	APIVersion        string        `envconfig:"STOREFRONT_API_VERSION" default:"2025-01"`
	Endpoint          string        `envconfig:"STOREFRONT_ENDPOINT" default:""`
	Timeout           time.Duration `envconfig:"STOREFRONT_TIMEOUT" default:"30s"`
	RequestsPerSecond float64       `envconfig:"STOREFRONT_RPS" default:"2"`
	Burst             int           `envconfig:"STOREFRONT_BURST" default:"4"`
	MaxRetries        uint64        `envconfig:"STOREFRONT_MAX_RETRIES" default:"4"`
}

type RetailerConfig struct {
	BaseURL  string        `envconfig:"RETAILER_BASE_URL" required:"true"`
	Timeout  time.Duration `envconfig:"RETAILER_TIMEOUT" default:"15s"`
	PageSize int           `envconfig:"RETAILER_PAGE_SIZE" default:"100"`
}

type KafkaConfig struct {
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"retailer.stock-events"`
	GroupID string   `envconfig:"KAFKA_GROUP_ID" default:"catalog-sync"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Mode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Sync: SyncConfig{
			BatchSize:          10,
			LeaseTTL:           5 * time.Minute,
			MaxAttempts:        3,
			Concurrency:        5,
			ShopConcurrency:    2,
			Schedule:           "@every 1m",
			PurgeSchedule:      "@daily",
			PurgeAfter:         24 * time.Hour,
			RequeuePageSize:    2,
			MissingStockPolicy: "retry",
		},
		Storefront: StorefrontConfig{
			APIVersion:        "2025-01",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 100,
			Burst:             100,
			MaxRetries:        2,
		},
		Retailer: RetailerConfig{
			BaseURL:  "http://localhost:18080",
			Timeout:  5 * time.Second,
			PageSize: 2,
		},
	}
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type Mongo struct {
	URI      string `yaml:"MONGO_URI" env:"MONGO_URI" env-required:"true"`
	Database string `yaml:"MONGO_DATABASE" env:"MONGO_DATABASE" env-default:"storefront"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Security struct {
	JWTKey      string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	AdminAPIKey string `yaml:"ADMIN_API_KEY" env:"ADMIN_API_KEY"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"no-reply@example.com"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Storefront"`
	Host      string `yaml:"HOST" env:"SENDGRID_HOST"`
}

type OtelConfig struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"supplements-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

// CartConfig tunes the cart store. An empty SyncBaseURL keeps cart sync in-process.
type CartConfig struct {
	StorageTTL  time.Duration `yaml:"storage_ttl" env:"CART_STORAGE_TTL" env-default:"720h"`
	SyncBaseURL string        `yaml:"sync_base_url" env:"CART_SYNC_BASE_URL"`
	SyncTimeout time.Duration `yaml:"sync_timeout" env:"CART_SYNC_TIMEOUT" env-default:"5s"`
	Shipping    float64       `yaml:"shipping" env:"CART_SHIPPING" env-default:"0"`
	Taxes       float64       `yaml:"taxes" env:"CART_TAXES" env-default:"0"`
}

type Store struct {
	URL  string `yaml:"url" env:"STORE_URL" env-default:"http://localhost:3000"`
	Name string `yaml:"name" env:"STORE_NAME" env-default:"Supplements Store"`
}

// RateConfig bounds promo code attempts per shopper. Limiting needs redis.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"PROMO_MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"PROMO_WINDOW_SIZE" env-default:"60s"`
}

type ImportConfig struct {
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"IMPORT_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Mongo        Mongo        `yaml:"mongo"`
	RedisConnect RedisConnect `yaml:"redis"`
	Security     Security     `yaml:"security"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         OtelConfig   `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
	Cart         CartConfig   `yaml:"cart"`
	Store        Store        `yaml:"store"`
	Import       ImportConfig `yaml:"import"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
}

// LoadConfigFromPath reads the YAML file at path and applies environment overrides.
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

// MustLoad resolves the config path from CONFIG_PATH, the -config flag or
// ./config/local.yaml, in that order, and exits on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the config file")
		flag.Parse()

		configPath = *flags
	}

	if configPath == "" {
		configPath = "config/local.yaml"
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatal(err)
	}

	return cfg
}

func (r *RedisConnect) dsn() *url.URL {
	return &url.URL{
		Scheme: "redis",
		User:   url.UserPassword(r.Username, r.Password),
		Host:   net.JoinHostPort(r.Host, r.Port),
		Path:   "/" + strconv.Itoa(r.DB),
	}
}

// GetDSN returns the redis:// URL including the logical database.
func (r *RedisConnect) GetDSN() string {
	return r.dsn().String()
}

// RedactedDSN is GetDSN with the password masked, for logs.
func (r *RedisConnect) RedactedDSN() string {
	return r.dsn().Redacted()
}

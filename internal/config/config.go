package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDatabaseURL   = "fenix.db"
	defaultListenAddr    = ":8080"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultAdminDNI      = "admin"
	defaultAdminPassword = "admin123"
	defaultStorageRoot   = "./storage"
	defaultStorageBucket = "fenix"
	defaultPublicBaseURL = "http://localhost:8080/media"
	defaultPointOfSale   = "0"
	defaultInvoicePOS    = "0001"
)

type Config struct {
	AppEnv        string
	DatabaseURL   string
	ListenAddr    string
	JWTSecret     string
	JWTTTL        time.Duration
	AdminDNI      string
	AdminPassword string
	StorageRoot   string
	StorageBucket string
	PublicBaseURL string
	// PointOfSale prefixes work-order codes (e.g. "0" in 0-0001),
	// InvoicePointOfSale prefixes invoice numbers.
	PointOfSale        string
	InvoicePointOfSale string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.JWTSecret = getEnv("JWT_SECRET", defaultJWTSecret)
	cfg.AdminDNI = getEnv("ADMIN_DNI", defaultAdminDNI)
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", defaultAdminPassword)
	cfg.StorageRoot = getEnv("STORAGE_ROOT", defaultStorageRoot)
	cfg.StorageBucket = getEnv("STORAGE_BUCKET", defaultStorageBucket)
	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", defaultPublicBaseURL), "/")
	cfg.PointOfSale = getEnv("POINT_OF_SALE", defaultPointOfSale)
	cfg.InvoicePointOfSale = getEnv("INVOICE_POINT_OF_SALE", defaultInvoicePOS)

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.PointOfSale == "" {
		return fmt.Errorf("POINT_OF_SALE must not be empty")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPassword == defaultAdminPassword {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must not be the default")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

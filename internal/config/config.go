package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	Storage  StorageConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	BodyLimitMB int
}

type DatabaseConfig struct {
	URL        string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	PoolMaxConns   int32
	ConnectTimeout time.Duration
}

type JWTConfig struct {
	Secret    string
	Issuer    string
	ExpiresIn time.Duration
}

type SecurityConfig struct {
	BcryptCost     int
	AuthRatePerMin int
	AuthRateBurst  int

	SeedAdminEmail    string
	SeedAdminPassword string
}

type StorageConfig struct {
	CloudinaryURL string
	Folder        string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

const (
	defaultJWTExpiresIn = 24 * time.Hour
	defaultBcryptCost   = 12
	defaultCacheTTL     = 10 * time.Minute
	defaultBodyLimitMB  = 10
	defaultUploadFolder = "resumes"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real environment values win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.Getenv)
}

func FromLookup(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(getenv(key))
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		BodyLimitMB: optInt("BODY_LIMIT_MB", defaultBodyLimitMB),
	}

	cfg.Database = DatabaseConfig{
		URL:            opt("DATABASE_URL"),
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
	}
	if cfg.Database.URL == "" && cfg.Database.DBHost == "" {
		missing = append(missing, "DATABASE_URL|DB_HOST")
	}

	cfg.JWT = JWTConfig{
		Secret:    req("JWT_SECRET"),
		Issuer:    opt("JWT_ISSUER"),
		ExpiresIn: optDuration("JWT_EXPIRES_IN", defaultJWTExpiresIn),
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = cfg.App.AppName
	}

	cfg.Security = SecurityConfig{
		BcryptCost:        optInt("BCRYPT_COST", defaultBcryptCost),
		AuthRatePerMin:    optInt("AUTH_RATE_PER_MIN", 20),
		AuthRateBurst:     optInt("AUTH_RATE_BURST", 10),
		SeedAdminEmail:    opt("SEED_ADMIN_EMAIL"),
		SeedAdminPassword: opt("SEED_ADMIN_PASSWORD"),
	}

	cfg.Storage = StorageConfig{
		CloudinaryURL: req("CLOUDINARY_URL"),
		Folder:        opt("UPLOAD_FOLDER"),
	}
	if cfg.Storage.Folder == "" {
		cfg.Storage.Folder = defaultUploadFolder
	}

	cfg.Redis = RedisConfig{
		Addr:     opt("REDIS_ADDR"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      optDuration("CACHE_TTL", defaultCacheTTL),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// DSN returns the connection string for pgx and golang-migrate.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	sslMode := d.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.DBUser,
		d.DBPassword,
		d.DBHost,
		d.DBPort,
		d.DBName,
		sslMode,
	)
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Environment, "production")
}

package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aussiebroadwan/clinicdesk/pkg/cryptox"
	"github.com/ilyakaznacheev/cleanenv"
)

// EnvDev is the only environment allowed to run without a configured
// JWT secret.
const EnvDev = "dev"

// Config is loaded once at startup and passed by value; nothing mutates it
// afterwards.
type Config struct {
	Env                 string        `yaml:"env"                   env:"ENV"                   env-default:"dev"       env-description:"Environment (dev, staging, prod)"`
	Port                int           `yaml:"port"                  env:"PORT"                  env-default:"8080"      env-description:"HTTP server port"`
	LogLevel            string        `yaml:"log_level"             env:"LOG_LEVEL"             env-default:"info"      env-description:"Log level (debug, info, warn, error)"`
	LogFormat           string        `yaml:"log_format"            env:"LOG_FORMAT"            env-default:"json"      env-description:"Log format (json, text)"`
	DatabaseFile        string        `yaml:"database_file"         env:"DATABASE_FILE"         env-default:"clinic.db" env-description:"Path to the SQLite database file"`
	JWTSecret           string        `yaml:"jwt_secret"            env:"JWT_SECRET"                                    env-description:"HMAC secret for access tokens, required outside dev"`
	JWTAlgorithm        string        `yaml:"jwt_algorithm"         env:"JWT_ALGORITHM"         env-default:"HS256"     env-description:"HMAC algorithm (HS256, HS384, HS512)"`
	JWTExpirationHours  int           `yaml:"jwt_expiration_hours"  env:"JWT_EXPIRATION_HOURS"  env-default:"24"        env-description:"Access token lifetime in hours"`
	HashAlgorithm       string        `yaml:"hash_algorithm"        env:"HASH_ALGORITHM"        env-default:"bcrypt"    env-description:"Password hash for new credentials (bcrypt, argon2id)"`
	HashCost            int           `yaml:"hash_cost"             env:"HASH_COST"             env-default:"12"        env-description:"bcrypt cost factor"`
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period" env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s"       env-description:"Graceful shutdown timeout"`
	TrustProxyHeaders   bool          `yaml:"trust_proxy_headers"   env:"TRUST_PROXY_HEADERS"   env-default:"false"     env-description:"Key rate limits on X-Forwarded-For/X-Real-IP (only behind a proxy that sets them)"`
}

// LoadConfig reads the configuration from the environment. When CONFIG_PATH
// names a YAML file it is read first and the environment overrides it.
func LoadConfig() (Config, error) {
	var cfg Config

	var err error
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	ErrMissingSecret   = errors.New("config: JWT_SECRET is required outside the dev environment")
	ErrInvalidAlg      = errors.New("config: JWT_ALGORITHM must be HS256, HS384 or HS512")
	ErrInvalidLifetime = errors.New("config: JWT_EXPIRATION_HOURS must be positive")
	ErrInvalidPort     = errors.New("config: PORT must be between 1 and 65535")
)

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	if c.JWTSecret == "" && c.Env != EnvDev {
		return ErrMissingSecret
	}

	switch c.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidAlg, c.JWTAlgorithm)
	}

	if c.JWTExpirationHours <= 0 {
		return ErrInvalidLifetime
	}
	if c.Port <= 0 || c.Port > 65535 {
		return ErrInvalidPort
	}

	if _, err := cryptox.NewHasher(c.HashAlgorithm, c.HashCost); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// TokenTTL is the default access token lifetime.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationHours) * time.Hour
}

// Usage describes every supported environment variable.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}

package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Closure   ClosureConfig   `yaml:"closure"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"300"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings. Tokens are issued by the identity
// provider; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"sahakar-accounts"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// RedisConfig holds the shared cache connection. An empty Addr disables
// Redis; rate limiting then falls back to process memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"      env:"REDIS_ADDR"`
	Password string `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	PoolSize int    `yaml:"pool_size" env:"REDIS_POOL_SIZE" env-default:"20"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"           env:"RATE_LIMIT_ENABLED"        env-default:"true"`
	Backend         string        `yaml:"backend"           env:"RATE_LIMIT_BACKEND"        env-default:"memory"`
	ReadsPerWindow  int           `yaml:"reads_per_window"  env:"RATE_LIMIT_READS"          env-default:"100"`
	WritesPerWindow int           `yaml:"writes_per_window" env:"RATE_LIMIT_WRITES"         env-default:"20"`
	Window          time.Duration `yaml:"window"            env:"RATE_LIMIT_WINDOW"         env-default:"1m"`
	SweepInterval   time.Duration `yaml:"sweep_interval"    env:"RATE_LIMIT_SWEEP_INTERVAL" env-default:"5m"`
}

// LedgerConfig holds the organization's business-day rules.
type LedgerConfig struct {
	Timezone     string `yaml:"timezone"       env:"LEDGER_TIMEZONE"       env-default:"Asia/Kolkata"`
	DayStartHour int    `yaml:"day_start_hour" env:"LEDGER_DAY_START_HOUR" env-default:"7"`
	DutyEndHour  int    `yaml:"duty_end_hour"  env:"LEDGER_DUTY_END_HOUR"  env-default:"2"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// ClosureConfig holds monthly closure settings.
type ClosureConfig struct {
	HashAlgorithm string        `yaml:"hash_algorithm" env:"CLOSURE_HASH_ALGORITHM" env-default:"md5"`
	SealLockTTL   time.Duration `yaml:"seal_lock_ttl"  env:"CLOSURE_SEAL_LOCK_TTL"  env-default:"30s"`
}

// SchedulerConfig holds the integrity sweep schedule.
type SchedulerConfig struct {
	SweepSpec    string        `yaml:"sweep_spec"    env:"SCHEDULER_SWEEP_SPEC"    env-default:"0 30 7 * * *"`
	SweepTimeout time.Duration `yaml:"sweep_timeout" env:"SCHEDULER_SWEEP_TIMEOUT" env-default:"10m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may take to
	// finish after a termination signal.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// SessionConfig selects and tunes the session backend holding CSRF tokens.
type SessionConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=memory redis"`
	// RedisURL is a redis:// URL, required when Backend is "redis".
	RedisURL     string `mapstructure:"redis_url"     validate:"required_if=Backend redis"`
	TTLMinutes   int    `mapstructure:"ttl_minutes"   validate:"gt=0"`
	CookieName   string `mapstructure:"cookie_name"   validate:"required"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

// AuthConfig contains password hashing settings.
type AuthConfig struct {
	PBKDF2Iterations int `mapstructure:"pbkdf2_iterations" validate:"required,min=10000"`
}

package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Upstream UpstreamConfig `mapstructure:"upstream" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	RuleSets RuleSetsConfig `mapstructure:"rule_sets" validate:"required"`
	History  HistoryConfig  `mapstructure:"history" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// UpstreamConfig holds the connection to the telemetry backend that serves
// grouped span counts.
type UpstreamConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,url"`
	Token     string `mapstructure:"token"`
	Timeout   int    `mapstructure:"timeout" validate:"required,min=1"` // seconds, per request
	MaxGroups int    `mapstructure:"max_groups" validate:"required,min=1,max=1000"`
}

// CacheConfig holds dataset cache configuration. The memory type keeps an
// in-process LRU; the redis type shares entries across instances.
type CacheConfig struct {
	Type          string `mapstructure:"type" validate:"required,oneof=memory redis"`
	TTL           int    `mapstructure:"ttl" validate:"required,min=1"` // seconds
	MaxEntries    int    `mapstructure:"max_entries" validate:"required_if=Type memory,omitempty,min=1"`
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Type redis"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"min=0"`
}

// RuleSetsConfig holds saved rule set persistence configuration.
type RuleSetsConfig struct {
	DBPath string `mapstructure:"db_path" validate:"required"`
}

// HistoryConfig holds simulation history storage configuration.
type HistoryConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

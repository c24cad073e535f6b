// Package config loads process configuration from an optional .env file,
// an optional YAML file, GW2_* environment variables and command flags, in
// increasing order of precedence.
package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/gw2-api/internal/errors"
)

// EnvPrefix is prepended to every environment key, e.g. GW2_API_LANGUAGE
const EnvPrefix = "GW2"

// Config is the full process configuration
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Redis RedisConfig `mapstructure:"redis"`
	Cache CacheConfig `mapstructure:"cache"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Log   LogConfig   `mapstructure:"log"`
}

// APIConfig points at the Guild Wars 2 API
type APIConfig struct {
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Language string        `mapstructure:"language" validate:"required,oneof=en de es fr"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// RedisConfig configures the shared item cache. No addresses means the
// process runs with the in-memory cache only.
type RedisConfig struct {
	Addrs      []string `mapstructure:"addrs" validate:"dive,hostname_port"`
	MasterName string   `mapstructure:"master_name"`
	Password   string   `mapstructure:"password"`
	DB         int      `mapstructure:"db" validate:"gte=0"`
}

// Enabled reports whether a Redis endpoint is configured
func (r RedisConfig) Enabled() bool {
	return len(r.Addrs) > 0
}

// CacheConfig sizes the item cache layers
type CacheConfig struct {
	TTL        time.Duration `mapstructure:"ttl" validate:"gt=0"`
	MemorySize int           `mapstructure:"memory_size" validate:"gte=1"`
	MemoryTTL  time.Duration `mapstructure:"memory_ttl" validate:"gt=0"`
}

// HTTPConfig configures the serve command
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig configures the default logger
type LogConfig struct {
	Level     string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format    string `mapstructure:"format" validate:"oneof=json text"`
	AddSource bool   `mapstructure:"add_source"`
}

// Flag names bound by RegisterFlags
const (
	FlagConfigFile = "config"
	FlagAPIURL     = "api-url"
	FlagLanguage   = "language"
	FlagRedisAddrs = "redis-addr"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagHTTPAddr   = "addr"
)

// flagKeys maps flag names to config keys
var flagKeys = map[string]string{
	FlagAPIURL:     "api.base_url",
	FlagLanguage:   "api.language",
	FlagRedisAddrs: "redis.addrs",
	FlagLogLevel:   "log.level",
	FlagLogFormat:  "log.format",
	FlagHTTPAddr:   "http.addr",
}

var defaults = map[string]any{
	"api.base_url":          "https://api.guildwars2.com/v1/",
	"api.language":          "en",
	"api.timeout":           30 * time.Second,
	"redis.addrs":           []string{},
	"redis.master_name":     "",
	"redis.password":        "",
	"redis.db":              0,
	"cache.ttl":             24 * time.Hour,
	"cache.memory_size":     1024,
	"cache.memory_ttl":      5 * time.Minute,
	"http.addr":             ":8080",
	"http.shutdown_timeout": 30 * time.Second,
	"log.level":             "info",
	"log.format":            "text",
	"log.add_source":        false,
}

// RegisterFlags adds the global flags to fs. The serve command adds
// FlagHTTPAddr itself.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfigFile, "", "path to a YAML config file")
	fs.String(FlagAPIURL, "", "Guild Wars 2 v1 API base URL")
	fs.String(FlagLanguage, "", "item text language (en, de, es, fr)")
	fs.StringSlice(FlagRedisAddrs, nil, "Redis addresses; empty disables the shared cache")
	fs.String(FlagLogLevel, "", "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, "", "log format (text, json)")
}

// Load builds the Config. fs may be nil; only flags that were set on the
// command line override other sources.
func Load(fs *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "failed to bind flag %s", name)
			}
		}

		if f := fs.Lookup(FlagConfigFile); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "failed to read config file %s", f.Value.String())
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks every field against its validate tag
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "failed to validate config")
	}

	vb := errors.NewValidationBuilder()
	for _, fe := range fieldErrs {
		// Namespace is "Config.api.language"; drop the root type name.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		vb.Fieldf(field, "failed %q check", fe.Tag())
	}
	return vb.Build()
}

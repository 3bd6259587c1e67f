// Package config provides Viper-based configuration loading for the description server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// TelnetConfig holds line server settings.
type TelnetConfig struct {
	// Enabled starts the line server.
	Enabled bool `mapstructure:"enabled"`
	// Host is the bind address for the listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the listener.
	Port int `mapstructure:"port"`
	// ReadTimeout is the per-read timeout for connections.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the per-write timeout for connections.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxLineBytes caps a single request line. A full grid as JSON is about 40 KiB.
	MaxLineBytes int `mapstructure:"max_line_bytes"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (t TelnetConfig) Addr() string {
	return fmt.Sprintf("%s:%d", t.Host, t.Port)
}

// MCPConfig holds the HTTP tool server settings.
type MCPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	// Path is the HTTP path the streamable handler is mounted on.
	Path string `mapstructure:"path"`
}

// Addr returns the "host:port" listen address.
func (m MCPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// CatalogConfig locates the glyph catalog.
type CatalogConfig struct {
	// Path is the catalog YAML file.
	Path string `mapstructure:"path"`
}

// TranscriptsConfig controls persistence of produced descriptions.
type TranscriptsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Driver selects the store: "postgres" or "sqlite".
	Driver string `mapstructure:"driver"`
	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `mapstructure:"sqlite_path"`
	// RecentLimit caps how many transcripts a listing returns.
	RecentLimit int `mapstructure:"recent_limit"`
}

// ActionsConfig limits the text actions the server resolves.
type ActionsConfig struct {
	// Allowed lists canonical action names; empty allows the whole vocabulary.
	Allowed []string `mapstructure:"allowed"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// TracingConfig controls OpenTelemetry span export.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Endpoint is the OTLP/HTTP traces URL, e.g. http://localhost:4318/v1/traces.
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	// SampleRatio is the fraction of root spans kept, 0 to 1.
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// Config is the top-level application configuration.
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Telnet      TelnetConfig      `mapstructure:"telnet"`
	MCP         MCPConfig         `mapstructure:"mcp"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Transcripts TranscriptsConfig `mapstructure:"transcripts"`
	Actions     ActionsConfig     `mapstructure:"actions"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Tracing     TracingConfig     `mapstructure:"tracing"`
}

// Validate checks all configuration invariants. The database section is only
// checked when transcripts are enabled on the postgres driver.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Transcripts.Enabled && c.Transcripts.Driver == "postgres" {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateTelnet(c.Telnet); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMCP(c.MCP); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCatalog(c.Catalog); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTranscripts(c.Transcripts); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTracing(c.Tracing); err != nil {
		errs = append(errs, err.Error())
	}
	if !c.Telnet.Enabled && !c.MCP.Enabled {
		errs = append(errs, "at least one of telnet.enabled or mcp.enabled must be true")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTelnet(t TelnetConfig) error {
	var errs []string
	if t.Port < 1 || t.Port > 65535 {
		errs = append(errs, fmt.Sprintf("telnet.port must be 1-65535, got %d", t.Port))
	}
	if t.ReadTimeout < 0 {
		errs = append(errs, "telnet.read_timeout must not be negative")
	}
	if t.WriteTimeout < 0 {
		errs = append(errs, "telnet.write_timeout must not be negative")
	}
	if t.MaxLineBytes < 1024 {
		errs = append(errs, fmt.Sprintf("telnet.max_line_bytes must be >= 1024, got %d", t.MaxLineBytes))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMCP(m MCPConfig) error {
	var errs []string
	if m.Port < 1 || m.Port > 65535 {
		errs = append(errs, fmt.Sprintf("mcp.port must be 1-65535, got %d", m.Port))
	}
	if !strings.HasPrefix(m.Path, "/") {
		errs = append(errs, fmt.Sprintf("mcp.path must start with '/', got %q", m.Path))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCatalog(c CatalogConfig) error {
	if strings.TrimSpace(c.Path) == "" {
		return errors.New("catalog.path must not be empty")
	}
	return nil
}

func validateTranscripts(t TranscriptsConfig) error {
	var errs []string
	if t.RecentLimit < 1 || t.RecentLimit > 1000 {
		errs = append(errs, fmt.Sprintf("transcripts.recent_limit must be 1-1000, got %d", t.RecentLimit))
	}
	switch t.Driver {
	case "postgres":
	case "sqlite":
		if t.Enabled && strings.TrimSpace(t.SQLitePath) == "" {
			errs = append(errs, "transcripts.sqlite_path must not be empty for the sqlite driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("transcripts.driver must be one of [postgres, sqlite], got %q", t.Driver))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateTracing(t TracingConfig) error {
	var errs []string
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		errs = append(errs, fmt.Sprintf("tracing.sample_ratio must be 0-1, got %g", t.SampleRatio))
	}
	if t.Enabled {
		if strings.TrimSpace(t.Endpoint) == "" {
			errs = append(errs, "tracing.endpoint must not be empty when tracing is enabled")
		}
		if strings.TrimSpace(t.ServiceName) == "" {
			errs = append(errs, "tracing.service_name must not be empty when tracing is enabled")
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with GLYPHSPEAK_ prefix
	v.SetEnvPrefix("GLYPHSPEAK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the default settings.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "glyphspeak")
	v.SetDefault("database.password", "glyphspeak")
	v.SetDefault("database.name", "glyphspeak")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("telnet.enabled", true)
	v.SetDefault("telnet.host", "0.0.0.0")
	v.SetDefault("telnet.port", 4100)
	v.SetDefault("telnet.read_timeout", "5m")
	v.SetDefault("telnet.write_timeout", "30s")
	v.SetDefault("telnet.max_line_bytes", 1<<20)

	v.SetDefault("mcp.enabled", false)
	v.SetDefault("mcp.host", "127.0.0.1")
	v.SetDefault("mcp.port", 4101)
	v.SetDefault("mcp.path", "/mcp")

	v.SetDefault("catalog.path", "content/catalog/sample.yaml")

	v.SetDefault("transcripts.enabled", false)
	v.SetDefault("transcripts.driver", "postgres")
	v.SetDefault("transcripts.sqlite_path", "glyphspeak.db")
	v.SetDefault("transcripts.recent_limit", 50)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "http://localhost:4318/v1/traces")
	v.SetDefault("tracing.service_name", "glyphspeak")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

// Package config loads the server configuration.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
)

// EnvToken is the environment variable with the Shortcut API token,
// used when the config does not set one.
const EnvToken = "SHORTCUT_API_TOKEN"

// Transports
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Defaults
const (
	DefaultServerName   = "mcp-server-shortcut"
	DefaultVersion      = "0.1.0"
	DefaultTimeout      = 30 * time.Second
	DefaultHTTPAddr     = ":8080"
	DefaultHTTPEndpoint = "/mcp"
	DefaultLogLevel     = "INFO"
)

// Config of the server
type Config struct {
	Shortcut Shortcut `json:"shortcut" yaml:"shortcut"`
	Server   Server   `json:"server" yaml:"server"`
	Log      Log      `json:"log" yaml:"log"`
}

// Shortcut specifies the upstream API client
type Shortcut struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,url"`
	Token   string `json:"token,omitempty" yaml:"token,omitempty" validate:"required"`
	// Timeout of a request, in time.ParseDuration format
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	// SearchPageSize is the number of results requested per search
	SearchPageSize int `json:"search_page_size,omitempty" yaml:"search_page_size,omitempty" validate:"gte=0,lte=250"`
}

// Server specifies the MCP server
type Server struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Transport is stdio or http
	Transport    string `json:"transport,omitempty" yaml:"transport,omitempty" validate:"omitempty,oneof=stdio http"`
	HTTPAddr     string `json:"http_addr,omitempty" yaml:"http_addr,omitempty"`
	HTTPEndpoint string `json:"http_endpoint,omitempty" yaml:"http_endpoint,omitempty" validate:"omitempty,startswith=/"`
}

// Log specifies the logger
type Log struct {
	// Level is one of DEBUG, INFO, WARNING, ERROR
	Level string `json:"level,omitempty" yaml:"level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARNING ERROR"`
}

// Load returns the config from the YAML or JSON file, with ${ENV} variables expanded.
// Without a file, the config has default values and the token from SHORTCUT_API_TOKEN.
func Load(file string) (*Config, error) {
	cfg := new(Config)
	if file != "" {
		if err := configloader.UnmarshalAndExpand(file, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to load config %s", file)
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the environment from the files, or from .env in the current directory.
// Missing default .env file is ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	return errors.WithStack(godotenv.Load(files...))
}

// SetDefaults sets the values that are not specified
func (c *Config) SetDefaults() {
	c.Shortcut.BaseURL = values.StringsCoalesce(c.Shortcut.BaseURL, shortcut.DefaultBaseURL)
	c.Shortcut.Token = values.StringsCoalesce(c.Shortcut.Token, os.Getenv(EnvToken))
	c.Shortcut.Timeout = values.StringsCoalesce(c.Shortcut.Timeout, DefaultTimeout.String())
	c.Shortcut.SearchPageSize = values.NumbersCoalesce(c.Shortcut.SearchPageSize, shortcut.DefaultSearchPageSize)

	c.Server.Name = values.StringsCoalesce(c.Server.Name, DefaultServerName)
	c.Server.Version = values.StringsCoalesce(c.Server.Version, DefaultVersion)
	c.Server.Transport = values.StringsCoalesce(c.Server.Transport, TransportStdio)
	c.Server.HTTPAddr = values.StringsCoalesce(c.Server.HTTPAddr, DefaultHTTPAddr)
	c.Server.HTTPEndpoint = values.StringsCoalesce(c.Server.HTTPEndpoint, DefaultHTTPEndpoint)

	c.Log.Level = values.StringsCoalesce(c.Log.Level, DefaultLogLevel)
}

// Validate returns error if the config is not valid
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if _, err := c.Shortcut.RequestTimeout(); err != nil {
		return err
	}
	return nil
}

// RequestTimeout returns the parsed Timeout, or DefaultTimeout if not set
func (c *Shortcut) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid config: shortcut.timeout")
	}
	if d <= 0 {
		return 0, errors.Newf("invalid config: shortcut.timeout must be positive: %s", c.Timeout)
	}
	return d, nil
}

package onboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/trustgate/onboard/internal/platform/branding"
	platformconfig "github.com/trustgate/onboard/internal/platform/config"
)

// Config defines the inputs for the onboarding HTTP service.
type Config struct {
	// HTTPAddr is the listen address.
	HTTPAddr string `env:"ONBOARD_HTTP_ADDR" toml:"http_addr"`
	// ConfDir is the directory holding the CA certificate artifacts.
	ConfDir string `env:"ONBOARD_CONF_DIR" toml:"conf_dir"`
	// CAName is the display name and artifact basename of the CA.
	CAName string `env:"ONBOARD_CA_NAME" toml:"ca_name"`
	// PublicURL, when set, adds a QR handoff section to the page.
	PublicURL string `env:"ONBOARD_PUBLIC_URL" toml:"public_url"`
	// OTelEndpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	OTelEndpoint string `env:"ONBOARD_OTEL_ENDPOINT" toml:"otel_endpoint"`
	// OTelDisabled forces tracing off even when an endpoint is set.
	OTelDisabled bool `env:"ONBOARD_OTEL_DISABLED" toml:"otel_disabled"`
}

// DefaultConfig returns the built-in configuration defaults. ConfDir is
// resolved against the home directory at load time.
func DefaultConfig() Config {
	return Config{
		HTTPAddr: ":8432",
		CAName:   branding.AppName,
	}
}

// LoadConfig builds the service configuration by layering the optional
// TOML file over the defaults and environment variables over both.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := platformconfig.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.ConfDir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.ConfDir = filepath.Join(home, "."+branding.AppName)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot safely run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CAName) == "" {
		return errors.New("config: ca_name cannot be empty")
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("config: http_addr cannot be empty")
	}
	if strings.TrimSpace(c.ConfDir) == "" {
		return errors.New("config: conf_dir cannot be empty")
	}
	return nil
}

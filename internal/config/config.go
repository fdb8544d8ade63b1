package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Gateway    GatewayConfig    `toml:"gateway"`
	ElevenLabs ElevenLabsConfig `toml:"elevenlabs"`
	Log        LogConfig        `toml:"log"`
	Trace      TraceConfig      `toml:"trace"`
}

type GatewayConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type ElevenLabsConfig struct {
	APIKey  string   `toml:"api_key"`
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type TraceConfig struct {
	Enabled bool `toml:"enabled"`
	// Endpoint is host:port; EndpointURL is a full URL such as
	// http://collector:4318 and wins when both are set.
	Endpoint    string `toml:"endpoint"`
	EndpointURL string `toml:"endpoint_url"`
	URLPath     string `toml:"url_path"`
	APIKey      string `toml:"api_key"`
	Insecure    bool   `toml:"insecure"`
}

// Duration decodes TOML strings such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load builds the configuration from defaults, the TOML file at path (or
// the default location when path is empty), a .env file in the working
// directory and finally the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			Addr: ":8484",
		},
		ElevenLabs: ElevenLabsConfig{
			BaseURL: "https://api.elevenlabs.io",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	explicit := path != ""
	if !explicit {
		path = configPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ELEVENLABS_API_KEY"); v != "" {
		cfg.ElevenLabs.APIKey = v
	}
	if v := os.Getenv("ELEVENLABS_BASE_URL"); v != "" {
		cfg.ElevenLabs.BaseURL = v
	}
	if v := os.Getenv("FUTUREYOU_ADDR"); v != "" {
		cfg.Gateway.Addr = v
	}
	if v := os.Getenv("FUTUREYOU_ALLOWED_ORIGINS"); v != "" {
		cfg.Gateway.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	// OTLP endpoint variables are URLs, not host:port.
	for _, key := range []string{"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		if v := os.Getenv(key); v != "" {
			cfg.Trace.Enabled = true
			cfg.Trace.EndpointURL = signalURL(v, key == "OTEL_EXPORTER_OTLP_ENDPOINT")
			break
		}
	}
}

// Validate checks the settings required to serve requests.
func (c *Config) Validate() error {
	if c.ElevenLabs.APIKey == "" {
		return errors.New("elevenlabs api key is required (set ELEVENLABS_API_KEY or [elevenlabs] api_key)")
	}
	if c.Gateway.Addr == "" {
		return errors.New("gateway addr is required")
	}
	if c.ElevenLabs.Timeout.Duration < 0 {
		return errors.New("elevenlabs timeout must not be negative")
	}
	return nil
}

// signalURL returns the traces URL for an OTLP endpoint. The generic
// OTEL_EXPORTER_OTLP_ENDPOINT is a base URL that gets /v1/traces appended.
func signalURL(endpoint string, base bool) string {
	if !base {
		return endpoint
	}
	return strings.TrimRight(endpoint, "/") + "/v1/traces"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "futureyou", "config.toml")
}

// Package config loads the gravity client configuration from the environment.
package config

import (
	"strings"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	DefaultGRPCEndpoint = "localhost:9090"
	DefaultQueryTimeout = "10s"
	DefaultLogLevel     = "info"
	DefaultBech32Prefix = "somm"
)

// Config is the client configuration. Fields are matched to environment variables through their
// config tags.
type Config struct {
	GRPCEndpoint string `config:"GRAVITY_GRPC_ENDPOINT"`
	GRPCInsecure bool   `config:"GRAVITY_GRPC_INSECURE"`
	// QueryTimeout is a duration string such as "10s" or "1m".
	QueryTimeout string `config:"GRAVITY_QUERY_TIMEOUT"`
	LogLevel     string `config:"GRAVITY_LOG_LEVEL"`
	Bech32Prefix string `config:"GRAVITY_BECH32_PREFIX"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		GRPCEndpoint: DefaultGRPCEndpoint,
		GRPCInsecure: true,
		QueryTimeout: DefaultQueryTimeout,
		LogLevel:     DefaultLogLevel,
		Bech32Prefix: DefaultBech32Prefix,
	}
}

// Load reads the environment over the defaults.
func Load() (Config, error) {
	return load(jlconfig.FromEnv())
}

// LoadFrom reads KEY=value pairs from file, then the environment, over the defaults. Environment
// variables take precedence over the file.
func LoadFrom(file string) (Config, error) {
	return load(jlconfig.From(file).FromEnv())
}

func load(builder *jlconfig.Builder) (Config, error) {
	cfg := Default()
	if err := builder.To(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to load gravity config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Timeout parses QueryTimeout.
func (c Config) Timeout() (time.Duration, error) {
	d, err := cast.ToDurationE(c.QueryTimeout)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid query timeout %q", c.QueryTimeout)
	}
	return d, nil
}

// Endpoint is the gRPC endpoint with the scheme implied by GRPCInsecure. An endpoint that already
// carries a scheme is returned as is.
func (c Config) Endpoint() string {
	if hasScheme(c.GRPCEndpoint) || c.GRPCInsecure {
		return c.GRPCEndpoint
	}
	return "https://" + c.GRPCEndpoint
}

func (c Config) Validate() error {
	if c.GRPCEndpoint == "" {
		return errors.New("grpc endpoint cannot be empty")
	}
	timeout, err := c.Timeout()
	if err != nil {
		return err
	}
	if timeout <= 0 {
		return errors.Errorf("query timeout must be positive, got %s", timeout)
	}
	if c.Bech32Prefix == "" {
		return errors.New("bech32 prefix cannot be empty")
	}
	return nil
}

func hasScheme(endpoint string) bool {
	return strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://")
}

package gravity

import (
	"testing"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/argus-labs/gravity/x/gravity/querier"
)

// TestingConfig is the e2e configuration, read from the environment of the test container.
type TestingConfig struct {
	GravityGRPC string `config:"GRAVITY_E2E_GRPC"`
	Validator   string `config:"GRAVITY_E2E_VALIDATOR"`
}

// LoadConfig loads the config from env variables. Tests are skipped when no endpoint is set.
func LoadConfig(t *testing.T) TestingConfig {
	var cfg TestingConfig
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.GravityGRPC == "" {
		t.Skip("GRAVITY_E2E_GRPC not set")
	}
	return cfg
}

func GetQuerier(t *testing.T, cfg TestingConfig) *querier.Querier {
	return querier.New(cfg.GravityGRPC, querier.WithLogger(log.TestingLogger()))
}

package relay

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is a prefix of environment variables overriding configuration
// file values.
const EnvPrefix = "HART_RELAY_"

const (
	defaultPollInterval = 15 * time.Second
	defaultCheckpoint   = "relay.db"
	defaultLogLevel     = "info"
)

// Endpoint describes a HART contract deployed on some network.
type Endpoint struct {
	// RPC is an address of the Neo RPC server.
	RPC string `yaml:"rpc" env:"RPC"`
	// Contract is the HART contract hash in LE string form or its address.
	Contract string `yaml:"contract" env:"CONTRACT"`
}

// Wallet describes the account signing mint transactions.
type Wallet struct {
	Path     string `yaml:"path" env:"PATH"`
	Address  string `yaml:"address" env:"ADDRESS"`
	Password string `yaml:"password" env:"PASSWORD"`
}

// Config is the relayer configuration.
type Config struct {
	Origin      Endpoint `yaml:"origin" envPrefix:"ORIGIN_"`
	Destination Endpoint `yaml:"destination" envPrefix:"DESTINATION_"`
	Wallet      Wallet   `yaml:"wallet" envPrefix:"WALLET_"`

	// Checkpoint is a path to the bbolt database with relayed burn IDs.
	Checkpoint string `yaml:"checkpoint" env:"CHECKPOINT"`
	// PollInterval is a pause between synchronization passes.
	PollInterval time.Duration `yaml:"poll_interval" env:"POLL_INTERVAL"`
	// BatchSize limits the number of burns relayed in one pass, 0 means no
	// limit.
	BatchSize int `yaml:"batch_size" env:"BATCH_SIZE"`
	// Metrics is an address to serve Prometheus metrics on, empty disables
	// the server.
	Metrics  string `yaml:"metrics" env:"METRICS"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

// LoadConfig reads configuration from the YAML file (if path is not empty) and
// applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Checkpoint:   defaultCheckpoint,
		PollInterval: defaultPollInterval,
		LogLevel:     defaultLogLevel,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		err = yaml.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that all required values are set.
func (c *Config) Validate() error {
	switch {
	case c.Origin.RPC == "":
		return errors.New("missing origin RPC endpoint")
	case c.Destination.RPC == "":
		return errors.New("missing destination RPC endpoint")
	case c.Wallet.Path == "":
		return errors.New("missing wallet path")
	case c.Checkpoint == "":
		return errors.New("missing checkpoint database path")
	case c.PollInterval <= 0:
		return fmt.Errorf("invalid poll interval %s", c.PollInterval)
	case c.BatchSize < 0:
		return fmt.Errorf("invalid batch size %d", c.BatchSize)
	}

	if _, err := ParseContract(c.Origin.Contract); err != nil {
		return fmt.Errorf("origin contract: %w", err)
	}
	if _, err := ParseContract(c.Destination.Contract); err != nil {
		return fmt.Errorf("destination contract: %w", err)
	}

	return nil
}

// ParseContract decodes contract hash given either as LE hex string or as an
// address.
func ParseContract(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, errors.New("missing contract hash")
	}

	h, err := util.Uint160DecodeStringLE(s)
	if err == nil {
		return h, nil
	}

	h, err = address.StringToUint160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract hash %q", s)
	}

	return h, nil
}

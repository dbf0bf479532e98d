package relay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

const testConfig = `
origin:
  rpc: http://origin:30333
  contract: 0f2f7bd3e2d5b9c6a8e6d9ad1c6a2f3c4b5d6e7f
destination:
  rpc: http://destination:30333
  contract: 1d4b3e4c1e8f2a9b7c6d5e4f3a2b1c0d9e8f7a6b
wallet:
  path: /etc/hart/wallet.json
  password: secret
poll_interval: 5s
batch_size: 10
`

func writeConfig(t *testing.T, data string) string {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "http://origin:30333", cfg.Origin.RPC)
	require.Equal(t, "/etc/hart/wallet.json", cfg.Wallet.Path)
	require.Equal(t, 5*time.Second, cfg.PollInterval)
	require.Equal(t, 10, cfg.BatchSize)
	require.Equal(t, defaultCheckpoint, cfg.Checkpoint)
	require.Equal(t, defaultLogLevel, cfg.LogLevel)

	h, err := ParseContract(cfg.Origin.Contract)
	require.NoError(t, err)
	require.Equal(t, "0f2f7bd3e2d5b9c6a8e6d9ad1c6a2f3c4b5d6e7f", h.StringLE())

	t.Run("contract address", func(t *testing.T) {
		h := util.Uint160{1, 2, 3}
		t.Setenv(EnvPrefix+"DESTINATION_CONTRACT", address.Uint160ToString(h))

		cfg, err := LoadConfig(writeConfig(t, testConfig))
		require.NoError(t, err)

		parsed, err := ParseContract(cfg.Destination.Contract)
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	})
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"DESTINATION_RPC", "http://override:30333")
	t.Setenv(EnvPrefix+"WALLET_PASSWORD", "from-env")
	t.Setenv(EnvPrefix+"POLL_INTERVAL", "1m")

	cfg, err := LoadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "http://override:30333", cfg.Destination.RPC)
	require.Equal(t, "from-env", cfg.Wallet.Password)
	require.Equal(t, time.Minute, cfg.PollInterval)
	require.Equal(t, "http://origin:30333", cfg.Origin.RPC)
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"no origin":        "destination: {rpc: x, contract: 0f2f7bd3e2d5b9c6a8e6d9ad1c6a2f3c4b5d6e7f}\nwallet: {path: w}",
		"bad contract":     "origin: {rpc: x, contract: nope}\ndestination: {rpc: x, contract: nope}\nwallet: {path: w}",
		"no wallet":        "origin: {rpc: x, contract: 0f2f7bd3e2d5b9c6a8e6d9ad1c6a2f3c4b5d6e7f}\ndestination: {rpc: x, contract: 0f2f7bd3e2d5b9c6a8e6d9ad1c6a2f3c4b5d6e7f}",
		"malformed config": "origin: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, data))
			require.Error(t, err)
		})
	}

	t.Run("negative batch", func(t *testing.T) {
		t.Setenv(EnvPrefix+"BATCH_SIZE", "-1")
		_, err := LoadConfig(writeConfig(t, testConfig))
		require.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
	})
}

func TestParseContract(t *testing.T) {
	h := util.Uint160{1, 2, 3}

	parsed, err := ParseContract(h.StringLE())
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	parsed, err = ParseContract(address.Uint160ToString(h))
	require.NoError(t, err)
	require.Equal(t, h, parsed)

	_, err = ParseContract("")
	require.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAddress = "0x00000000000000000000000000000000000000a1"
	testApp     = "0x00000000000000000000000000000000000000d4"
)

func loadFrom(t *testing.T, path string) Config {
	t.Helper()

	cfg, err := load(viper.New(), path, t.TempDir())
	require.NoError(t, err)

	return cfg
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	cfg, err := load(viper.New(), "", home)
	require.NoError(t, err)

	assert.Equal(t, "https://api.testnet.lens.xyz/graphql", cfg.Lens.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Lens.Timeout)
	assert.Equal(t, int64(DefaultChain), cfg.Wallet.ChainID)
	assert.Equal(t, "lens-storage", cfg.Storage.Provider)
	assert.Equal(t, 2*time.Minute, cfg.Poll.Interval)
	assert.Equal(t, time.Hour, cfg.Posting.MinInterval)
	assert.Equal(t, 4*time.Hour, cfg.Posting.MaxInterval)
	assert.True(t, cfg.Posting.Enabled)
	assert.True(t, cfg.Interactions.Enabled)
	assert.Equal(t, 50, cfg.Mentions.Limit)
	assert.Equal(t, 10, cfg.Timeline.Limit)
	assert.Equal(t, 5, cfg.Publish.VisibilityAttempts)
	assert.Equal(t, 5*time.Second, cfg.Publish.VisibilityDelay)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, DefaultMongoDB, cfg.Mongo.Database)
	assert.Equal(t, filepath.Join(home, ".local", "share", "lensagent", "memories.toml"), cfg.Memory.Path)
	assert.Equal(t, DefaultModel, cfg.Gemini.Model)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadReadsTOMLFile(t *testing.T) {
	path := writeConfig(t, `
dry_run = true

[account]
address = "`+testAddress+`"
app = "`+testApp+`"

[wallet]
private_key_ref = "lensagent/wallet"

[poll]
interval = "45s"

[posting]
min_interval = 600
max_interval = "30m"

[storage]
provider = "pinata"

[storage.pinata]
jwt = "jwt-from-file"
`)

	cfg := loadFrom(t, path)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, testAddress, cfg.Account.Address)
	assert.Equal(t, "lensagent/wallet", cfg.Wallet.PrivateKeyRef)
	assert.Equal(t, 45*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Posting.MinInterval)
	assert.Equal(t, 30*time.Minute, cfg.Posting.MaxInterval)
	assert.Equal(t, "pinata", cfg.Storage.Provider)
	assert.Equal(t, "jwt-from-file", cfg.Storage.Pinata.JWT)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "[poll]\ninterval = \"45s\"\n")
	t.Setenv("LENS_POLL_INTERVAL", "120")
	t.Setenv("LENS_MENTIONS_LIMIT", "7")
	t.Setenv("EVM_ADDRESS", testAddress)
	t.Setenv("EVM_PRIVATE_KEY", "0xabc")
	t.Setenv("PINATA_JWT", "jwt-from-env")
	t.Setenv("LENS_DRY_RUN", "true")

	cfg := loadFrom(t, path)
	assert.Equal(t, 2*time.Minute, cfg.Poll.Interval)
	assert.Equal(t, 7, cfg.Mentions.Limit)
	assert.Equal(t, testAddress, cfg.Account.Address)
	assert.Equal(t, "0xabc", cfg.Wallet.PrivateKey)
	assert.Equal(t, "jwt-from-env", cfg.Storage.Pinata.JWT)
	assert.True(t, cfg.DryRun)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	_, err := load(viper.New(), filepath.Join(t.TempDir(), "absent.toml"), t.TempDir())
	assert.ErrorContains(t, err, "read config")
}

func TestLoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	_, err := load(viper.New(), writeConfig(t, "[poll\ninterval = "), t.TempDir())
	assert.ErrorContains(t, err, "read config")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := loadFrom(t, writeConfig(t, `
[account]
address = "not-an-address"

[posting]
min_interval = "2h"
max_interval = "1h"

[log]
level = "verbose"
`))

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "account.address must be a 0x-prefixed 20-byte address")
	assert.ErrorContains(t, err, "account.app is required")
	assert.ErrorContains(t, err, "wallet.private_key or wallet.private_key_ref is required")
	assert.ErrorContains(t, err, "posting.max_interval must not be lower than posting.min_interval")
	assert.ErrorContains(t, err, "log.level must be one of: debug info warn error")
}

func TestSecondsOrDurationHook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want time.Duration
	}{
		{in: "90", want: 90 * time.Second},
		{in: " 2m ", want: 2 * time.Minute},
		{in: int64(5), want: 5 * time.Second},
		{in: 3, want: 3 * time.Second},
	}

	hook := secondsOrDurationHook()
	for _, tt := range tests {
		got, err := hook(nil, durationType, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := hook(nil, durationType, "soon")
	assert.Error(t, err)
}

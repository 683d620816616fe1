package fuzzconfig

import (
	"os"
	"testing"

	"gotest.tools/v3/assert"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{envMaxListLen, envPersistent, envSeedDir, envLogLevel, envHandshakeFD} {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	assert.Equal(t, cfg.MaxListLen, defaultMaxListLen)
	assert.Equal(t, cfg.Persistent, false)
	assert.Equal(t, cfg.SeedDir, "")
	assert.Equal(t, cfg.LogLevel, defaultLogLevel)
	assert.Equal(t, cfg.HandshakeFD, 0)
	assert.NilError(t, cfg.Validate())
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	clearEnv(t)
	os.Setenv(envMaxListLen, "10")
	os.Setenv(envPersistent, "true")
	os.Setenv(envSeedDir, "/tmp/seeds")
	os.Setenv(envLogLevel, "debug")
	os.Setenv(envHandshakeFD, "3")

	cfg := Load()
	assert.Equal(t, cfg.MaxListLen, 10)
	assert.Equal(t, cfg.Persistent, true)
	assert.Equal(t, cfg.SeedDir, "/tmp/seeds")
	assert.Equal(t, cfg.LogLevel, "debug")
	assert.Equal(t, cfg.HandshakeFD, 3)
}

func TestValidateRejectsNonPositiveMaxListLen(t *testing.T) {
	cfg := Config{MaxListLen: 0}
	err := cfg.Validate()
	assert.Assert(t, err != nil)
}

func TestValidateRejectsNegativeHandshakeFD(t *testing.T) {
	cfg := Config{MaxListLen: 1, HandshakeFD: -1}
	err := cfg.Validate()
	assert.Assert(t, err != nil)
}

// Package fuzzconfig resolves the harness's runtime knobs the way
// this corpus resolves daemon configuration: a plain struct populated
// once from the environment, validated, then treated as immutable for
// the life of the process (spec §4.6).
package fuzzconfig

import (
	"os"
	"strconv"

	"github.com/gofuzzcheck/gofuzzcheck/internal/fuzzerrors"
)

// Config holds the harness's runtime knobs.
type Config struct {
	// MaxListLen bounds gen.List/gen.List1 regardless of the byte
	// budget (spec §9, Open Question b).
	MaxListLen int
	// Persistent selects AFL-style persistent mode over single-shot
	// mode (spec §6).
	Persistent bool
	// SeedDir is where a surrounding CLI wrapper may look for saved
	// failing seeds; the core never reads or writes it itself (spec
	// §6 "Persisted state: None owned by the core").
	SeedDir string
	// LogLevel is the structured logger's minimum level.
	LogLevel string
	// HandshakeFD is the file descriptor the persistent-mode
	// handshake byte is written to. Zero disables the handshake,
	// which is the correct setting for single-shot mode or when no
	// AFL-style collaborator is attached.
	HandshakeFD int
}

const (
	envMaxListLen  = "GOFUZZCHECK_MAX_LIST_LEN"
	envPersistent  = "GOFUZZCHECK_PERSISTENT"
	envSeedDir     = "GOFUZZCHECK_SEED_DIR"
	envLogLevel    = "GOFUZZCHECK_LOG_LEVEL"
	envHandshakeFD = "GOFUZZCHECK_HANDSHAKE_FD"

	defaultMaxListLen = 4096
	defaultLogLevel   = "info"
)

// Load resolves a Config from the current environment, applying
// documented defaults for anything unset.
func Load() Config {
	cfg := Config{
		MaxListLen: defaultMaxListLen,
		Persistent: false,
		SeedDir:    "",
		LogLevel:   defaultLogLevel,
	}
	if v, ok := os.LookupEnv(envMaxListLen); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxListLen = n
		}
	}
	if v, ok := os.LookupEnv(envPersistent); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Persistent = b
		}
	}
	if v, ok := os.LookupEnv(envSeedDir); ok {
		cfg.SeedDir = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envHandshakeFD); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HandshakeFD = n
		}
	}
	return cfg
}

// Validate rejects a Config that would make the harness misbehave.
// Like gen's constructors, this is a construction-time programmer
// error, not a runtime outcome.
func (c Config) Validate() error {
	if c.MaxListLen <= 0 {
		return fuzzerrors.InvalidArgument("fuzzconfig: MaxListLen must be positive, got %d", c.MaxListLen)
	}
	if c.HandshakeFD < 0 {
		return fuzzerrors.InvalidArgument("fuzzconfig: HandshakeFD must be non-negative, got %d", c.HandshakeFD)
	}
	return nil
}

package platform

import (
	"io"
	"log/slog"

	"github.com/aretw0/passgenx/pkg/vault"
)

// options holds the internal configuration for opening a vault.
type options struct {
	logger    *slog.Logger
	path      string
	fs        vault.FileSystem
	rand      io.Reader
	forceTemp bool
	devSafety bool
}

// Option defines a functional option for configuring passgenx.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the vault.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPath overrides the vault file location.
// Defaults to DefaultVaultPath().
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFileSystem injects the file system the vault reads and writes through.
func WithFileSystem(fs vault.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithRand sets the random source used to mint identifiers.
// It must be cryptographically secure; tests may pass a fixed reader.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		o.rand = r
	}
}

// WithForceTemp forces the vault into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the vault is redirected to a temporary directory so that
// development runs never touch the real ~/.passgenx/vault.yml.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

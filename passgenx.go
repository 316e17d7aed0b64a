package passgenx

import (
	"io"
	"log/slog"

	"github.com/aretw0/passgenx/internal/platform"
	"github.com/aretw0/passgenx/pkg/core"
	"github.com/aretw0/passgenx/pkg/derive"
	"github.com/aretw0/passgenx/pkg/vault"
)

// --- Types ---

// Request is a public alias for the derivation request.
type Request = core.Request

// CaseType is a public alias for the letter case selection.
type CaseType = core.CaseType

// Store is a public alias for the identifier store.
type Store = vault.Store

const (
	CaseLower = core.CaseLower
	CaseUpper = core.CaseUpper
	CaseBoth  = core.CaseBoth
	CaseNone  = core.CaseNone

	DefaultIdentifier = core.DefaultIdentifier

	// AlgorithmVersion names the derivation procedure. Passwords are only
	// reproducible between builds that report the same value.
	AlgorithmVersion = derive.AlgorithmVersion
)

// Errors, for use with errors.Is.
var (
	ErrConfiguration   = core.ErrConfiguration
	ErrInvalidArgument = core.ErrInvalidArgument
	ErrIO              = core.ErrIO
)

// --- Configuration ---

// Option defines a functional option for opening a vault.
type Option = platform.Option

// WithLogger sets the logger for the vault.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithPath overrides the vault file location (default ~/.passgenx/vault.yml).
func WithPath(path string) Option {
	return platform.WithPath(path)
}

// WithFileSystem injects the file system the vault persists through.
func WithFileSystem(fs vault.FileSystem) Option {
	return platform.WithFileSystem(fs)
}

// WithRand sets the random source used to mint identifiers.
func WithRand(r io.Reader) Option {
	return platform.WithRand(r)
}

// WithForceTemp forces the vault into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run`/`go test` vault sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Operations ---

// NewRequest returns a Request with the default generation options.
func NewRequest(domain, masterSecret, identifier string) Request {
	return core.NewRequest(domain, masterSecret, identifier)
}

// Generate derives the password for req. It has no side effects.
func Generate(req Request) (string, error) {
	return derive.Generate(req)
}

// OpenVault opens the identifier store.
func OpenVault(opts ...Option) (*Store, error) {
	return platform.OpenVault(opts...)
}

// DefaultVaultPath returns the per-user vault location.
func DefaultVaultPath() (string, error) {
	return platform.DefaultVaultPath()
}

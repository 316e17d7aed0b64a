package platform

import (
	"github.com/aretw0/passgenx/pkg/vault"
)

// OpenVault resolves the vault location and opens the identifier store.
//
//	store, err := platform.OpenVault(platform.WithLogger(logger))
func OpenVault(opts ...Option) (*vault.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	path := o.path
	if path == "" {
		def, err := DefaultVaultPath()
		if err != nil {
			return nil, err
		}
		path = def
	}

	dev := IsDevRun()
	useTemp := o.forceTemp || (dev && o.devSafety)
	resolved := ResolveVaultPath(path, useTemp)

	if dev && o.logger != nil {
		if o.devSafety {
			o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "path", resolved)
		} else {
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		}
	}

	return vault.Open(vault.Config{
		Path:   resolved,
		FS:     o.fs,
		Logger: o.logger,
		Rand:   o.rand,
	})
}

// Package passgenx derives reproducible passwords from a domain, a master
// secret and a per-domain identifier, and keeps the identifiers (never the
// passwords) in a small local vault.
//
// It connects the derivation engine (pkg/derive) and the identifier store
// (pkg/vault); the two never call each other, composition happens here or in
// the caller.
//
// Usage:
//
//	store, err := passgenx.OpenVault(passgenx.WithLogger(logger))
//	if err != nil { ... }
//
//	id, ok := store.GetIdentifier("github.com")
//	if !ok {
//		id, err = store.GenerateAndStore("github.com")
//	}
//
//	pw, err := passgenx.Generate(passgenx.NewRequest("github.com", secret, id))
//
// The vault file (~/.passgenx/vault.yml) is plain YAML and may be edited by
// hand. It is not encrypted, and concurrent writers are not coordinated.
package passgenx

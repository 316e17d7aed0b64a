// Package derive is the deterministic derivation engine.
//
// A password is a pure function of (domain, master secret, identifier,
// options). Nothing is persisted and no system randomness is consulted:
//
//  1. The character set is assembled from the selected pools, always in the
//     order lowercase, uppercase, digits, symbols.
//  2. The seed is SHA-256(domain "|" masterSecret "|" identifier).
//  3. The seed keys a ChaCha20 keystream (RFC 8439, zero nonce, counter 0).
//     The keystream is read as little-endian uint32 words and mapped onto
//     [0, n) by rejection sampling.
//  4. Length indices are drawn and the selected characters concatenated in
//     draw order.
//
// Every step above is part of AlgorithmVersion. Changing pool contents, pool
// order, the seed formula or the sampling method changes every previously
// derived password and must come with a new AlgorithmVersion.
package derive

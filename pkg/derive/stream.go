package derive

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Delimiter separates the seed fields. It is not expected in any of them.
const Delimiter = "|"

// Seed hashes the three seed fields into the 256-bit seed.
func Seed(domain, masterSecret, identifier string) [sha256.Size]byte {
	return sha256.Sum256([]byte(domain + Delimiter + masterSecret + Delimiter + identifier))
}

// indexSource draws uniform indices from a ChaCha20 keystream.
type indexSource struct {
	cipher *chacha20.Cipher
}

func newIndexSource(seed [sha256.Size]byte) (*indexSource, error) {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create keystream: %w", err)
	}
	return &indexSource{cipher: c}, nil
}

// Uint32 returns the next little-endian keystream word.
func (s *indexSource) Uint32() uint32 {
	var b [4]byte
	s.cipher.XORKeyStream(b[:], b[:])
	return binary.LittleEndian.Uint32(b[:])
}

// Intn returns a uniform index in [0, n). n must be positive.
//
// Words in the incomplete tail of the uint32 range are discarded so that every
// index is equally likely.
func (s *indexSource) Intn(n int) int {
	bound := uint64(n)
	threshold := (uint64(1) << 32) - (uint64(1)<<32)%bound
	for {
		v := uint64(s.Uint32())
		if v < threshold {
			return int(v % bound)
		}
	}
}

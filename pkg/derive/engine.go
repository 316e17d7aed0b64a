package derive

import (
	"fmt"
	"strings"

	"github.com/aretw0/passgenx/pkg/core"
)

// AlgorithmVersion names the published derivation procedure implemented here.
const AlgorithmVersion = "chacha20-v1"

// Generate derives the password for req.
//
// The identifier is used as given; callers normalize an absent identifier
// (see core.Request.Normalize) before calling. Generate fails with
// core.ErrInvalidArgument for a non-positive length or an unknown case type,
// and with core.ErrConfiguration when the options select no characters.
func Generate(req core.Request) (string, error) {
	charset, err := Charset(req.Case, req.IncludeDigits, req.IncludeSymbols)
	if err != nil {
		return "", err
	}
	if req.Length <= 0 {
		return "", fmt.Errorf("%w: length must be positive, got %d", core.ErrInvalidArgument, req.Length)
	}

	src, err := newIndexSource(Seed(req.Domain, req.MasterSecret, req.Identifier))
	if err != nil {
		return "", err
	}

	pool := []rune(charset)
	var b strings.Builder
	b.Grow(req.Length)
	for i := 0; i < req.Length; i++ {
		b.WriteRune(pool[src.Intn(len(pool))])
	}
	return b.String(), nil
}

package derive

import (
	"fmt"
	"strings"

	"github.com/aretw0/passgenx/pkg/core"
)

// Character pools. Their contents and concatenation order are part of the algorithm.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{};:,.?<>/\\|~`"
)

// Charset builds the ordered character set for the given options.
func Charset(c core.CaseType, digits, symbols bool) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown case type %q", core.ErrInvalidArgument, c)
	}

	var b strings.Builder
	if c == core.CaseLower || c == core.CaseBoth {
		b.WriteString(Lowercase)
	}
	if c == core.CaseUpper || c == core.CaseBoth {
		b.WriteString(Uppercase)
	}
	if digits {
		b.WriteString(Digits)
	}
	if symbols {
		b.WriteString(Symbols)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: empty character set; enable letters (case lower, upper or both), digits or symbols", core.ErrConfiguration)
	}
	return b.String(), nil
}

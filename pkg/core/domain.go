// Package core holds the types shared by the derivation engine, the vault and
// whatever orchestrates them.
package core

import (
	"fmt"
	"strings"
)

const (
	// DefaultIdentifier is used when the caller has no identifier for a domain.
	DefaultIdentifier = "default"

	DefaultLength = 16
	MinLength     = 8
	MaxLength     = 64
)

// CaseType selects which letter pools take part in a derivation.
type CaseType string

const (
	CaseLower CaseType = "lower"
	CaseUpper CaseType = "upper"
	CaseBoth  CaseType = "both"
	// CaseNone disables letters entirely (digits and/or symbols only).
	CaseNone CaseType = "none"
)

// Valid reports whether c is one of the known case types.
func (c CaseType) Valid() bool {
	switch c {
	case CaseLower, CaseUpper, CaseBoth, CaseNone:
		return true
	}
	return false
}

// ParseCaseType converts user input into a CaseType. Matching is case-insensitive.
func ParseCaseType(s string) (CaseType, error) {
	c := CaseType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown case type %q (want lower, upper, both or none)", ErrInvalidArgument, s)
	}
	return c, nil
}

// Request carries everything the derivation engine needs.
// It is built by the caller and never persisted.
type Request struct {
	Domain         string
	MasterSecret   string
	Identifier     string
	Length         int
	Case           CaseType
	IncludeDigits  bool
	IncludeSymbols bool
}

// NewRequest returns a Request populated with the default generation options.
func NewRequest(domain, masterSecret, identifier string) Request {
	return Request{
		Domain:         domain,
		MasterSecret:   masterSecret,
		Identifier:     identifier,
		Length:         DefaultLength,
		Case:           CaseBoth,
		IncludeDigits:  true,
		IncludeSymbols: true,
	}
}

// Normalize fills an empty identifier with DefaultIdentifier.
func (r Request) Normalize() Request {
	if r.Identifier == "" {
		r.Identifier = DefaultIdentifier
	}
	return r
}

// CheckBounds applies the caller-side policy: a non-empty domain and secret
// and a length within [MinLength, MaxLength]. The engine does not enforce it.
func (r Request) CheckBounds() error {
	if r.Domain == "" {
		return fmt.Errorf("%w: domain must not be empty", ErrInvalidArgument)
	}
	if r.MasterSecret == "" {
		return fmt.Errorf("%w: master secret must not be empty", ErrInvalidArgument)
	}
	if r.Length < MinLength || r.Length > MaxLength {
		return fmt.Errorf("%w: length %d out of range [%d, %d]", ErrInvalidArgument, r.Length, MinLength, MaxLength)
	}
	return nil
}

// String omits the master secret so a Request can be logged safely.
func (r Request) String() string {
	return fmt.Sprintf("Request{domain=%s identifier=%s length=%d case=%s digits=%t symbols=%t}",
		r.Domain, r.Identifier, r.Length, r.Case, r.IncludeDigits, r.IncludeSymbols)
}

// EventType represents the type of change observed in the vault.
type EventType string

const (
	EventReload  EventType = "RELOAD"
	EventRemove  EventType = "REMOVE"
	EventCorrupt EventType = "CORRUPT"
)

// Event represents a change of the vault file on disk.
type Event struct {
	Type      EventType
	Path      string
	Entries   int
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s (%d entries)", e.Type, e.Path, e.Entries)
}

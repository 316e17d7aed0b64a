package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/passgenx/pkg/core"
)

func TestParseCaseType(t *testing.T) {
	cases := map[string]core.CaseType{
		"lower":  core.CaseLower,
		"UPPER":  core.CaseUpper,
		" Both ": core.CaseBoth,
		"none":   core.CaseNone,
	}
	for in, want := range cases {
		got, err := core.ParseCaseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := core.ParseCaseType("mixed")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestRequest_Normalize(t *testing.T) {
	req := core.NewRequest("github.com", "secret", "").Normalize()
	assert.Equal(t, core.DefaultIdentifier, req.Identifier)

	req = core.NewRequest("github.com", "secret", "recovery").Normalize()
	assert.Equal(t, "recovery", req.Identifier)
}

func TestRequest_CheckBounds(t *testing.T) {
	ok := core.NewRequest("github.com", "secret", "default")
	require.NoError(t, ok.CheckBounds())

	tests := []struct {
		name string
		mut  func(*core.Request)
	}{
		{"empty domain", func(r *core.Request) { r.Domain = "" }},
		{"empty secret", func(r *core.Request) { r.MasterSecret = "" }},
		{"too short", func(r *core.Request) { r.Length = core.MinLength - 1 }},
		{"too long", func(r *core.Request) { r.Length = core.MaxLength + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ok
			tt.mut(&r)
			err := r.CheckBounds()
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}
}

func TestRequest_StringHidesSecret(t *testing.T) {
	req := core.NewRequest("github.com", "hunter2", "default")
	assert.NotContains(t, req.String(), "hunter2")
	assert.Contains(t, req.String(), "github.com")
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/passgenx/pkg/core"
)

// run executes the CLI with args against vaultPath and returns stdout and stderr.
func run(t *testing.T, vaultPath, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--vault", vaultPath))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func tempVault(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".passgenx", "vault.yml")
}

func TestGenerate_Default(t *testing.T) {
	vault := tempVault(t)

	out, errOut, err := run(t, vault, "password123\n", "generate", "github.com")
	require.NoError(t, err)
	assert.Equal(t, "KpBJ-$xQ|#(K$6M|\n", out)
	assert.Contains(t, errOut, "identifier: default (default)")

	again, _, err := run(t, vault, "password123\n", "generate", "github.com")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	google, _, err := run(t, vault, "password123\n", "generate", "google.com")
	require.NoError(t, err)
	assert.NotEqual(t, out, google)

	// nothing stored implicitly
	_, err = os.Stat(vault)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_Options(t *testing.T) {
	vault := tempVault(t)

	out, _, err := run(t, vault, "correct horse\n",
		"generate", "example.org", "--length", "24", "--case", "lower", "--no-digits", "--no-symbols")
	require.NoError(t, err)
	assert.Equal(t, "kokmubkyszrdhzftbeweovel\n", out)
	assert.Regexp(t, regexp.MustCompile(`^[a-z]{24}\n$`), out)
}

func TestGenerate_StoredIdentifier(t *testing.T) {
	vault := tempVault(t)

	_, _, err := run(t, vault, "", "vault", "set", "github.com", "recovery")
	require.NoError(t, err)

	out, errOut, err := run(t, vault, "password123\n", "generate", "github.com")
	require.NoError(t, err)
	assert.Equal(t, "#3vZT[;iy16a-I^J\n", out)
	assert.Contains(t, errOut, "(vault)")
}

func TestGenerate_NewIdentifier(t *testing.T) {
	vault := tempVault(t)

	_, _, err := run(t, vault, "password123\n", "generate", "github.com", "--new-identifier")
	require.NoError(t, err)

	id, _, err := run(t, vault, "", "vault", "get", "github.com")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\n$`), id)
}

func TestGenerate_SaveIdentifier(t *testing.T) {
	vault := tempVault(t)

	_, _, err := run(t, vault, "pw\n", "generate", "github.com", "-i", "work", "--save")
	require.NoError(t, err)

	id, _, err := run(t, vault, "", "vault", "get", "github.com")
	require.NoError(t, err)
	assert.Equal(t, "work\n", id)
}

func TestGenerate_FailureKeepsStoredIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"new identifier, bad length", "pw\n", []string{"--new-identifier", "--length", "5"}},
		{"new identifier, empty secret", "\n", []string{"--new-identifier"}},
		{"new identifier, empty charset", "pw\n", []string{"--new-identifier", "--case", "none", "--no-digits", "--no-symbols"}},
		{"saved flag, bad length", "pw\n", []string{"-i", "other", "--save", "--length", "65"}},
		{"saved flag, empty charset", "pw\n", []string{"-i", "other", "--save", "--case", "none", "--no-digits", "--no-symbols"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := tempVault(t)
			_, _, err := run(t, vault, "", "vault", "set", "github.com", "original-id")
			require.NoError(t, err)

			out, _, err := run(t, vault, tt.stdin, append([]string{"generate", "github.com"}, tt.args...)...)
			require.Error(t, err)
			assert.Empty(t, out)

			id, _, err := run(t, vault, "", "vault", "get", "github.com")
			require.NoError(t, err)
			assert.Equal(t, "original-id\n", id)
		})
	}
}

func TestGenerate_FailureStoresNothing(t *testing.T) {
	vault := tempVault(t)

	_, _, err := run(t, vault, "pw\n", "generate", "github.com", "--new-identifier", "--length", "5")
	require.Error(t, err)

	_, err = os.Stat(vault)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_Errors(t *testing.T) {
	vault := tempVault(t)

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
	}{
		{"empty charset", "pw\n", []string{"generate", "a.com", "--case", "none", "--no-digits", "--no-symbols"}, core.ErrConfiguration},
		{"too short", "pw\n", []string{"generate", "a.com", "--length", "4"}, core.ErrInvalidArgument},
		{"too long", "pw\n", []string{"generate", "a.com", "--length", "65"}, core.ErrInvalidArgument},
		{"bad case", "pw\n", []string{"generate", "a.com", "--case", "title"}, core.ErrInvalidArgument},
		{"empty secret", "\n", []string{"generate", "a.com"}, core.ErrInvalidArgument},
		{"conflicting flags", "pw\n", []string{"generate", "a.com", "-i", "x", "--new-identifier"}, core.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, vault, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestVault_Commands(t *testing.T) {
	vault := tempVault(t)

	for _, d := range []string{"github.com", "mail.example.com", "www.example.com"} {
		_, _, err := run(t, vault, "", "vault", "set", d, "id-"+d)
		require.NoError(t, err)
	}

	out, _, err := run(t, vault, "", "vault", "list")
	require.NoError(t, err)
	assert.Equal(t, "github.com\nmail.example.com\nwww.example.com\n", out)

	out, _, err = run(t, vault, "", "vault", "list", "--match", "*.example.com")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.com\nwww.example.com\n", out)

	out, _, err = run(t, vault, "", "vault", "list", "--match", "git*", "--ids", "--json")
	require.NoError(t, err)
	var entries map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, map[string]string{"github.com": "id-github.com"}, entries)

	_, _, err = run(t, vault, "", "vault", "list", "--match", "[")
	assert.Error(t, err)

	_, _, err = run(t, vault, "", "vault", "rm", "github.com")
	require.NoError(t, err)
	_, _, err = run(t, vault, "", "vault", "get", "github.com")
	assert.Error(t, err)
	_, _, err = run(t, vault, "", "vault", "rm", "github.com")
	assert.Error(t, err)

	out, _, err = run(t, vault, "", "vault", "new", "gitlab.com")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}\n$`), out)
}

func TestVault_StatusCorrupted(t *testing.T) {
	vault := tempVault(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(vault), 0o700))
	require.NoError(t, os.WriteFile(vault, []byte("{{{ not yaml"), 0o600))

	out, errOut, err := run(t, vault, "", "vault", "status")
	require.NoError(t, err)
	assert.Contains(t, errOut, "vault file corrupted")

	var status struct {
		Component string `json:"component"`
		State     struct {
			Path       string `json:"path"`
			Entries    int    `json:"entries"`
			LoadStatus string `json:"load_status"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "vault", status.Component)
	assert.Equal(t, vault, status.State.Path)
	assert.Equal(t, "corrupted", status.State.LoadStatus)
	assert.Equal(t, 0, status.State.Entries)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, tempVault(t), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "passgenx version")
	assert.Contains(t, out, "chacha20-v1")
}

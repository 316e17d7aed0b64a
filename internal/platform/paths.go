package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// SystemDir is the per-user directory holding the vault.
	SystemDir = ".passgenx"
	// VaultFile is the vault file name inside SystemDir.
	VaultFile = "vault.yml"
)

// DefaultVaultPath returns ~/.passgenx/vault.yml for the current user.
func DefaultVaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, SystemDir, VaultFile), nil
}

// IsDevRun reports whether this passgenx binary is a throwaway build, such
// as one produced for a single run or for the test suite. Those builds must
// not touch the user's real vault.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	return isScratchBinary(exe, os.TempDir())
}

// isScratchBinary reports whether exe was built into tempDir or is a test
// binary.
func isScratchBinary(exe, tempDir string) bool {
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir)) {
		return true
	}
	for _, suffix := range []string{".test", ".test.exe"} {
		if strings.HasSuffix(exe, suffix) {
			return true
		}
	}
	return false
}

// ResolveVaultPath determines the actual vault file based on safety rules.
// With forceTemp set, a path outside the system temp directory is re-rooted
// into a namespaced temp directory, keeping the file name.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		return userPath
	}

	// Paths already under the temp dir (t.TempDir() and friends) are trusted.
	cleanUserPath := filepath.Clean(userPath)
	rel, err := filepath.Rel(os.TempDir(), cleanUserPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		return cleanUserPath
	}

	baseTemp := filepath.Join(os.TempDir(), "passgenx-dev")

	name := filepath.Base(cleanUserPath)
	if userPath == "" || name == "." || name == string(os.PathSeparator) {
		name = VaultFile
	}

	// keep the owning directory name so distinct vaults stay distinct
	sub := filepath.Base(filepath.Dir(cleanUserPath))
	if sub == "." || sub == string(os.PathSeparator) {
		sub = "default"
	}

	return filepath.Join(baseTemp, sub, name)
}

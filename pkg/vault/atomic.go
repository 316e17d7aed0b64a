package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names the scratch files a vault write leaves beside the
// vault until they are renamed over it.
const TempFilePrefix = ".passgenx-tmp-"

// writeFileAtomic replaces filename with data. Readers see either the old
// vault or the new one, never a truncated file. The scratch file gets perm
// before any identifier is written to it.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := fillTemp(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}
	return nil
}

// fillTemp writes data to f, flushes it to disk and closes it.
func fillTemp(f *os.File, data []byte, perm os.FileMode) error {
	steps := []struct {
		what string
		do   func() error
	}{
		{"chmod", func() error { return f.Chmod(perm) }},
		{"write", func() error { _, err := f.Write(data); return err }},
		{"sync", f.Sync},
	}
	for _, step := range steps {
		if err := step.do(); err != nil {
			f.Close()
			return fmt.Errorf("failed to %s temp file: %w", step.what, err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	return nil
}

package exportstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/z64/shark-report/internal/domain"
)

// writeFile writes data next to path and renames it into place.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ioError("exportstore.mkdir", filepath.Dir(path), err)
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return ioError("exportstore.write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return ioError("exportstore.rename", path, err)
	}
	return nil
}

func ioError(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindIO,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrIO, err),
	}
}

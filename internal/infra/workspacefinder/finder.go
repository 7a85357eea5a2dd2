package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/ports"
)

// ConfigFile marks a shark-report workspace root.
const ConfigFile = "shark-report.yaml"

// Finder locates a workspace root by searching for shark-report.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "shark-report.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot accepts a directory or a file inside the workspace, typically the
// report being converted. Only a regular config file marks a root.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", findErr(domain.KindInvalidConfig, "", errors.New("startDir is empty"))
	}

	dir, err := startingDir(startDir)
	if err != nil {
		return "", findErr(domain.KindExecution, startDir, err)
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFile
	}

	for {
		if isRegular(filepath.Join(dir, name)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", findErr(domain.KindNotFound, startDir, domain.ErrNotFound)
		}
		dir = parent
	}
}

func startingDir(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func findErr(kind domain.ErrorKind, path string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

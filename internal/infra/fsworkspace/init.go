package fsworkspace

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/z64/shark-report/internal/domain"
	"github.com/z64/shark-report/internal/infra/logger"
	"github.com/z64/shark-report/internal/ports"
)

const gitignoreHeader = "# shark-report"

// Initializer lays out a workspace on the local filesystem.
type Initializer struct {
	exportsDir string
}

type Option func(*Initializer)

// WithExportsDir overrides the exports directory created and ignored by git.
func WithExportsDir(dir string) Option {
	return func(i *Initializer) {
		if strings.TrimSpace(dir) != "" {
			i.exportsDir = dir
		}
	}
}

func NewInitializer(opts ...Option) *Initializer {
	i := &Initializer{exportsDir: domain.DefaultConfig().Output.ExportsDir}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init creates the exports and log directories, copies the bundled templates
// and extends .gitignore. Existing template files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range []string{i.exportsDir, filepath.FromSlash(logger.Dir)} {
		p := filepath.Join(root, d)
		if err := os.MkdirAll(p, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindIO, Path: p, Err: err}
		}
	}

	if err := ensureGitignore(root, ignoreEntries(i.exportsDir)); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindIO, Path: root, Err: err}
	}

	if err := copyTemplates(root, force); err != nil {
		return &domain.OpError{Op: "fsworkspace.templates", Kind: domain.KindIO, Path: root, Err: err}
	}
	return nil
}

// ignoreEntries lists the generated directories, in .gitignore form.
func ignoreEntries(exportsDir string) []string {
	return []string{
		filepath.ToSlash(filepath.Clean(exportsDir)) + "/",
		strings.SplitN(logger.Dir, "/", 2)[0] + "/",
	}
}

func copyTemplates(root string, force bool) error {
	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dst, b, 0o644)
	})
}

// ensureGitignore appends the missing entries under a shark-report header,
// leaving the rest of the file untouched.
func ensureGitignore(root string, entries []string) error {
	p := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	existing := string(b)

	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			present[t] = true
		}
	}

	var block []string
	if !present[gitignoreHeader] {
		block = append(block, gitignoreHeader)
	}
	missing := 0
	for _, e := range entries {
		if !present[e] && !present[path.Clean(e)] {
			block = append(block, e)
			missing++
		}
	}
	if missing == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString(strings.Join(block, "\n"))
	out.WriteByte('\n')

	return os.WriteFile(p, []byte(out.String()), 0o644)
}

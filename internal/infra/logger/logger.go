package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/z64/shark-report/internal/domain"
)

// Location of the log file relative to the workspace root.
const (
	Dir  = ".shark-report/logs"
	File = "shark-report.log"
)

// Config controls where the log file lives and how verbose it is.
type Config struct {
	Root  string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup points the global logger at <Root>/.shark-report/logs/shark-report.log.
// Until it succeeds every log call is discarded.
func Setup(cfg Config) (func() error, error) {
	root := "."
	if cfg.Root != "" {
		root = filepath.Clean(cfg.Root)
	}

	dir := filepath.Join(root, filepath.FromSlash(Dir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindIO, Path: dir, Err: err}
	}

	path := filepath.Join(dir, File)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindIO, Path: path, Err: err}
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}

	return cleanup, nil
}

// newHandler writes JSON lines with UTC RFC3339Nano timestamps.
// Debug lowers the level and records call sites.
func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// L returns the process-wide logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

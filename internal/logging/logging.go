package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const defaultLogFile = "quirks.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	level        = zerolog.InfoLevel
	out          io.Writer
	file         = &lazyFile{path: defaultLogFile}
	logger       = newLogger(file, level)
)

// lazyFile opens its path for appending on the first write so that runs
// which never log leave no file behind. A failed open is kept and returned
// for every later write; stderr belongs to the menu.
type lazyFile struct {
	mu      sync.Mutex
	path    string
	f       *os.File
	openErr error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.openErr != nil {
		return 0, l.openErr
	}
	if l.f == nil {
		f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			l.openErr = errors.Wrap(err, "open log file")
			return 0, l.openErr
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) reset(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var err error
	if l.f != nil {
		err = l.f.Close()
		l.f = nil
	}
	l.path = path
	l.openErr = nil
	return err
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func rebuild() {
	var w io.Writer = file
	if out != nil {
		w = out
	}
	logger = newLogger(w, level)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	target := strings.TrimSpace(path)
	if target == "" {
		target = defaultLogFile
	} else if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		target = defaultLogFile
	}
	_ = file.reset(target)
	rebuild()
}

// SetOutput redirects log entries to w instead of the log file. A nil writer
// restores the file destination.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	rebuild()
	mu.Unlock()
}

// SetLevel sets the minimum severity written to the log.
func SetLevel(name string) error {
	lvl, err := ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	level = lvl
	rebuild()
	mu.Unlock()
	return nil
}

// ParseLevel maps a level name onto a zerolog level. Blank names mean info.
func ParseLevel(name string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "invalid log level %q", name)
	}
	return lvl, nil
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

func current() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Trace appends a structured entry to the log when tracing is enabled.
// Trace entries are written regardless of the configured level.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	l := current()
	entry := l.Log().Str("event", event)
	if payload != nil {
		entry = entry.Interface("payload", payload)
	}
	entry.Msg("trace")
}

// Error records err together with its stack, when it carries one.
func Error(err error) {
	if err == nil {
		return
	}
	l := current()
	l.Error().Str("stack", fmt.Sprintf("%+v", err)).Msg(err.Error())
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) {
	l := current()
	l.Debug().Msgf(format, args...)
}

// Close releases the log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return file.reset(file.path)
}

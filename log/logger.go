// Package log provides the leveled, per-module loggers used across the
// renderer. Packages grab a named logger at init time via New; the CLI
// adjusts global verbosity with SetLevel and tests capture output with
// SetSink.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects the minimum severity that gets emitted.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

var levelMap = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Logger is the surface exposed to the rest of the module. Each method pair
// mirrors fmt.Print/fmt.Printf semantics at a fixed severity.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module}/%{level:.4s}%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	current = Info
)

// New returns the logger registered under the given module name. Loggers
// with the same name share state, so package-level vars are cheap.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink rebuilds the shared backend on top of w, keeping the current
// verbosity. Log lines go to stderr by default so rendered output and
// stats tables on stdout stay clean.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(levelMap[current], "")
	logging.SetBackend(backend)
}

// SetLevel changes verbosity for all module loggers at once.
func SetLevel(level Level) {
	current = level
	backend.SetLevel(levelMap[level], "")
}

func init() {
	SetSink(os.Stderr)
}

// Package rtlog wires the render path's logging through
// github.com/op/go-logging with a colored, leveled backend. The
// integrator and scheduler packages never import this package directly;
// only cmd/pathtracer and pkg/renderer do, so the core render path stays
// decoupled from the logging backend.
package rtlog

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level mirrors the handful of op/go-logging levels this package exposes.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Logger is the interface render-path callers log through.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// New returns a named logger backed by the shared leveled backend.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects log output to a different writer.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// Configure sets the process-wide verbosity: Info level normally, Debug
// when verbose is requested by the CLI's -v flag.
func Configure(verbose bool) {
	if verbose {
		SetLevel(Debug)
	} else {
		SetLevel(Info)
	}
}

// SetLevel adjusts the leveled backend's threshold.
func SetLevel(level Level) {
	var loggingLevel logging.Level
	switch level {
	case Debug:
		loggingLevel = logging.DEBUG
	case Info:
		loggingLevel = logging.INFO
	case Notice:
		loggingLevel = logging.NOTICE
	case Warning:
		loggingLevel = logging.WARNING
	case Error:
		loggingLevel = logging.ERROR
	}
	leveledBackend.SetLevel(loggingLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}

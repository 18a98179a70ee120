package dd

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the logging interface used throughout the dd package. It matches
// the leveled methods of charmbracelet/log's Logger.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

// NewDefaultLogger returns the logger used when none is injected.
func NewDefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "godd",
	})
}

var logSink Logger = NewDefaultLogger()

// SetLogger allows callers/tests to inject a custom logger instead of the
// default one. Passing nil resets to the default.
func SetLogger(l Logger) {
	if l == nil {
		logSink = NewDefaultLogger()
		return
	}
	logSink = l
}

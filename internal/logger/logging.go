// Package logger wraps charmbracelet/log so packages get prefixed loggers
// that follow the globally configured level.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a prefixed logger at the current global level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetDebug switches the global level between debug and warn. Server mode
// keeps stdout clean for the IPC stream, so everything logs to stderr.
func SetDebug(debug bool) {
	if debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
}

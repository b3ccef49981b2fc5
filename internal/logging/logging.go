// Package logging builds charmbracelet/log loggers for the CLI. Output goes to
// stderr so stdout stays parseable in JSON mode.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewWithWriter returns a logger writing to w with the given prefix and level
// name. Unknown level names fall back to warn.
func NewWithWriter(w io.Writer, prefix, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           lvl,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

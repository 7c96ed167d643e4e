// Package nlog provides the minimal structured-logging interface used by
// cmd/ntsfdump. The ntsf codec package itself never imports this package;
// logging lives strictly at the CLI boundary.
package nlog

import (
	"io"
	"log"
)

// Logger is the ambient logging interface. Infof and Warnf are for
// progress and non-fatal diagnostics; Errorf is for failures the caller is
// about to report and exit on.
type Logger interface {
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	verbose bool
	l       *log.Logger
}

// New returns a Logger that writes to w with the standard log package's
// timestamp prefix. When verbose is false, Infof calls are discarded.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{verbose: verbose, l: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Infof(format string, v ...any) {
	if !l.verbose {
		return
	}
	l.l.Printf("[INFO] "+format, v...)
}

func (l *stdLogger) Warnf(format string, v ...any) {
	l.l.Printf("[WARN] "+format, v...)
}

func (l *stdLogger) Errorf(format string, v ...any) {
	l.l.Printf("[ERROR] "+format, v...)
}

// Package jsonlog is the ambient logging facade for photjson's parse
// path. It is intentionally a thin wrapper over log/slog rather than a
// pull-in of a third-party logging backend, following the same
// precedent set by the example corpus's own library-side logging
// package (MacroPower-x's log.CreateHandler), which reserves its
// third-party TUI logger for the terminal application and uses
// log/slog directly for library-shaped structured logging.
package jsonlog

import (
	"fmt"
	"io"
	"log/slog"
)

// Debugger is the minimal logging surface photjson's parser needs:
// one debug-level, printf-style sink. A nil Debugger is a valid no-op.
type Debugger interface {
	Debugf(format string, args ...any)
}

// New returns a Debugger that writes structured debug records to w
// using log/slog's text handler.
func New(w io.Writer) Debugger {
	return &slogDebugger{l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))}
}

type slogDebugger struct {
	l *slog.Logger
}

func (s *slogDebugger) Debugf(format string, args ...any) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

// discardDebugger is the zero-cost no-op Debugger used by default.
type discardDebugger struct{}

func (discardDebugger) Debugf(string, ...any) {}

// Discard is a Debugger that ignores everything written to it.
var Discard Debugger = discardDebugger{}

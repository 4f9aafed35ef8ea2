// Package logtee is a leveled tee logger: a formatted line is fanned out
// to any number of sinks, each filtering by its own minimum level.
//
// A Logger owns the level registry, the sink list, the optional per-line
// prefix callback and one shared formatting buffer. Nothing is locked: a
// Logger is NOT safe for concurrent use without external serialization.
package logtee

import (
	"fmt"
	"io"
	"os"
)

// LineMax is the default bound for a single formatted message.
// Content beyond the bound is silently truncated.
const LineMax = 2048

// exitFunc is swapped in tests to observe the fatal path.
var exitFunc = os.Exit

// PrefixFunc produces a per-line header, typically a timestamp. The
// returned string is only read during the dispatch that requested it.
type PrefixFunc func() string

// Logger fans formatted lines out to independently filtered sinks.
type Logger struct {
	levels   []levelEntry
	sinks    []sink
	prefixFn PrefixFunc

	line []byte // shared formatting buffer, truncated at lineMax
	out  []byte // composed header + level prefix + line

	lineMax int
	diag    io.Writer // fallback stream for the facility's own malfunctions
	closed  bool
	warned  bool
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithLineMax overrides the truncation bound for a single formatted
// message. Values below 1 are ignored.
func WithLineMax(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.lineMax = n
		}
	}
}

// WithDiagnostics redirects reports about the logger's own malfunctions.
// These stay visible even when every user sink is broken or unconfigured;
// the default is os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.diag = w
		}
	}
}

// New returns a Logger seeded with the built-in levels and no sinks.
// Logging is a no-op until a sink is added.
func New(opts ...Option) *Logger {
	l := &Logger{
		lineMax: LineMax,
		diag:    os.Stderr,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.levels = builtinTable()
	l.line = make([]byte, 0, l.lineMax)
	return l
}

// SetPrefixFunc installs fn, invoked once per dispatch and prepended to
// the line. A nil fn keeps the current callback.
func (l *Logger) SetPrefixFunc(fn PrefixFunc) {
	if fn != nil {
		l.prefixFn = fn
	}
}

// Logf formats the message and writes it to every sink whose threshold
// admits level. When no sink is active it returns before formatting, so
// argument evaluation side effects (Stringer, error) do not occur.
// A level equal to LevelFatal terminates the process with a failure
// status once every eligible sink has received the line.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if l.closed {
		if !l.warned {
			l.warned = true
			fmt.Fprintln(l.diag, "logtee: Logf after Close")
		}
		return
	}
	if !l.hasActiveSink() {
		return
	}

	l.line = fmt.Appendf(l.line[:0], format, args...)
	if len(l.line) > l.lineMax {
		l.line = l.line[:l.lineMax]
	}

	header := ""
	if l.prefixFn != nil {
		header = l.prefixFn()
	}
	l.out = append(l.out[:0], header...)
	l.out = append(l.out, l.prefixFor(level)...)
	l.out = append(l.out, l.line...)

	l.dispatch(level, l.out)

	if level == LevelFatal {
		l.Close()
		exitFunc(1)
	}
}

// Reset closes every owned sink, empties all slots, drops the prefix
// callback and restores the built-in level table. The logger stays
// usable; logging is a no-op until a sink is added again.
func (l *Logger) Reset() {
	l.closeSinks()
	l.prefixFn = nil
	l.levels = builtinTable()
}

// Close tears the logger down: owned sinks are closed, the two standard
// streams are left untouched. Idempotent, and safe when nothing was ever
// logged. Logf after Close reports once on the diagnostic stream.
func (l *Logger) Close() {
	if l.closed {
		return
	}
	l.closeSinks()
	l.prefixFn = nil
	l.closed = true
}

// Debugf logs at LevelDebug.
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warningf logs at LevelWarning.
func (l *Logger) Warningf(format string, args ...any) { l.Logf(LevelWarning, format, args...) }

// Errorf logs at LevelError.
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Fatalf logs at LevelFatal and terminates the process once every
// eligible sink has received the line. It does not return.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LevelFatal, format, args...) }

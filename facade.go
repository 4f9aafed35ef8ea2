package logtee

// Facade helpers over a process-wide default Logger, created lazily on
// first use. Usage:
//
//	logtee.TeePath("", logtee.LevelInfo)
//	logtee.Infof("%s, %s!\n", "Hello", "World")

import (
	"io"
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

// Default returns the process-wide default Logger, creating it on first
// use. The Logger itself is not safe for concurrent use; only the handle
// is atomic.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l := New()
	if defaultLogger.CompareAndSwap(nil, l) {
		return l
	}
	return defaultLogger.Load()
}

// SetDefault replaces the default Logger.
func SetDefault(l *Logger) { defaultLogger.Store(l) }

// Logf dispatches through the default Logger.
func Logf(level Level, format string, args ...any) { Default().Logf(level, format, args...) }

func Debugf(format string, args ...any)   { Default().Debugf(format, args...) }
func Infof(format string, args ...any)    { Default().Infof(format, args...) }
func Warningf(format string, args ...any) { Default().Warningf(format, args...) }
func Errorf(format string, args ...any)   { Default().Errorf(format, args...) }

// Fatalf logs through the default Logger and terminates the process.
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }

func PDebugf(err error, format string, args ...any)   { Default().PDebugf(err, format, args...) }
func PInfof(err error, format string, args ...any)    { Default().PInfof(err, format, args...) }
func PWarningf(err error, format string, args ...any) { Default().PWarningf(err, format, args...) }
func PErrorf(err error, format string, args ...any)   { Default().PErrorf(err, format, args...) }
func PFatalf(err error, format string, args ...any)   { Default().PFatalf(err, format, args...) }

// TeeWriter admits a sink on the default Logger.
func TeeWriter(w io.Writer, min Level) { Default().TeeWriter(w, min) }

// TeeFile admits a file sink on the default Logger.
func TeeFile(f *os.File, min Level) { Default().TeeFile(f, min) }

// TeePath admits a sink by path on the default Logger.
func TeePath(path string, min Level) { Default().TeePath(path, min) }

// TeeRotating admits a rotating file sink on the default Logger.
func TeeRotating(path string, maxSizeMB int, min Level) { Default().TeeRotating(path, maxSizeMB, min) }

// AddLevel extends the default Logger's level registry.
func AddLevel(priority Level, prefix string) { Default().AddLevel(priority, prefix) }

// SetPrefixFunc installs the default Logger's per-line prefix callback.
func SetPrefixFunc(fn PrefixFunc) { Default().SetPrefixFunc(fn) }

// Reset restores the default Logger to no sinks, built-in levels and no
// callback.
func Reset() { Default().Reset() }

// Close tears the default Logger down.
func Close() { Default().Close() }

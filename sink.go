package logtee

import (
	"io"
	"os"
)

// sink is one output slot. An empty slot has a nil writer and is reused
// by the next admission before the list grows.
type sink struct {
	w     io.Writer
	min   Level
	owned bool
}

// flusher matches buffered sinks (bufio.Writer and friends). Go writers
// are otherwise unbuffered, so a write is already on its way out.
type flusher interface{ Flush() error }

// TeeWriter admits an already-open byte stream with its own minimum
// level. A nil writer is a no-op. Every sink except os.Stdout and
// os.Stderr is owned: Reset and Close will close it when it implements
// io.Closer.
func (l *Logger) TeeWriter(w io.Writer, min Level) {
	if w == nil {
		return
	}
	l.addSink(w, min, w != os.Stdout && w != os.Stderr)
}

// TeeFile admits an open file. Owned files are positioned at their end
// (append semantics) and marked close-on-exec before admission; the two
// standard streams skip that step.
func (l *Logger) TeeFile(f *os.File, min Level) {
	if f == nil {
		return
	}
	owned := f != os.Stdout && f != os.Stderr
	if owned {
		_, _ = f.Seek(0, io.SeekEnd)
		setCloseOnExec(f)
	}
	l.addSink(f, min, owned)
}

// TeePath admits a sink by path: "" maps to os.Stderr, "-" to os.Stdout,
// anything else is opened for append (created if absent). An unopenable
// path is reported as a Warning through the logger itself and nothing is
// admitted.
func (l *Logger) TeePath(path string, min Level) {
	switch path {
	case "":
		l.TeeFile(os.Stderr, min)
	case "-":
		l.TeeFile(os.Stdout, min)
	default:
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			l.Warningf("logtee: can't open %q for logging: %v\n", path, err)
			return
		}
		l.TeeFile(f, min)
	}
}

// addSink fills the first empty slot, growing the list only when none is
// free.
func (l *Logger) addSink(w io.Writer, min Level, owned bool) {
	s := sink{w: w, min: min, owned: owned}
	for i := range l.sinks {
		if l.sinks[i].w == nil {
			l.sinks[i] = s
			return
		}
	}
	l.sinks = append(l.sinks, s)
}

func (l *Logger) hasActiveSink() bool {
	for i := range l.sinks {
		if l.sinks[i].w != nil {
			return true
		}
	}
	return false
}

// dispatch writes the composed line to every eligible sink. Sinks are
// independent: write and flush results are ignored, a broken sink never
// affects the others.
func (l *Logger) dispatch(level Level, line []byte) {
	for i := range l.sinks {
		s := &l.sinks[i]
		if s.w == nil || s.min > level {
			continue
		}
		_, _ = s.w.Write(line)
		if f, ok := s.w.(flusher); ok {
			_ = f.Flush()
		}
	}
}

// closeSinks closes owned closers and empties every slot in place; the
// backing array is kept for reuse. Close errors are ignored.
func (l *Logger) closeSinks() {
	for i := range l.sinks {
		s := &l.sinks[i]
		if s.w != nil && s.owned {
			if c, ok := s.w.(io.Closer); ok {
				_ = c.Close()
			}
		}
		*s = sink{}
	}
}

package logtee

// perror(3)-like wrappers: each appends ": <err>\n" to the formatted
// message, so
//
//	l.PErrorf(err, "read(2)")
//
// produces the same line as
//
//	l.Errorf("read(2): %v\n", err)
//
// They are pure composition over Logf.

// PDebugf logs at LevelDebug with the error description appended.
func (l *Logger) PDebugf(err error, format string, args ...any) {
	l.Logf(LevelDebug, format+": %v\n", append(args, err)...)
}

// PInfof logs at LevelInfo with the error description appended.
func (l *Logger) PInfof(err error, format string, args ...any) {
	l.Logf(LevelInfo, format+": %v\n", append(args, err)...)
}

// PWarningf logs at LevelWarning with the error description appended.
func (l *Logger) PWarningf(err error, format string, args ...any) {
	l.Logf(LevelWarning, format+": %v\n", append(args, err)...)
}

// PErrorf logs at LevelError with the error description appended.
func (l *Logger) PErrorf(err error, format string, args ...any) {
	l.Logf(LevelError, format+": %v\n", append(args, err)...)
}

// PFatalf logs at LevelFatal with the error description appended, then
// terminates the process. It does not return.
func (l *Logger) PFatalf(err error, format string, args ...any) {
	l.Logf(LevelFatal, format+": %v\n", append(args, err)...)
}

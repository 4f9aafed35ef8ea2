package logtee

import lumberjack "gopkg.in/natefinch/lumberjack.v2"

// TeeRotating admits an owned, size-rotated file sink. Rotation is
// lumberjack's; the output stays plain lines. The "" and "-" path
// mappings behave as in TeePath.
func (l *Logger) TeeRotating(path string, maxSizeMB int, min Level) {
	if path == "" || path == "-" {
		l.TeePath(path, min)
		return
	}
	l.TeeWriter(&lumberjack.Logger{Filename: path, MaxSize: maxSizeMB}, min)
}

package logtee

// Level is an integer priority used both for sink filtering and for
// prefix lookup. Higher means more severe; negative levels are valid.
type Level int

// Built-in levels. Prefixes are reminiscent of Xorg logs.
const (
	LevelDebug   Level = -1
	LevelInfo    Level = 0
	LevelWarning Level = 1
	LevelError   Level = 2
	LevelFatal   Level = 3
)

type levelEntry struct {
	priority Level
	prefix   string
}

var builtinLevels = [...]levelEntry{
	{LevelDebug, "(DD): "},
	{LevelInfo, "(II): "},
	{LevelWarning, "(WW): "},
	{LevelError, "(EE): "},
	{LevelFatal, "(FF): "},
}

// builtinTable returns a fresh copy so AddLevel never aliases the
// built-in array across Reset.
func builtinTable() []levelEntry {
	t := make([]levelEntry, len(builtinLevels))
	copy(t, builtinLevels[:])
	return t
}

// AddLevel registers prefix as the annotation for priority. Registering
// the same priority again is allowed; lookup resolves to the most recent
// registration. An empty prefix is rejected and reported as a Warning
// through the logger itself, leaving the registry untouched.
func (l *Logger) AddLevel(priority Level, prefix string) {
	if prefix == "" {
		l.Warningf("logtee: AddLevel: empty prefix\n")
		return
	}
	l.levels = append(l.levels, levelEntry{priority: priority, prefix: prefix})
}

// prefixFor scans the whole registry; the last matching entry wins.
// Unknown priorities render as an empty prefix.
func (l *Logger) prefixFor(priority Level) string {
	p := ""
	for i := range l.levels {
		if l.levels[i].priority == priority {
			p = l.levels[i].prefix
		}
	}
	return p
}

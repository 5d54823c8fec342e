package logger

// Level represents the log level.
type Level int

const (
	// LevelDebug represents debug-level logging (most verbose).
	LevelDebug Level = iota

	// LevelInfo represents info-level logging (standard verbosity).
	LevelInfo

	// LevelError represents error-level logging (least verbose).
	LevelError
)

// String returns the upper-case level name used in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// LevelFromVerbosity maps the number of -d flags to a level.
// 0 logs errors only, 1 adds info, 2 or more adds debug.
func LevelFromVerbosity(count int) Level {
	switch {
	case count >= 2:
		return LevelDebug
	case count == 1:
		return LevelInfo
	default:
		return LevelError
	}
}

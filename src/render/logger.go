package render

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel represents severity. Values match zerolog's levels.
type LogLevel zerolog.Level

const (
	LevelDebug = LogLevel(zerolog.DebugLevel)
	LevelInfo  = LogLevel(zerolog.InfoLevel)
	LevelWarn  = LogLevel(zerolog.WarnLevel)
	LevelError = LogLevel(zerolog.ErrorLevel)
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var baseLogger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006/01/02 15:04:05.000000"})
}

// SetLogOutput redirects log lines (tests pass a buffer), keeping the current level.
func SetLogOutput(w io.Writer) {
	level := zerolog.InfoLevel
	if cur := baseLogger.Load(); cur != nil {
		level = cur.GetLevel()
	}
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	baseLogger.Store(&l)
}

// SetLogLevel parses and sets global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	lg := baseLogger.Load().Level(zerolog.Level(l))
	baseLogger.Store(&lg)
}

// ValidLogLevel reports whether s names a level SetLogLevel understands.
func ValidLogLevel(s string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel { return LogLevel(baseLogger.Load().GetLevel()) }

func logf(l LogLevel, format string, args ...interface{}) {
	lg := baseLogger.Load()
	var ev *zerolog.Event
	switch l {
	case LevelDebug:
		ev = lg.Debug()
	case LevelWarn:
		ev = lg.Warn()
	case LevelError:
		ev = lg.Error()
	default:
		ev = lg.Info()
	}
	// plain message when there are no args so literal % survives
	if len(args) == 0 {
		ev.Msg(format)
		return
	}
	ev.Msgf(format, args...)
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}

package charts

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	atomic.StoreInt32(&currentLevel, int32(l))
}

// ValidLogLevel reports whether s names a known level.
func ValidLogLevel(s string) bool {
	_, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return getLevel() }

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// logf writes one line: "[LEVEL] [scope] message". scope may be empty.
func logf(l LogLevel, scope, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	msg := format
	// Tooltips carry literal '%' signs; only format when there are args.
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if scope != "" {
		msg = "[" + scope + "] " + msg
	}
	baseLogger.Printf("[%s] %s", strings.ToUpper(l.String()), msg)
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, "", format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, "", format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, "", format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, "", format, a...) }

// TimeTrack logs how long a phase took at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}

// chartLog scopes log lines to one render: "[radar radarChart] ...".
type chartLog struct {
	kind Kind
	key  string
}

func (c chartLog) scope() string {
	if c.key == "" {
		return string(c.kind)
	}
	return string(c.kind) + " " + c.key
}

func (c chartLog) debugf(format string, a ...interface{}) { logf(LevelDebug, c.scope(), format, a...) }
func (c chartLog) warnf(format string, a ...interface{})  { logf(LevelWarn, c.scope(), format, a...) }

// took logs the render duration at debug level.
func (c chartLog) took(start time.Time) {
	c.debugf("rendered in %s", time.Since(start))
}

package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

func init() {
	defaultLogger = New(os.Stdout, "", LogLevelInfo)
}

type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

func (level LogLevel) String() string {
	switch level {
	case LogLevelError:
		return "error"
	case LogLevelWarn:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	case LogLevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a log level string into a LogLevel.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLogLevel(level string) (LogLevel, error) {
	switch level {
	case "error":
		return LogLevelError, nil
	case "warn":
		return LogLevelWarn, nil
	case "info":
		return LogLevelInfo, nil
	case "debug":
		return LogLevelDebug, nil
	case "trace":
		return LogLevelTrace, nil
	default:
		return LogLevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// charmLevel maps a LogLevel onto the backend's levels. Trace has no
// backend equivalent, so it is emitted at debug level behind our own gate.
func (level LogLevel) charmLevel() charmlog.Level {
	switch level {
	case LogLevelError:
		return charmlog.ErrorLevel
	case LogLevelWarn:
		return charmlog.WarnLevel
	case LogLevelInfo:
		return charmlog.InfoLevel
	default:
		return charmlog.DebugLevel
	}
}

type Logger struct {
	logger *charmlog.Logger
	level  LogLevel
}

func New(out io.Writer, prefix string, level LogLevel) *Logger {
	l := charmlog.NewWithOptions(out, charmlog.Options{
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
	})
	l.SetLevel(level.charmLevel())
	return &Logger{
		logger: l,
		level:  level,
	}
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	l.logger.SetLevel(level.charmLevel())
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level > l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch level {
	case LogLevelError:
		l.logger.Error(msg)
	case LogLevelWarn:
		l.logger.Warn(msg)
	case LogLevelInfo:
		l.logger.Info(msg)
	case LogLevelDebug:
		l.logger.Debug(msg)
	default:
		l.logger.Debug(msg, "level", level.String())
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LogLevelTrace, format, args...)
}

// SetDefaultLogger replaces the logger used by the package level functions.
func SetDefaultLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = logger
}

func SetLevel(level LogLevel) {
	logger := current()
	logger.SetLevel(level)
	logger.Info("Log level set to %s", level)
}

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func Info(format string, args ...interface{}) {
	current().Info(format, args...)
}

func Error(format string, args ...interface{}) {
	current().Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	current().Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	current().Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	current().Trace(format, args...)
}

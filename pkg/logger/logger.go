// Package logger provides structured key=value logging for anot.
//
// Log output goes to a file only. Stdout belongs to the agent hook
// protocol and must never carry log lines.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

const (
	// LogFilePermissions defines the file permissions for log files (owner read/write only).
	LogFilePermissions = 0o600

	logDirPermissions = 0o700
	timestampLayout   = "2006-01-02T15:04:05-07:00"
)

// FileLogger implements Logger with file output only.
type FileLogger struct {
	mu      *sync.Mutex
	out     io.Writer
	baseKVs []any
	level   Level
}

// NewFileLogger creates a FileLogger appending to filePath, creating the
// parent directory when needed.
func NewFileLogger(filePath string, level Level) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), logDirPermissions); err != nil {
		return nil, errors.Wrap(err, "failed to create log directory")
	}

	//nolint:gosec // File path is controlled and within user config directory
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}

	return NewFileLoggerWithWriter(file, level), nil
}

// NewFileLoggerWithWriter creates a FileLogger with a custom writer.
func NewFileLoggerWithWriter(out io.Writer, level Level) *FileLogger {
	return &FileLogger{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Debug logs debug-level messages.
func (l *FileLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *FileLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *FileLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a logger sharing the output of l whose lines also carry
// keysAndValues.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *FileLogger) With(keysAndValues ...any) Logger {
	return &FileLogger{
		mu:      l.mu,
		out:     l.out,
		baseKVs: slices.Concat(l.baseKVs, keysAndValues),
		level:   l.level,
	}
}

// Close closes the underlying writer when it is closable.
func (l *FileLogger) Close() error {
	if c, ok := l.out.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// log writes one line: "<time> <LEVEL> <msg> k=v ...". A trailing key
// without a value is dropped.
func (l *FileLogger) log(level Level, msg string, keysAndValues ...any) {
	if level < l.level || l.out == nil {
		return
	}

	line := fmt.Appendf(nil, "%s %s %s", time.Now().Format(timestampLayout), level, msg)
	line = appendPairs(line, l.baseKVs)
	line = appendPairs(line, keysAndValues)
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = l.out.Write(line)
}

// appendPairs appends " key=value" for each pair, quoting values that are
// empty or would be ambiguous unquoted.
func appendPairs(line []byte, kvs []any) []byte {
	for i := 0; i+1 < len(kvs); i += 2 {
		line = fmt.Appendf(line, " %v=", kvs[i])

		value := fmt.Sprint(kvs[i+1])
		if value == "" || strings.ContainsAny(value, " \t\n\r\"=") {
			line = strconv.AppendQuote(line, value)
		} else {
			line = append(line, value...)
		}
	}

	return line
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (n *NoOpLogger) With(...any) Logger {
	return n
}

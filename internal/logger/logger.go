// Package logger builds the CLI's structured logger: zap underneath, exposed
// as a logr.Logger so library code only depends on the logr interface.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	CommandKey   = "command"
)

// Logger pairs the logr.Logger handed to application code with the zap
// logger behind it, which is needed to flush.
type Logger struct {
	logr.Logger
	zap *zap.Logger
}

// ParseLevel maps a level name (debug, info, warn, error) to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New returns a JSON logger writing to w at the given minimum level.
// Debug level also enables logr V(1) messages.
func New(w io.Writer, level zapcore.Level) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return &Logger{Logger: zapr.NewLogger(zl), zap: zl}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: logr.Discard(), zap: zap.NewNop()}
}

// WithLogger returns a context carrying log.
func WithLogger(ctx context.Context, log *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if log, ok := ctx.Value(loggerContextKey{}).(*Logger); ok {
			return log
		}
	}
	return Discard()
}

// Sync flushes buffered log entries. Errors from syncing a terminal or pipe
// are ignored.
func (l *Logger) Sync() {
	if l == nil || l.zap == nil {
		return
	}
	if err := l.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "WARNING: failed to sync logger: %v\n", err)
	}
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	// Windows consoles report an invalid handle rather than an errno.
	return strings.Contains(err.Error(), "The handle is invalid")
}

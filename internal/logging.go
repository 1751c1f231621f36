package internal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log output goes to stderr: stdout carries the MCP protocol when serving.
var (
	level      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger     *zap.SugaredLogger
	loggerOnce sync.Once
)

// SetLevel sets the level of the global logger. Accepts debug, info, warn
// and error.
func SetLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "info", "":
		level.SetLevel(zapcore.InfoLevel)
	case "warn":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	default:
		return fmt.Errorf("invalid log level: %s", name)
	}
	return nil
}

// Logger returns the process-wide logger.
func Logger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		cfg := zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			CallerKey:      "C",
			MessageKey:     "M",
			StacktraceKey:  "S",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level)
		logger = zap.New(core, zap.AddCaller()).Named("mailschema").Sugar()
	})
	return logger
}

func Logf(format string, args ...any) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Infof(format, args...)
}

func Errorf(format string, args ...any) {
	Logger().WithOptions(zap.AddCallerSkip(1)).Errorf(format, args...)
}

type loggerKey struct{}

// With returns a copy of ctx carrying l.
func With(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From returns the logger stored in ctx, or the global logger.
func From(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return Logger()
}

package logger

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the logging interface used across the registry packages. It is satisfied by a
// zap.SugaredLogger wrapper.
//
// Loggers should be injected and Named by the component using them, e.g. lggr.Named("endpoint").
//
// Levels
//   - Error: registry construction failed and the process cannot continue.
//   - Warn: expected configuration is absent and the result is degraded, e.g. a provider
//     credential is not set and the chain registers with fewer RPC endpoints.
//   - Info: high level progress, e.g. the registry was built with N chains.
//   - Debug: per chain detail, useful when diagnosing why a chain did or did not register.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string
	// Named returns a child logger with name appended to the current name.
	Named(name string) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)

	Debugf(format string, values ...any)
	Infof(format string, values ...any)
	Warnf(format string, values ...any)
	Errorf(format string, values ...any)

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

// Config holds the runtime logger configuration.
type Config struct {
	Level zapcore.Level
}

var defaultConfig Config

// New returns a new production Logger at info level.
func New() (Logger, error) { return defaultConfig.New() }

// NewAtLevel returns a new production Logger for a textual level such as "debug" or "warn".
func NewAtLevel(level string) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := Config{Level: lvl}

	return cfg.New()
}

// New returns a new Logger for Config.
func (c *Config) New() (Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level.SetLevel(c.Level)

	core, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// Test returns a Logger which writes to tb at debug level.
func Test(tb testing.TB) Logger {
	tb.Helper()

	return &logger{zaptest.NewLogger(tb).Sugar()}
}

// TestObserved returns a test Logger for tb together with the entries logged at or above lvl, so
// tests can assert on the warnings a component emitted.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()

	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return &logger{zaptest.NewLogger(tb, zaptest.WrapOptions(observe)).Sugar()}, logs
}

// Nop returns a Logger which discards everything.
func Nop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

// Package logger wraps logr/zap into the three-level (Info/Debug/Trace)
// convention used across this codebase family, with Trace reserved for
// the kind of per-decision detail a constraint solver produces (which
// claim set was tried, why an option was rejected) that would be noise
// at Info or Debug level.
package logger

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log wraps a named logr.Logger.
type Log struct {
	logr.Logger
}

// New builds a logger writing to logDir/<name>.log when logDir is
// non-empty, or to stderr otherwise. production selects zap's
// production encoder (JSON, no color) over its human-friendly one.
func New(name, logDir string, production bool) (*Log, error) {
	zc := zap.NewDevelopmentConfig()
	if production {
		zc = zap.NewProductionConfig()
	} else {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.DisableCaller = true
	zc.DisableStacktrace = true

	if logDir != "" {
		if err := os.MkdirAll(logDir, fs.ModeDir); err != nil {
			return nil, err
		}
		zc.OutputPaths = []string{filepath.Join(logDir, fmt.Sprintf("%s.log", name))}
	}

	z, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return &Log{Logger: zapr.NewLogger(z).WithName(name)}, nil
}

// NewSimple builds a logger against the global zap logger, skipping
// the config/build dance in New. Handy for demo binaries and tests.
func NewSimple(name string) *Log {
	return &Log{Logger: zapr.NewLogger(zap.L().Named(name))}
}

// NoOp returns a logger that discards everything, used as the default
// when a caller does not wire one in explicitly.
func NoOp() *Log {
	return &Log{Logger: logr.Discard()}
}

// Named returns a sub-logger scoped under the given name.
func (l *Log) Named(name string) *Log {
	return &Log{Logger: l.WithName(name)}
}

// Info logs at V(0): user-facing, low-volume events.
func (l *Log) Info(msg string, args ...interface{}) {
	l.Logger.V(0).WithValues(args...).Info(msg)
}

// Debug logs at V(1): developer-facing diagnostics.
func (l *Log) Debug(msg string, args ...interface{}) {
	l.Logger.V(1).WithValues(args...).Info(msg)
}

// Trace logs at V(2): per-decision detail, e.g. why a claim set or
// credential-set option was rejected during evaluation.
func (l *Log) Trace(msg string, args ...interface{}) {
	l.Logger.V(2).WithValues(args...).Info(msg)
}

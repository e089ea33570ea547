// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package logging is a thin leveled wrapper over charmbracelet/log.
// Components log through the package-level functions; binaries install
// a configured logger with SetDefault at startup.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"

	"grimm.is/quizdeck/internal/errors"
)

// Level is the minimum severity a logger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
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

// ParseLevel maps a config string onto a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, errors.Errorf(errors.KindValidation, "unknown log level %q", s)
	}
}

// Config controls where and how a Logger writes.
type Config struct {
	Output io.Writer
	Level  Level
	JSON   bool
}

// DefaultConfig is stderr, info, human-readable text.
func DefaultConfig() Config {
	return Config{
		Output: os.Stderr,
		Level:  LevelInfo,
	}
}

// Logger emits leveled, structured (key-value) log lines.
type Logger struct {
	cl *charmlog.Logger
}

// New builds a Logger from cfg. A nil Output falls back to stderr.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := charmlog.Options{
		ReportTimestamp: true,
		Level:           charmLevel(cfg.Level),
	}
	if cfg.JSON {
		opts.Formatter = charmlog.JSONFormatter
	}

	return &Logger{cl: charmlog.NewWithOptions(out, opts)}
}

func charmLevel(l Level) charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.cl.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.cl.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.cl.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.cl.Error(msg, args...) }

// Printf logs a formatted line at info level. It exists so adapters can hand
// the Logger to libraries that expect a printf-shaped sink.
func (l *Logger) Printf(format string, args ...any) {
	l.cl.Info(fmt.Sprintf(format, args...))
}

var (
	defaultMu sync.RWMutex
	defaultL  = New(DefaultConfig())
)

// SetDefault installs the logger used by the package-level functions.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultL = l
	defaultMu.Unlock()
}

// Default returns the current package-level logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultL
}

func Debug(msg string, args ...any) { Default().Debug(msg, args...) }
func Info(msg string, args ...any)  { Default().Info(msg, args...) }
func Warn(msg string, args ...any)  { Default().Warn(msg, args...) }
func Error(msg string, args ...any) { Default().Error(msg, args...) }

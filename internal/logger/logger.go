// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package logger writes structured diagnostics to a rotating file under the
// XDG state directory. User-facing output never goes through this package.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "wicat"

// discard is used until InitLogger runs, so packages can log from tests
// without touching the user's state directory.
var defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// LogFilePath determines the path for the application log file based on the XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, appName, "app.log"), nil
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger configures file logging at the given level, unless
// WICAT_LOG_LEVEL names another one. When WICAT_DEBUG=1
// the log is mirrored to stderr. Failures fall back to stderr-only logging so
// the CLI keeps working on read-only homes.
func InitLogger(level string) {
	if v := os.Getenv("WICAT_LOG_LEVEL"); v != "" {
		level = v
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var writers []io.Writer
	logFilePath, err := LogFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
	} else if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log directory: %v. File logging disabled.\n", err)
	} else {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logFilePath,
			MaxSize:    5, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
		})
	}

	if os.Getenv("WICAT_DEBUG") == "1" || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	defaultLogger = slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	Debug("Logging configured.", "file", logFilePath, "level", opts.Level)
}

// SetLogger replaces the logger, mostly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config resolves where wicat keeps its files and reads the optional
// settings file that tunes the shell, clipboard, and log level.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DirEnv overrides the configuration directory.
	DirEnv = "WICAT_CONFIG_DIR"

	defaultDirName   = ".wicat-cli"
	dockerFileName   = "docker-commands.json"
	stacksFileName   = "go-commands.json"
	settingsFileName = "config.yaml"
)

// Settings represents the optional config.yaml in the configuration directory.
type Settings struct {
	// Shell runs stored commands (defaults to $SHELL, then /bin/sh)
	Shell string `yaml:"shell,omitempty"`

	// Clipboard toggles clipboard copies by default; nil means enabled
	Clipboard *bool `yaml:"clipboard,omitempty"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level,omitempty"`
}

// SettingKeys lists the keys accepted by Set.
var SettingKeys = []string{"shell", "clipboard", "log_level"}

// ClipboardEnabled reports whether clipboard copies are on by default.
func (s Settings) ClipboardEnabled() bool {
	return s.Clipboard == nil || *s.Clipboard
}

// ResolvedShell returns the shell used for subprocesses.
func (s Settings) ResolvedShell() string {
	if s.Shell != "" {
		return s.Shell
	}
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// Set updates one setting from its textual form.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "shell":
		s.Shell = strings.TrimSpace(value)
	case "clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("clipboard must be true or false: %w", err)
		}
		s.Clipboard = &b
	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			s.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("log_level must be one of debug, info, warn, error")
		}
	default:
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(SettingKeys, ", "))
	}
	return nil
}

// ResolveDir picks the configuration directory: an explicit override, then
// $WICAT_CONFIG_DIR, then ~/.wicat-cli.
func ResolveDir(override string) (string, error) {
	if override != "" {
		return ResolvePath(override)
	}
	if env := os.Getenv(DirEnv); env != "" {
		return ResolvePath(env)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, defaultDirName), nil
}

// DockerFile is the docker command store inside dir.
func DockerFile(dir string) string { return filepath.Join(dir, dockerFileName) }

// StacksFile is the stack store inside dir.
func StacksFile(dir string) string { return filepath.Join(dir, stacksFileName) }

// SettingsFile is the settings file inside dir.
func SettingsFile(dir string) string { return filepath.Join(dir, settingsFileName) }

func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil { // rwxr-x---
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return nil
}

// LoadSettings reads config.yaml from dir. A missing file yields defaults.
func LoadSettings(dir string) (Settings, error) {
	path := SettingsFile(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}

func SaveSettings(dir string, s Settings) error {
	if err := EnsureDir(dir); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}
	path := SettingsFile(dir)
	if err := os.WriteFile(path, data, 0640); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

// ResolvePath expands "~" and "~/..." to the home directory and makes the
// result absolute. "~name" is an ordinary relative path.
func ResolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
		}
		path = filepath.Join(homeDir, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, fmt.Errorf("could not resolve path '%s': %w", path, err)
	}
	return abs, nil
}

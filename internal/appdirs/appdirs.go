// Package appdirs resolves the per-user configuration directory for an
// identity triple (qualifier, organization, application) following
// each platform's convention.
package appdirs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrApplicationEmpty is returned when the triple names no application.
// Qualifier and organization may be empty; they only shorten the path.
var ErrApplicationEmpty = errors.New("application must not be empty")

// platformDir holds platform-detection functions that can be
// overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// ConfigDir returns the platform-specific configuration directory for
// the identity triple.
//
// Linux:   $XDG_CONFIG_HOME/<app> (fallback ~/.config/<app>), app lowercased
// macOS:   ~/Library/Application Support/<qualifier>.<organization>.<app>
// Windows: %APPDATA%\<organization>\<app>\config
func ConfigDir(qualifier, organization, application string) (string, error) {
	if application == "" {
		return "", ErrApplicationEmpty
	}

	switch runtime.GOOS {
	case "darwin":
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, bundleID(qualifier, organization, application)), nil
	case "windows":
		// os.UserConfigDir returns %APPDATA%.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		parts := []string{dir}
		if organization != "" {
			parts = append(parts, organization)
		}
		parts = append(parts, application, "config")
		return filepath.Join(parts...), nil
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, xdgName(application)), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", xdgName(application)), nil
	}
}

// bundleID joins the non-empty triple parts into a reverse-domain
// bundle identifier with spaces removed.
func bundleID(qualifier, organization, application string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{qualifier, organization, application} {
		part = strings.ReplaceAll(part, " ", "")
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ".")
}

// xdgName lowercases the application name and strips spaces for use as
// an XDG directory component.
func xdgName(application string) string {
	return strings.ToLower(strings.ReplaceAll(application, " ", ""))
}

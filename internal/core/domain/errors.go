package domain

import "go.trai.ch/zerr"

var (
	// ErrTabStripNotFound is returned when neither tab strip layout resolves in a window.
	ErrTabStripNotFound = zerr.New("tab strip not found")

	// ErrNodeDetached is returned when activating a node that is no longer part of the tree.
	ErrNodeDetached = zerr.New("accessibility node is detached")

	// ErrNotActivatable is returned when an entry carries no activation action.
	ErrNotActivatable = zerr.New("entry cannot be activated")

	// ErrEntryNotFound is returned when an activation refers to a tab that is not in the current snapshot.
	ErrEntryNotFound = zerr.New("tab entry not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds values that cannot be used.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidDuration is returned when a duration field cannot be parsed.
	ErrInvalidDuration = zerr.New("invalid duration, expected a value like '90s' or '10m'")

	// ErrDesktopNotConfigured is returned when no desktop snapshot is available to back the accessibility tree.
	ErrDesktopNotConfigured = zerr.New("no desktop snapshot configured, set 'desktop' in edgetabs.yaml or EDGETABS_DESKTOP")

	// ErrDesktopReadFailed is returned when the desktop snapshot cannot be read.
	ErrDesktopReadFailed = zerr.New("failed to read desktop snapshot")

	// ErrDesktopParseFailed is returned when the desktop snapshot cannot be parsed.
	ErrDesktopParseFailed = zerr.New("failed to parse desktop snapshot")

	// ErrDuplicateWindow is returned when two windows of a desktop snapshot share a handle.
	ErrDuplicateWindow = zerr.New("duplicate window handle")

	// ErrWatcherFailed is returned when the desktop file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch desktop snapshot")

	// ErrNotATerminal is returned when the interactive picker is started without a terminal.
	ErrNotATerminal = zerr.New("interactive picker requires a terminal")

	// ErrHostIO is returned when the host connection fails.
	ErrHostIO = zerr.New("host connection failed")
)

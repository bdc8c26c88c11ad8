// Package detector picks how tab listings are presented.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how a tab listing is rendered.
type OutputMode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto OutputMode = iota
	// ModePicker runs the interactive picker.
	ModePicker
	// ModeLinear prints one tab per line.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePicker:
		return "picker"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Terminal reports whether the given file descriptor is a terminal.
type Terminal func(fd int) bool

// DetectEnvironment returns ModePicker when both standard input and standard output
// are terminals and CI is not set, ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal, os.Getenv("CI"))
}

func detect(isTerminal Terminal, ci string) OutputMode {
	if ci == "true" || ci == "1" {
		return ModeLinear
	}
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return ModeLinear
	}
	return ModePicker
}

// ResolveMode applies the user's --output flag to the detected mode.
// Unknown values fall back to the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "picker", "tui":
		return ModePicker
	case "linear", "plain":
		return ModeLinear
	default:
		return detected
	}
}

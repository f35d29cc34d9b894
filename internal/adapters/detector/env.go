// Package detector decides how colorful the CLI output should be.
package detector

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/wsdeps/internal/ui/output"
	"golang.org/x/term"
)

// ColorMode is the user-facing color setting.
type ColorMode int

const (
	// ColorAuto colors output written to a terminal or a CI log.
	ColorAuto ColorMode = iota
	// ColorAlways forces colors.
	ColorAlways
	// ColorNever disables colors.
	ColorNever
)

// Environment describes where output is going.
type Environment struct {
	TTY     bool
	CI      bool
	NoColor bool
}

// DetectEnvironment inspects w and the process environment.
// Only an *os.File attached to a terminal counts as a TTY.
func DetectEnvironment(w io.Writer) Environment {
	env := Environment{NoColor: output.NoColor()}

	if f, ok := w.(*os.File); ok {
		env.TTY = term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
	}

	ci := os.Getenv("CI")
	env.CI = ci == "true" || ci == "1"

	return env
}

// ResolveMode applies the --color flag value.
// Unknown values fall back to ColorAuto.
func ResolveMode(userFlag string) ColorMode {
	switch userFlag {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// Profile picks the termenv profile for mode in env.
func Profile(mode ColorMode, env Environment) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.ANSI
	}

	switch {
	case env.NoColor:
		return termenv.Ascii
	case env.TTY:
		return output.ColorProfile()
	case env.CI:
		return output.ColorProfileANSI()
	default:
		return termenv.Ascii
	}
}

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	forceColor   bool
	disableColor bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetColorForcing overrides terminal detection for styled output.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	applyProfile()
}

// SetOutput redirects OK/Fail/Panel output.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorEnabled() bool {
	if disableColor {
		return false
	}
	return forceColor || isTTY()
}

func applyProfile() {
	if colorEnabled() {
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

func OK(msg string)   { fmt.Fprintln(stdout, Current().Success.Render(Current().SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, Current().Error.Render(Current().SymCross+" "+msg)) }

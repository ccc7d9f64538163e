package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// emitWarning writes a warning to stderr unless quiet.
func emitWarning(globals *Globals, msg string) {
	if globals.Quiet {
		return
	}
	if globals.Format == "ndjson" {
		globals.Logger.Warn(msg)
		return
	}
	fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
}

// useStyles decides whether text output gets lipgloss styling.
func useStyles(globals *Globals) bool {
	switch globals.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := globals.Stdout.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

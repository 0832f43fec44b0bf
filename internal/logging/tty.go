package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal. Writers without an Fd method,
// such as buffers, never are.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colour should be written to w.
// NO_COLOR (https://no-color.org) and TERM=dumb turn colour off.
func SupportsColor(w io.Writer) bool {
	return supportsColor(os.LookupEnv, IsTTY(w))
}

func supportsColor(lookup func(string) (string, bool), isTTY bool) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	return isTTY
}

// ConfigureColor enables the package-wide fatih/color output used by the
// diagnostic reporter only when out supports it.
func ConfigureColor(out io.Writer) {
	color.NoColor = !SupportsColor(out)
}

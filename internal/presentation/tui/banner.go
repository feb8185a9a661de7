package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the finderctl startup banner with the version.
func PrintBanner(w io.Writer, version string) {
	p := profileFor(w)
	// Subtle gradient, teal into blue.
	lines := []struct {
		text  string
		color string
	}{
		{`   __ _           _               _   _ `, "#2dd4bf"},
		{`  / _(_)_ __   __| | ___ _ __ ___| |_| |`, "#34d399"},
		{` | |_| | '_ \ / _` + "`" + ` |/ _ \ '__/ __| __| |`, "#38bdf8"},
		{` |  _| | | | | (_| |  __/ | | (__| |_| |`, "#60a5fa"},
		{` |_| |_|_| |_|\__,_|\___|_|  \___|\__|_|`, "#818cf8"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "%s\n\n", termenv.String("  v"+strings.TrimSpace(version)).Faint())
}

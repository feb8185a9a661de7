// Package tui renders the runner's terminal output: banner, per-step status
// lines, and Markdown reports. Colors are disabled automatically when stdout
// is not a terminal.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/finderctl/pkg/domain"
)

// profileFor picks a color profile: full colors on a TTY, ASCII otherwise.
func profileFor(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ColorProfile()
	}
	return termenv.Ascii
}

// StatusHooks returns lifecycle hooks that print one line per step:
//
//	▸ venv ... ok
//	▸ sysdep ... skipped (pdftotext already installed)
//	▸ deps ... failed
func StatusHooks(w io.Writer) domain.LifecycleHooks {
	p := profileFor(w)

	ok := termenv.String("ok").Foreground(p.Color("#34d399")).String()
	failed := termenv.String("failed").Foreground(p.Color("#f87171")).String()

	return domain.LifecycleHooks{
		OnStepStart: func(_ context.Context, e *domain.StepEvent) {
			fmt.Fprintf(w, "▸ %s ... ", e.Step)
		},
		OnStepEnd: func(_ context.Context, e *domain.StepEvent) {
			if e.Err != nil {
				fmt.Fprintln(w, failed)
				return
			}
			fmt.Fprintln(w, ok)
		},
		OnStepSkip: func(_ context.Context, e *domain.StepEvent) {
			line := termenv.String(fmt.Sprintf("skipped (%s)", trimSkipReason(e.Reason))).Faint()
			fmt.Fprintln(w, line)
		},
	}
}

// trimSkipReason drops the "step skipped: " prefix the sentinel wrap adds.
func trimSkipReason(reason string) string {
	const prefix = "step skipped: "
	if len(reason) > len(prefix) && reason[:len(prefix)] == prefix {
		return reason[len(prefix):]
	}
	return reason
}

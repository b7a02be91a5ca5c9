package diag

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Tracer logs one line per message send when execution tracing is
// enabled (cmd/sol25's --trace flag). It is disabled by default; a
// nil *Tracer is valid and Tracef on it is a no-op, so the evaluator
// can hold one unconditionally instead of nil-checking a flag at every
// dispatch site.
type Tracer struct {
	out    io.Writer
	style  lipgloss.Style
	active bool
}

// NewTracer builds a Tracer writing to out. Styling (dim) is
// only applied when out is a terminal, following the same isatty gate
// the rest of the pack's CLI tooling uses before asking lipgloss to
// color anything.
func NewTracer(out io.Writer, enabled bool) *Tracer {
	t := &Tracer{out: out, active: enabled}
	if f, ok := out.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		t.style = lipgloss.NewStyle().Faint(true)
	}
	return t
}

// Tracef writes one formatted trace line, styled when attached to a
// terminal. It is a no-op when the tracer is nil or disabled, matching
// the teacher's convention of a cheap guard before any stderr write.
func (t *Tracer) Tracef(format string, args ...any) {
	if t == nil || !t.active {
		return
	}
	line := fmt.Sprintf(format, args...)
	if t.style.GetFaint() {
		line = t.style.Render(line)
	}
	fmt.Fprintln(t.out, line)
}

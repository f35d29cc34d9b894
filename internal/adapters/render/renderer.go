// Package render prints dependency graphs and check reports.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const ruleWidth = 24

// Renderer writes human and machine readable views of a graph to one output.
type Renderer struct {
	out *termenv.Output
}

// New creates a Renderer writing to out.
func New(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) color(c lipgloss.Color) termenv.Color {
	return r.out.Color(string(c))
}

func (r *Renderer) styled(s string, c lipgloss.Color) termenv.Style {
	return r.out.String(s).Foreground(r.color(c))
}

func (r *Renderer) header(title string, c lipgloss.Color) {
	r.println(r.styled(title, c).Bold().String())
	r.println(r.styled(strings.Repeat("━", ruleWidth), c).String())
	r.println("")
}

func (r *Renderer) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

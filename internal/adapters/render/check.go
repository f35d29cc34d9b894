package render

import (
	"go.trai.ch/wsdeps/internal/core/domain"
	"go.trai.ch/wsdeps/internal/ui/style"
)

// Check prints the result of a workspace check. Architecture results are only
// shown once the graph is free of cycles.
func (r *Renderer) Check(cycles []domain.Cycle, violations []domain.Violation) {
	r.println(r.styled("Checking for circular dependencies...", style.Iris).String())
	r.println("")

	if len(cycles) > 0 {
		r.println(r.styled(style.Warning+" Circular dependencies detected:", style.Red).Bold().String())
		r.println("")
		for i, cycle := range cycles {
			r.printf("  %d. %s\n", i+1, cycle)
		}
		return
	}

	r.println(r.styled(style.Check+" No circular dependencies detected", style.Green).String())
	r.println("")
	r.println(r.styled("Architecture validation:", style.Iris).String())

	if len(violations) == 0 {
		r.println("  " + r.styled(style.Check, style.Green).String() + " No cross-app dependencies")
		return
	}
	for _, v := range violations {
		r.println("  " + r.styled(style.Cross, style.Red).String() + " " + v.String())
	}
}

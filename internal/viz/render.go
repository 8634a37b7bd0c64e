package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/dynsets/internal/catalog"
	"github.com/san-kum/dynsets/internal/sets"
	"gonum.org/v1/gonum/mat"
)

const barWidth = 24

const separatorWidth = 40

// maxLiftedShown bounds how many lifted generators Lifted prints.
const maxLiftedShown = 4

func field(name string, v any) string {
	return Label.Render(name+":") + " " + Value.Render(fmt.Sprint(v))
}

// Fixture renders the model summary and every set of f.
func Fixture(f *catalog.Fixture) string {
	m := f.Model

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s (%s)", f.ID, f.Mode)))
	b.WriteString("\n")
	b.WriteString(field("kind", m.Kind()) + "  " + field("dt", m.Dt()))
	b.WriteString("\n")
	b.WriteString(field("state", m.StateDim()) + "  " + field("input", m.InputDim()) + "  " + field("output", m.OutputDim()))
	if m.Kind().IsARX() {
		b.WriteString("  " + field("history", m.History()))
	}
	b.WriteString("\n")
	if f.PTrue != nil {
		b.WriteString(field("p_true", formatVec(f.PTrue)))
		b.WriteString("\n")
	}

	blocks := []string{Zonotope("R0", f.Spec.R0)}
	if f.Spec.Decomposed() {
		blocks = append(blocks,
			Zonotope("W", f.Spec.W),
			Zonotope("V", f.Spec.V),
			Subtle.Render("U = W × V")+"\n"+Zonotope("U", f.Spec.U),
		)
	} else {
		blocks = append(blocks, Zonotope("U", f.Spec.U))
	}

	b.WriteString("\n")
	b.WriteString(strings.Join(blocks, "\n"+Separator(separatorWidth)+"\n"))
	return b.String()
}

// Zonotope renders the center, generators and interval hull of z.
func Zonotope(name string, z *sets.Zonotope) string {
	var b strings.Builder
	b.WriteString(Title.Render(name))
	b.WriteString(" ")
	b.WriteString(Subtle.Render(fmt.Sprintf("dim %d, %d generators", z.Dim(), z.NumGenerators())))
	b.WriteString("\n")
	b.WriteString(field("center", formatVec(z.Center())))
	b.WriteString("\n")

	if g := z.Generators(); g != nil {
		b.WriteString(Label.Render("generators:"))
		b.WriteString("\n")
		b.WriteString(formatMatrix(g, "  "))
		b.WriteString("\n")
	} else {
		b.WriteString(Label.Render("generators:") + " " + Subtle.Render("none (point)"))
		b.WriteString("\n")
	}

	lo, hi := z.Bounds()
	axisMin, axisMax := math.Inf(1), math.Inf(-1)
	for i := range lo {
		axisMin = math.Min(axisMin, lo[i])
		axisMax = math.Max(axisMax, hi[i])
	}
	for i := range lo {
		fmt.Fprintf(&b, "  x%-3d %s [% .4g, % .4g]\n", i, IntervalBar(lo[i], hi[i], axisMin, axisMax, barWidth), lo[i], hi[i])
	}
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Lifted renders the shape of a lifted noise trajectory and its leading
// generators.
func Lifted(name string, mz *sets.MatrixZonotope) string {
	r, c := mz.Dims()

	var b strings.Builder
	b.WriteString(Title.Render(name))
	b.WriteString(" ")
	b.WriteString(Subtle.Render(fmt.Sprintf("%dx%d, %d generators", r, c, mz.NumGenerators())))
	b.WriteString("\n")

	shown := mz.NumGenerators()
	if shown > maxLiftedShown {
		shown = maxLiftedShown
	}
	for i := 0; i < shown; i++ {
		b.WriteString(Label.Render(fmt.Sprintf("G[%d]:", i)))
		b.WriteString("\n")
		b.WriteString(formatMatrix(mz.Generator(i), "  "))
		b.WriteString("\n")
	}
	if rest := mz.NumGenerators() - shown; rest > 0 {
		b.WriteString(Subtle.Render(fmt.Sprintf("… %d more", rest)))
	}
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4g", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatMatrix(m mat.Matrix, prefix string) string {
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Prefix(prefix), mat.Squeeze()))
}

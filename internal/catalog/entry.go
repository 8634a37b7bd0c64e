package catalog

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/dynsets/internal/models"
	"github.com/san-kum/dynsets/internal/sets"
	"github.com/san-kum/dynsets/internal/uncertainty"
	"gonum.org/v1/gonum/mat"
)

// entry is the declarative description behind every built-in builder.
type entry struct {
	// pTrue is the default ground truth; nil when the model has none.
	pTrue []float64
	model func(p []float64) (*models.Model, error)

	r0 uncertainty.Params
	// u is the input set of entries without a noise decomposition.
	u uncertainty.Params
	// w and v, when set, replace u with W × V.
	w, v *uncertainty.Params
}

func (e entry) params() []uncertainty.Params {
	if e.w != nil {
		return []uncertainty.Params{e.r0, *e.w, *e.v}
	}
	return []uncertainty.Params{e.r0, e.u}
}

func (e entry) modes() []uncertainty.Mode {
	var out []uncertainty.Mode
	for _, m := range uncertainty.Modes() {
		if e.supports(m) {
			out = append(out, m)
		}
	}
	return out
}

// validate checks that every mode of every set agrees with its standard
// literal.
func (e entry) validate() error {
	if e.model == nil {
		return fmt.Errorf("entry has no model constructor")
	}
	if (e.w == nil) != (e.v == nil) {
		return fmt.Errorf("entry defines only one of W and V")
	}
	names := []string{"R0", "U"}
	if e.w != nil {
		names = []string{"R0", "W", "V"}
	}
	for i, p := range e.params() {
		if err := p.Validate(len(p.Standard.Center)); err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}
	}
	return nil
}

func (e entry) supports(m uncertainty.Mode) bool {
	for _, p := range e.params() {
		if !p.Supports(m) {
			return false
		}
	}
	return true
}

func (e entry) build(req Request) (*Fixture, error) {
	// Reject before drawing anything from the source.
	if !e.supports(req.Mode) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMode, req.Mode)
	}

	p, err := e.groundTruth(req.Params)
	if err != nil {
		return nil, err
	}
	model, err := e.model(p)
	if err != nil {
		return nil, err
	}

	f := &Fixture{Mode: req.Mode, Model: model, PTrue: p}
	if f.Spec.R0, err = generateSet("R0", req, model.StateDim(), e.r0); err != nil {
		return nil, err
	}

	if e.w == nil {
		f.Spec.U, err = generateSet("U", req, model.InputDim(), e.u)
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	if f.Spec.W, err = generateSet("W", req, len(e.w.Standard.Center), *e.w); err != nil {
		return nil, err
	}
	if f.Spec.V, err = generateSet("V", req, len(e.v.Standard.Center), *e.v); err != nil {
		return nil, err
	}
	f.Spec.U = sets.CartesianProduct(f.Spec.W, f.Spec.V)
	return f, nil
}

func (e entry) groundTruth(override []float64) ([]float64, error) {
	if override == nil {
		return cloneVec(e.pTrue), nil
	}
	if e.pTrue == nil {
		log.Warn().Int("len", len(override)).Msg("entry has no parameter vector, ignoring override")
		return nil, nil
	}
	if len(override) != len(e.pTrue) {
		return nil, fmt.Errorf("%w: parameter vector has length %d, want %d", ErrDimensionMismatch, len(override), len(e.pTrue))
	}
	return cloneVec(override), nil
}

func generateSet(name string, req Request, dim int, p uncertainty.Params) (*sets.Zonotope, error) {
	c, g, err := uncertainty.Generate(req.Mode, dim, p, req.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(c) != dim {
		return nil, fmt.Errorf("%s: %w: center length %d, want %d", name, ErrDimensionMismatch, len(c), dim)
	}
	z, err := sets.NewZonotope(c, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return z, nil
}

// std describes a set that only exists in standard mode.
func std(c []float64, g *mat.Dense) uncertainty.Params {
	return uncertainty.StandardOnly(c, g)
}

// allModes keeps the standard literal and adds diag and rand draws around the
// same center.
func allModes(c []float64, g *mat.Dense, centerScale, genScale float64) uncertainty.Params {
	p := uncertainty.StandardOnly(c, g)
	p.Diag = &uncertainty.Scaled{Center: c, CenterScale: centerScale, GenScale: genScale}
	p.Rand = &uncertainty.Scaled{Center: c, CenterScale: centerScale, GenScale: genScale}
	return p
}

// withRandLiteral replaces rand-mode draws with a literal fixture.
func withRandLiteral(p uncertainty.Params, c []float64, g *mat.Dense) uncertainty.Params {
	p.Rand = nil
	p.RandFixed = &uncertainty.Fixed{Center: c, Generators: g}
	return p
}

func ref(p uncertainty.Params) *uncertainty.Params {
	return &p
}

func zeros(n int) []float64 {
	return make([]float64, n)
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// diag returns a square matrix with the given diagonal.
func diag(vals ...float64) *mat.Dense {
	d := mat.NewDense(len(vals), len(vals), nil)
	for i, v := range vals {
		d.Set(i, i, v)
	}
	return d
}

// eye returns s·I.
func eye(n int, s float64) *mat.Dense {
	return diag(fill(n, s)...)
}

func dense(r, c int, data ...float64) *mat.Dense {
	return mat.NewDense(r, c, data)
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64(nil), v...)
}

// Package catalog maps system identifiers to fully specified fixtures: a
// discrete-time model, its uncertainty sets and an optional ground-truth
// parameter vector.
//
// Entries differ on purpose. Some decompose their input uncertainty into a
// process-noise set W and a measurement-noise set V and expose U = W × V;
// others expose a single input set U. Some define uncertainty for the
// "standard" mode only. The loader reports these differences, it does not
// normalize them.
package catalog

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/dynsets/internal/models"
	"github.com/san-kum/dynsets/internal/sets"
	"github.com/san-kum/dynsets/internal/uncertainty"
)

type ID string

const (
	ChainOfIntegrators ID = "chain_of_integrators"
	Pedestrian         ID = "pedestrian"
	PedestrianARX      ID = "pedestrianARX"
	Lorenz             ID = "lorenz"
	Lorenz2D           ID = "lorenz_2D"
	NARX               ID = "NARX"
	Square             ID = "Square"
	Bicycle            ID = "bicycle"
	BicycleHO          ID = "bicycleHO"
	CSTRDiscr          ID = "cstrDiscr"
	Tank               ID = "tank"
	Tank30             ID = "tank30"
	Tank60             ID = "tank60"

	TestSys    ID = "testSys"
	TestSys2   ID = "testSys2"
	MockSys    ID = "mockSys"
	MockSysARX ID = "mockSysARX"
	NARXEx1    ID = "NARX_ex1"
	NARXEx2    ID = "NARX_ex2"
)

// Spec bundles the uncertainty sets of a fixture. W and V are nil unless the
// entry decomposes its input uncertainty, in which case U = W × V.
type Spec struct {
	R0 *sets.Zonotope
	U  *sets.Zonotope
	W  *sets.Zonotope
	V  *sets.Zonotope
}

// Decomposed reports whether U is the product of process and measurement noise.
func (s Spec) Decomposed() bool {
	return s.W != nil && s.V != nil
}

type Fixture struct {
	ID    ID
	Mode  uncertainty.Mode
	Model *models.Model
	Spec  Spec
	// PTrue is the ground-truth parameter vector, nil when the entry has none.
	PTrue []float64
}

func (f *Fixture) validate() error {
	if d, want := f.Spec.R0.Dim(), f.Model.StateDim(); d != want {
		return fmt.Errorf("%w: R0 has dimension %d, model state dimension is %d", ErrDimensionMismatch, d, want)
	}
	if d, want := f.Spec.U.Dim(), f.Model.InputDim(); d != want {
		return fmt.Errorf("%w: U has dimension %d, model input dimension is %d", ErrDimensionMismatch, d, want)
	}
	return nil
}

// Request is what a Builder receives.
type Request struct {
	Mode   uncertainty.Mode
	Source uncertainty.Source
	// Params overrides the ground-truth parameter vector; nil keeps the default.
	Params []float64
}

type Builder func(Request) (*Fixture, error)

// Registry maps identifiers to builders. It is not modified after
// NewRegistry returns unless Register is called, and Register must not run
// concurrently with Load.
type Registry struct {
	builders map[ID]Builder
	modes    map[ID][]uncertainty.Mode
}

// NewRegistry returns a registry holding every catalog entry.
func NewRegistry() *Registry {
	r := &Registry{
		builders: make(map[ID]Builder),
		modes:    make(map[ID][]uncertainty.Mode),
	}
	for id, e := range entries() {
		if err := e.validate(); err != nil {
			panic(fmt.Sprintf("catalog: entry %s: %v", id, err))
		}
		if err := r.register(id, e.build, e.modes()); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a builder under id. modes lists the modes the builder
// supports; Load rejects any other mode before calling it. An empty list
// leaves the check to the builder.
func (r *Registry) Register(id ID, b Builder, modes ...uncertainty.Mode) error {
	return r.register(id, b, modes)
}

func (r *Registry) register(id ID, b Builder, modes []uncertainty.Mode) error {
	if _, exists := r.builders[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, id)
	}
	r.builders[id] = b
	r.modes[id] = modes
	return nil
}

func (r *Registry) Has(id ID) bool {
	_, ok := r.builders[id]
	return ok
}

// IDs returns every registered identifier in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Modes returns the modes an entry declares support for.
func (r *Registry) Modes(id ID) ([]uncertainty.Mode, error) {
	modes, ok := r.modes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, id)
	}
	return append([]uncertainty.Mode(nil), modes...), nil
}

// declares reports whether id may support mode. Builders registered without
// a mode list are assumed to support every mode.
func (r *Registry) declares(id ID, mode uncertainty.Mode) bool {
	modes := r.modes[id]
	if len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

type options struct {
	mode   uncertainty.Mode
	src    uncertainty.Source
	params []float64
}

type Option func(*options)

// WithMode selects the uncertainty generation mode. The default is standard.
func WithMode(m uncertainty.Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithSource supplies the random source used by the diag and rand modes.
func WithSource(src uncertainty.Source) Option {
	return func(o *options) { o.src = src }
}

// WithSeed is WithSource with a math/rand source seeded by seed.
func WithSeed(seed int64) Option {
	return WithSource(rand.New(rand.NewSource(seed)))
}

// WithParams overrides the ground-truth parameter vector of entries that
// have one.
func WithParams(p []float64) Option {
	return func(o *options) { o.params = append([]float64(nil), p...) }
}

// Load builds the fixture registered under id. On failure it returns a
// *LoadError and no fixture.
func (r *Registry) Load(id ID, opts ...Option) (*Fixture, error) {
	o := options{mode: uncertainty.Standard}
	for _, opt := range opts {
		opt(&o)
	}

	b, ok := r.builders[id]
	if !ok {
		return nil, &LoadError{ID: id, Mode: o.mode, Err: ErrUnknownSystem}
	}
	if _, err := uncertainty.ParseMode(string(o.mode)); err != nil {
		return nil, &LoadError{ID: id, Mode: o.mode, Err: err}
	}

	if !r.declares(id, o.mode) {
		return nil, &LoadError{ID: id, Mode: o.mode, Err: fmt.Errorf("%w: %s", ErrUnsupportedMode, o.mode)}
	}

	if o.mode.Random() && o.src == nil {
		seed := time.Now().UnixNano()
		log.Warn().Str("system", string(id)).Str("mode", string(o.mode)).Int64("seed", seed).
			Msg("no random source supplied, seeding from clock")
		o.src = rand.New(rand.NewSource(seed))
	}

	f, err := b(Request{Mode: o.mode, Source: o.src, Params: o.params})
	if err != nil {
		return nil, &LoadError{ID: id, Mode: o.mode, Err: err}
	}
	f.ID = id
	if err := f.validate(); err != nil {
		return nil, &LoadError{ID: id, Mode: o.mode, Err: err}
	}

	log.Debug().
		Str("system", string(id)).
		Str("mode", string(o.mode)).
		Str("model", f.Model.String()).
		Int("r0_dim", f.Spec.R0.Dim()).
		Int("u_dim", f.Spec.U.Dim()).
		Int("u_generators", f.Spec.U.NumGenerators()).
		Bool("decomposed", f.Spec.Decomposed()).
		Msg("built catalog fixture")
	return f, nil
}

var defaultRegistry = NewRegistry()

// Default returns the registry holding every built-in entry.
func Default() *Registry {
	return defaultRegistry
}

// Load builds a fixture from the default registry.
func Load(id ID, opts ...Option) (*Fixture, error) {
	return defaultRegistry.Load(id, opts...)
}

// IDs lists the identifiers of the default registry.
func IDs() []ID {
	return defaultRegistry.IDs()
}

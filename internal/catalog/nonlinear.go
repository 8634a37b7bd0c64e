package catalog

import (
	"math"

	"github.com/san-kum/dynsets/internal/dynamo"
	"github.com/san-kum/dynsets/internal/integrators"
	"github.com/san-kum/dynsets/internal/models"
	"github.com/san-kum/dynsets/internal/physics"
)

// sampled discretizes a vector field with one RK4 step per sample.
func sampled(sys dynamo.System, dt float64) models.DynamicsFunc {
	return models.DynamicsFunc(integrators.Discretize(sys, integrators.NewRK4(), dt))
}

func lorenz() entry {
	const dt = 0.01
	return entry{
		pTrue: physics.NewLorenz().Params(),
		model: func(p []float64) (*models.Model, error) {
			sys, err := physics.NewLorenzFromParams(p)
			if err != nil {
				return nil, err
			}
			return models.NewNonlinearDT(dt, models.Dims{State: 3, Input: 3}, sampled(sys, dt), nil)
		},
		r0: allModes([]float64{1, 1, 1}, eye(3, 0.1), 0.1, 0.1),
		u:  allModes(zeros(3), eye(3, 0.5), 0, 0.5),
	}
}

func lorenz2D() entry {
	const dt = 0.01
	r0c := []float64{1, 1}
	return entry{
		pTrue: physics.NewLorenz2D().Params(),
		model: func(p []float64) (*models.Model, error) {
			sys, err := physics.NewLorenz2DFromParams(p)
			if err != nil {
				return nil, err
			}
			return models.NewNonlinearDT(dt, models.Dims{State: 2, Input: 2}, sampled(sys, dt), nil)
		},
		r0: withRandLiteral(allModes(r0c, eye(2, 0.1), 0.1, 0.1), r0c, dense(2, 2,
			0.0655, 0.0171,
			0.0706, 0.0032,
		)),
		u: withRandLiteral(allModes(zeros(2), eye(2, 0.5), 0, 0.5), zeros(2), dense(2, 2,
			0.2760, 0.6551,
			0.6797, 0.1626,
		)),
	}
}

// square is an oscillator with a quadratic restoring term:
// x1⁺ = x1 + dt·x2, x2⁺ = x2 + dt·(p1·x1² + p2·x2 + u).
func square() entry {
	const dt = 0.1
	return entry{
		pTrue: []float64{-1, -0.5},
		model: func(p []float64) (*models.Model, error) {
			f := models.DynamicsFunc(func(x dynamo.State, u dynamo.Control) dynamo.State {
				return dynamo.State{
					x[0] + dt*x[1],
					x[1] + dt*(p[0]*x[0]*x[0]+p[1]*x[1]+u[0]),
				}
			})
			return models.NewNonlinearDT(dt, models.Dims{State: 2, Input: 1}, f, nil)
		},
		r0: allModes([]float64{0.5, 0}, eye(2, 0.05), 0.1, 0.05),
		u:  allModes(zeros(1), dense(1, 1, 0.1), 0, 0.1),
	}
}

func bicycle() entry {
	const dt = 0.1
	return entry{
		pTrue: physics.NewBicycle().Params(),
		model: func(p []float64) (*models.Model, error) {
			sys, err := physics.NewBicycleFromParams(p)
			if err != nil {
				return nil, err
			}
			return models.NewNonlinearDT(dt, models.Dims{State: 4, Input: 2}, sampled(sys, dt), nil)
		},
		r0: allModes([]float64{0, 0, 0, 5}, diag(0.1, 0.1, 0.01, 0.1), 0.1, 0.1),
		u:  allModes(zeros(2), diag(0.5, 0.05), 0, 0.5),
	}
}

func bicycleHO() entry {
	const dt = 0.1
	return entry{
		pTrue: physics.NewBicycleHO().Params(),
		model: func(p []float64) (*models.Model, error) {
			sys, err := physics.NewBicycleHOFromParams(p)
			if err != nil {
				return nil, err
			}
			return models.NewNonlinearDT(dt, models.Dims{State: 6, Input: 2}, sampled(sys, dt), nil)
		},
		r0: std([]float64{0, 0, 0, 5, 0, 0}, diag(0.1, 0.1, 0.01, 0.1, 0.05, 0.005)),
		u:  std(zeros(2), diag(0.2, 0.02)),
	}
}

// cstrDiscr is the Euler-sampled reactor at nominal coolant temperature with
// additive process noise w on the state and measurement noise v on the
// output, u = [w; v].
func cstrDiscr() entry {
	const dt = 0.015
	reactor := physics.NewCSTR()
	step := integrators.Discretize(reactor, integrators.NewEuler(), dt)

	f := models.DynamicsFunc(func(x dynamo.State, u dynamo.Control) dynamo.State {
		return step(x, nil).Add(dynamo.State(u[:2]))
	})
	h := models.DynamicsFunc(func(x dynamo.State, u dynamo.Control) dynamo.State {
		return x.Add(dynamo.State(u[2:]))
	})

	return entry{
		model: func([]float64) (*models.Model, error) {
			return models.NewNonlinearDT(dt, models.Dims{State: 2, Input: 4, Output: 2}, f, h)
		},
		r0: std([]float64{0.5, 350}, diag(0.01, 1)),
		w:  ref(std(zeros(2), diag(0.001, 0.1))),
		v:  ref(std(zeros(2), diag(0.005, 0.5))),
	}
}

// tank is a cascade of n gravity-drained tanks fed through the first one.
func tank(n int, levels []float64) entry {
	const dt = 0.5
	sys := physics.NewTankChain(n)
	f := sampled(sys, dt)

	return entry{
		model: func([]float64) (*models.Model, error) {
			return models.NewNonlinearDT(dt, models.Dims{State: n, Input: 1}, f, nil)
		},
		r0: std(levels, eye(n, 0.2)),
		u:  std([]float64{0.1}, dense(1, 1, 0.01)),
	}
}

// mockSys is a damped pendulum sampled with forward Euler.
func mockSys() entry {
	const dt = 0.1
	return entry{
		pTrue: []float64{1, 0.5},
		model: func(p []float64) (*models.Model, error) {
			f := models.DynamicsFunc(func(x dynamo.State, u dynamo.Control) dynamo.State {
				return dynamo.State{
					x[0] + dt*x[1],
					x[1] + dt*(-p[0]*math.Sin(x[0])-p[1]*x[1]+u[0]),
				}
			})
			return models.NewNonlinearDT(dt, models.Dims{State: 2, Input: 1}, f, nil)
		},
		r0: allModes([]float64{0.1, 0}, eye(2, 0.01), 0.1, 0.01),
		u:  allModes(zeros(1), dense(1, 1, 0.1), 0, 0.1),
	}
}

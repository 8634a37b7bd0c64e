package catalog

import (
	"math"

	"github.com/san-kum/dynsets/internal/dynamo"
	"github.com/san-kum/dynsets/internal/models"
)

// NARX closures index the output history oldest first, so with n_p = 2 and
// dim_y = 2 the layout is [y1(k-2), y2(k-2), y1(k-1), y2(k-1)], and the input
// window is [u(k-n_p) ... u(k)].

// narx: y1(k) = p1·y1(k-1) + p2·tanh(y2(k-2)) + u1(k-1)
//
//	y2(k) = p3·sin(y1(k-1)) + 0.2·y2(k-1) + u2(k)
func narx() entry {
	const dt = 0.1
	return entry{
		pTrue: []float64{0.8, 0.3, 0.5},
		model: func(p []float64) (*models.Model, error) {
			f := models.DynamicsFunc(func(y dynamo.State, u dynamo.Control) dynamo.State {
				return dynamo.State{
					p[0]*y[2] + p[1]*math.Tanh(y[1]) + u[2],
					p[2]*math.Sin(y[2]) + 0.2*y[3] + u[5],
				}
			})
			return models.NewNonlinearARX(dt, 2, 2, 2, f)
		},
		r0: allModes(zeros(4), eye(4, 0.05), 0, 0.05),
		u:  allModes(zeros(2), eye(2, 0.1), 0, 0.1),
	}
}

// mockSysARX: y(k) = 0.5·y(k-1) - 0.2·y(k-2)² + u(k-1)
func mockSysARX() entry {
	const dt = 0.1
	f := models.DynamicsFunc(func(y dynamo.State, u dynamo.Control) dynamo.State {
		return dynamo.State{0.5*y[1] - 0.2*y[0]*y[0] + u[1]}
	})
	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewNonlinearARX(dt, 1, 1, 2, f) },
		r0:    allModes(zeros(2), eye(2, 0.1), 0, 0.1),
		u:     allModes(zeros(1), dense(1, 1, 0.1), 0, 0.1),
	}
}

// narxEx1: y(k) = y(k-1) / (1 + y(k-1)²) + u(k-1)³
func narxEx1() entry {
	const dt = 1
	f := models.DynamicsFunc(func(y dynamo.State, u dynamo.Control) dynamo.State {
		return dynamo.State{y[0]/(1+y[0]*y[0]) + u[0]*u[0]*u[0]}
	})
	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewNonlinearARX(dt, 1, 1, 1, f) },
		r0:    allModes(zeros(1), dense(1, 1, 0.1), 0, 0.1),
		u:     allModes(zeros(1), dense(1, 1, 0.5), 0, 0.5),
	}
}

// narxEx2 has two outputs, one input and three lags:
//
//	y1(k) = 0.6·y1(k-1) + 0.2·y2(k-2) + u(k-1)
//	y2(k) = 0.4·y2(k-1) - 0.1·y1(k-3)·y2(k-1) + 0.5·u(k-2)
func narxEx2() entry {
	const dt = 0.05
	f := models.DynamicsFunc(func(y dynamo.State, u dynamo.Control) dynamo.State {
		return dynamo.State{
			0.6*y[4] + 0.2*y[3] + u[2],
			0.4*y[5] - 0.1*y[0]*y[5] + 0.5*u[1],
		}
	})
	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewNonlinearARX(dt, 2, 1, 3, f) },
		r0:    allModes(zeros(6), eye(6, 0.05), 0, 0.05),
		u:     allModes(zeros(1), dense(1, 1, 0.2), 0, 0.2),
	}
}

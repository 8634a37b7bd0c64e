package catalog

import (
	"github.com/san-kum/dynsets/internal/models"
	"gonum.org/v1/gonum/mat"
)

// chainOfIntegrators is a 4-state integrator chain observed on two
// coordinates. Process noise w drives the last two integrators and
// measurement noise v enters the output, so u = [w; v] and U = W × V.
func chainOfIntegrators() entry {
	const dt = 0.1
	A := dense(4, 4,
		1, dt, 0, 0,
		0, 1, dt, 0,
		0, 0, 1, dt,
		0, 0, 0, 1,
	)
	B := dense(4, 4,
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 0, 0, 0,
		0, 1, 0, 0,
	)
	C := dense(2, 4,
		1, 0, 0, 0,
		0, 0, 1, 0,
	)
	D := dense(2, 4,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)

	v := allModes([]float64{-0.05, -0.05}, dense(2, 3, 0.1, 0, 0.1, 0, 0.1, 0.1), 0, 0.1)
	v.Rand.Generators = 3

	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewLinearDT(dt, A, B, C, D) },
		r0:    allModes(zeros(4), nil, 0, 0.1),
		w:     ref(allModes([]float64{0.1, 0.1}, eye(2, 0.2), 0, 0.2)),
		v:     &v,
	}
}

// pedestrian is a planar double integrator with position output.
// State: [px, py, vx, vy]; input: acceleration.
func pedestrian() entry {
	const dt = 0.01
	A, B := pedestrianMatrices(dt)
	C := dense(2, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
	)

	r0c := []float64{1, -1, 0.5, 0.5}
	r0 := withRandLiteral(allModes(r0c, diag(0.1, 0.1, 0.05, 0.05), 0.1, 0.1), r0c, dense(4, 4,
		0.0816, 0.0243, 0.0929, 0.0350,
		0.0197, 0.0251, 0.0616, 0.0473,
		0.0352, 0.0832, 0.0558, 0.0585,
		0.0550, 0.0917, 0.0286, 0.0754,
	))
	u := withRandLiteral(allModes(zeros(2), eye(2, 0.5), 0, 0.5), zeros(2), dense(2, 2,
		0.4387, 0.7952,
		0.3816, 0.1869,
	))

	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewLinearDT(dt, A, B, C, nil) },
		r0:    r0,
		u:     u,
	}
}

func pedestrianMatrices(dt float64) (A, B *mat.Dense) {
	h := dt * dt / 2
	A = dense(4, 4,
		1, 0, dt, 0,
		0, 1, 0, dt,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	B = dense(4, 2,
		h, 0,
		0, h,
		dt, 0,
		0, dt,
	)
	return A, B
}

// pedestrianARX is the position output of pedestrian written as an ARX model:
// y(k) = 2y(k-1) - y(k-2) + dt²/2 (u(k-1) + u(k-2)).
func pedestrianARX() entry {
	const dt = 0.01
	h := dt * dt / 2
	outCoeffs := []mat.Matrix{eye(2, 2), eye(2, -1)}
	inCoeffs := []mat.Matrix{mat.NewDense(2, 2, nil), eye(2, h), eye(2, h)}

	// history [y(k-2); y(k-1)] of a pedestrian walking at 0.5 m/s
	r0c := []float64{1, -1, 1.005, -0.995}

	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewLinearARX(dt, outCoeffs, inCoeffs) },
		r0:    allModes(r0c, eye(4, 0.01), 0, 0.01),
		u:     allModes(zeros(2), eye(2, 0.5), 0, 0.5),
	}
}

// testSys is a small stable linear fixture used by unit tests.
func testSys() entry {
	A := dense(2, 2, 0.9, 0.1, 0, 0.8)
	B := dense(2, 1, 0, 1)
	C := dense(1, 2, 1, 0)

	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewLinearDT(1, A, B, C, nil) },
		r0:    allModes([]float64{1, 1}, eye(2, 0.1), 0.1, 0.1),
		u:     allModes(zeros(1), dense(1, 1, 0.2), 0, 0.2),
	}
}

// testSys2 is a 3-state linear fixture with additive process noise on every
// state and scalar measurement noise, u = [w; v].
func testSys2() entry {
	A := dense(3, 3,
		0.5, 0.1, 0,
		0, 0.6, 0.1,
		0, 0, 0.7,
	)
	B := dense(3, 4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	)
	C := dense(1, 3, 1, 1, 0)
	D := dense(1, 4, 0, 0, 0, 1)

	return entry{
		model: func([]float64) (*models.Model, error) { return models.NewLinearDT(1, A, B, C, D) },
		r0:    allModes(zeros(3), eye(3, 0.05), 0, 0.05),
		w:     ref(allModes(zeros(3), eye(3, 0.01), 0, 0.01)),
		v:     ref(allModes(zeros(1), dense(1, 1, 0.02), 0, 0.02)),
	}
}

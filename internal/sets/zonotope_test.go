package sets

import (
	"errors"
	"testing"

	"github.com/san-kum/dynsets/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

func TestNewZonotope(t *testing.T) {
	tests := []struct {
		name    string
		center  []float64
		gens    mat.Matrix
		wantErr bool
		wantDim int
		wantGen int
	}{
		{"point", []float64{1, 2}, nil, false, 2, 0},
		{"typed nil", []float64{1, 2}, (*mat.Dense)(nil), false, 2, 0},
		{"square", []float64{0, 0}, mat.NewDense(2, 2, []float64{1, 0, 0, 1}), false, 2, 2},
		{"wide", []float64{0, 0}, mat.NewDense(2, 3, nil), false, 2, 3},
		{"row mismatch", []float64{0, 0, 0}, mat.NewDense(2, 2, nil), true, 0, 0},
		{"empty center", nil, nil, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := NewZonotope(tt.center, tt.gens)
			if tt.wantErr {
				if !errors.Is(err, ErrDimensionMismatch) {
					t.Fatalf("expected ErrDimensionMismatch, got %v", err)
				}
				if !errors.Is(err, dynamo.ErrDimensionMismatch) {
					t.Error("error should also match dynamo.ErrDimensionMismatch")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if z.Dim() != tt.wantDim {
				t.Errorf("Dim() = %d, want %d", z.Dim(), tt.wantDim)
			}
			if z.NumGenerators() != tt.wantGen {
				t.Errorf("NumGenerators() = %d, want %d", z.NumGenerators(), tt.wantGen)
			}
		})
	}
}

func TestZonotopeIsImmutable(t *testing.T) {
	c := []float64{1, 2}
	g := mat.NewDense(2, 1, []float64{3, 4})
	z := MustZonotope(c, g)

	c[0] = 99
	g.Set(0, 0, 99)
	if z.Center()[0] != 1 || z.Generators().At(0, 0) != 3 {
		t.Fatal("zonotope shares storage with its inputs")
	}

	z.Center()[1] = 99
	z.Generators().Set(1, 0, 99)
	if z.Center()[1] != 2 || z.Generators().At(1, 0) != 4 {
		t.Fatal("accessors expose internal storage")
	}
}

func TestNewZonotopeFromColumns(t *testing.T) {
	z, err := NewZonotopeFromColumns([]float64{0, 0}, []float64{1, 0}, []float64{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := z.Generator(1); got[0] != 0 || got[1] != 1 {
		t.Errorf("Generator(1) = %v, want [0 1]", got)
	}

	_, err = NewZonotopeFromColumns([]float64{0, 0}, []float64{1, 0, 0})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCartesianProduct(t *testing.T) {
	w := MustZonotope([]float64{0.1, 0.1}, mat.NewDense(2, 2, []float64{0.2, 0, 0, 0.2}))
	v := MustZonotope([]float64{-0.05, -0.05}, mat.NewDense(2, 3, []float64{0.1, 0, 0.1, 0, 0.1, 0.1}))

	u := CartesianProduct(w, v)

	if u.Dim() != 4 {
		t.Errorf("Dim() = %d, want 4", u.Dim())
	}
	if u.NumGenerators() != 5 {
		t.Errorf("NumGenerators() = %d, want 5", u.NumGenerators())
	}

	wantCenter := []float64{0.1, 0.1, -0.05, -0.05}
	for i, c := range u.Center() {
		if c != wantCenter[i] {
			t.Errorf("center[%d] = %v, want %v", i, c, wantCenter[i])
		}
	}

	want := mat.NewDense(4, 5, []float64{
		0.2, 0, 0, 0, 0,
		0, 0.2, 0, 0, 0,
		0, 0, 0.1, 0, 0.1,
		0, 0, 0, 0.1, 0.1,
	})
	if !mat.Equal(u.Generators(), want) {
		t.Errorf("generators =\n%v\nwant\n%v", mat.Formatted(u.Generators()), mat.Formatted(want))
	}
}

func TestCartesianProduct_ProjectionRecoversOperands(t *testing.T) {
	w := MustZonotope([]float64{1, 2, 3}, mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6}))
	v := MustZonotope([]float64{-1}, mat.NewDense(1, 3, []float64{7, 8, 9}))
	u := CartesianProduct(w, v)

	pw, err := u.Project(0, 3)
	if err != nil {
		t.Fatalf("project failed: %v", err)
	}
	if pw.NumGenerators() != 5 {
		t.Errorf("projection should keep every generator column, got %d", pw.NumGenerators())
	}
	for j := 2; j < 5; j++ {
		for _, x := range pw.Generator(j) {
			if x != 0 {
				t.Errorf("generator %d of W-block should be zero padding, got %v", j, pw.Generator(j))
			}
		}
	}
	if !pw.Compact().Equal(w) {
		t.Error("W-block projection does not recover W")
	}

	pv, err := u.Project(3, 4)
	if err != nil {
		t.Fatalf("project failed: %v", err)
	}
	if !pv.Compact().Equal(v) {
		t.Error("V-block projection does not recover V")
	}
}

func TestCartesianProduct_Points(t *testing.T) {
	a, _ := Point([]float64{1})
	b, _ := Point([]float64{2, 3})
	u := CartesianProduct(a, b)
	if !u.IsPoint() || u.Dim() != 3 {
		t.Errorf("product of points = %v, want 3-dimensional point", u)
	}

	g := MustZonotope([]float64{0}, mat.NewDense(1, 1, []float64{1}))
	u = CartesianProduct(a, g)
	if u.NumGenerators() != 1 || u.Generators().At(1, 0) != 1 || u.Generators().At(0, 0) != 0 {
		t.Errorf("unexpected generators %v", mat.Formatted(u.Generators()))
	}
}

func TestCartesianProduct_Associative(t *testing.T) {
	a := MustZonotope([]float64{1}, mat.NewDense(1, 1, []float64{1}))
	b := MustZonotope([]float64{2, 3}, mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	c := MustZonotope([]float64{4}, nil)

	left := CartesianProduct(CartesianProduct(a, b), c)
	right := CartesianProduct(a, CartesianProduct(b, c))
	if !left.Equal(right) {
		t.Error("CartesianProduct is not associative")
	}
}

func TestProject_InvalidRange(t *testing.T) {
	z := MustZonotope([]float64{1, 2}, nil)
	for _, r := range [][2]int{{-1, 1}, {0, 3}, {1, 1}} {
		if _, err := z.Project(r[0], r[1]); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Project(%d, %d): expected ErrDimensionMismatch, got %v", r[0], r[1], err)
		}
	}
}

func TestCenteredAndBounds(t *testing.T) {
	z := MustZonotope([]float64{1, -1}, mat.NewDense(2, 2, []float64{0.5, -0.25, 0, 1}))

	lo, hi := z.Bounds()
	wantLo := []float64{0.25, -2}
	wantHi := []float64{1.75, 0}
	for i := range lo {
		if lo[i] != wantLo[i] || hi[i] != wantHi[i] {
			t.Errorf("bounds[%d] = [%v, %v], want [%v, %v]", i, lo[i], hi[i], wantLo[i], wantHi[i])
		}
	}

	c := z.Centered()
	for _, x := range c.Center() {
		if x != 0 {
			t.Errorf("Centered() center = %v, want zeros", c.Center())
		}
	}
	if !mat.Equal(c.Generators(), z.Generators()) {
		t.Error("Centered() changed the generators")
	}
}

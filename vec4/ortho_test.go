package vec4

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vector/scalar"
)

func basis() []Vec[float64] {
	return []Vec[float64]{
		New(1.0, 1.0, 0.0, 0.0),
		New(1.0, 0.0, 1.0, 0.0),
		New(0.0, 1.0, 1.0, 0.0),
		New(1.0, 1.0, 1.0, 1.0),
	}
}

func TestOrthogonalize(t *testing.T) {
	src := basis()
	dst := make([]Vec[float64], len(src))
	if err := Orthogonalize(dst, src); err != nil {
		t.Fatal(err)
	}
	if dst[0] != src[0] {
		t.Fatalf("dst[0] = %v, want the first input unchanged", dst[0])
	}
	for i := range dst {
		if dst[i] == Zero[float64]() {
			t.Fatalf("dst[%d] is zero for independent input", i)
		}
		for j := range i {
			if d := dst[i].Dot(dst[j]); math.Abs(d) > 1e-12 {
				t.Fatalf("dst[%d].dst[%d] = %v", i, j, d)
			}
		}
	}

	dup := []Vec[float64]{UnitX[float64](), New(2.0, 0.0, 0.0, 0.0), UnitW[float64]()}
	if err := Orthogonalize(dup, dup); err != nil {
		t.Fatal(err)
	}
	if dup[1] != Zero[float64]() || dup[2] != UnitW[float64]() {
		t.Fatalf("dependent input = %v", dup)
	}
}

func TestOrthonormalize(t *testing.T) {
	src := basis()
	dst := make([]Vec[float64], len(src))
	if err := Orthonormalize(dst, src); err != nil {
		t.Fatal(err)
	}
	for i := range dst {
		if l := Length(dst[i]); math.Abs(l-1) > 1e-12 {
			t.Fatalf("|dst[%d]| = %v", i, l)
		}
		for j := range i {
			if d := dst[i].Dot(dst[j]); math.Abs(d) > 1e-12 {
				t.Fatalf("dst[%d].dst[%d] = %v", i, j, d)
			}
		}
	}
}

func TestOrthoInvalidArguments(t *testing.T) {
	src := basis()
	tests := []struct {
		name     string
		dst, src []Vec[float64]
	}{
		{"nil source", make([]Vec[float64], 1), nil},
		{"nil destination", nil, src},
		{"short destination", make([]Vec[float64], 2), src},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Orthogonalize(tc.dst, tc.src); !errors.Is(err, scalar.ErrInvalidArgument) {
				t.Fatalf("Orthogonalize err = %v", err)
			}
			if err := Orthonormalize(tc.dst, tc.src); !errors.Is(err, scalar.ErrInvalidArgument) {
				t.Fatalf("Orthonormalize err = %v", err)
			}
		})
	}
}

package xform

import (
	"math"
	"testing"
)

const tol = 1e-12

func near(a, b float64) bool { return math.Abs(a-b) <= tol }

func requireMatrixNear(t *testing.T, got, want Matrix4x4[float64]) {
	t.Helper()
	g, w := got.Rows(), want.Rows()
	for i := range 4 {
		for j := range 4 {
			if !near(g[i][j], w[i][j]) {
				t.Fatalf("M%d%d = %v, want %v", i+1, j+1, g[i][j], w[i][j])
			}
		}
	}
}

func TestRotationFromQuaternionMatchesAxisRotations(t *testing.T) {
	angle := 0.7
	tests := []struct {
		name    string
		x, y, z float64
		want    Matrix4x4[float64]
	}{
		{"x", 1, 0, 0, RotationX(angle)},
		{"y", 0, 1, 0, RotationY(angle)},
		{"z", 0, 0, 1, RotationZ(angle)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := QuaternionFromAxisAngle(tc.x, tc.y, tc.z, angle)
			requireMatrixNear(t, RotationFromQuaternion(q), tc.want)
		})
	}
}

func TestMatrix4x4MulOrder(t *testing.T) {
	m := Translation4x4[float64](1, 2, 3).Mul(Scale4x4[float64](2, 2, 2))
	// Translation applies first, so it is scaled too.
	if m.M41 != 2 || m.M42 != 4 || m.M43 != 6 {
		t.Fatalf("translation row = (%v, %v, %v), want (2, 4, 6)", m.M41, m.M42, m.M43)
	}
	requireMatrixNear(t, Identity4x4[float64]().Mul(m), m)
}

func TestFromRowsRoundTrip(t *testing.T) {
	m := RotationY(0.3).Mul(Translation4x4[float64](4, 5, 6))
	if FromRows(m.Rows()) != m {
		t.Fatal("FromRows(Rows()) changed the matrix")
	}
}

func TestMatrix3x2Mul(t *testing.T) {
	m := Translation3x2[float32](1, 2).Mul(Scale3x2[float32](2, 3))
	want := Matrix3x2[float32]{M11: 2, M22: 3, M31: 2, M32: 6}
	if m != want {
		t.Fatalf("Mul = %+v, want %+v", m, want)
	}
	if Identity3x2[float32]().Mul(m) != m {
		t.Fatal("identity is not neutral")
	}
}

func TestRotation3x2(t *testing.T) {
	m := Rotation3x2(math.Pi / 2)
	if !near(m.M11, 0) || !near(m.M12, 1) || !near(m.M21, -1) || !near(m.M22, 0) {
		t.Fatalf("Rotation3x2(pi/2) = %+v", m)
	}
}

func TestQuaternion(t *testing.T) {
	q := QuaternionFromAxisAngle(0, 0, 1, math.Pi/3)
	if !near(q.Length(), 1) {
		t.Fatalf("Length = %v, want 1", q.Length())
	}
	p := q.Mul(q.Conjugate())
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, 0) || !near(p.W, 1) {
		t.Fatalf("q*conj(q) = %+v, want identity", p)
	}
	if IdentityQuaternion[float64]().Mul(q) != q {
		t.Fatal("identity is not neutral")
	}

	// Two rotations of pi/3 around the same axis compose to 2pi/3.
	want := QuaternionFromAxisAngle(0, 0, 1, 2*math.Pi/3)
	got := q.Mul(q)
	if !near(got.Z, want.Z) || !near(got.W, want.W) {
		t.Fatalf("q*q = %+v, want %+v", got, want)
	}
}

func TestQuaternionNormalize(t *testing.T) {
	var zero Quaternion[float32]
	if zero.Normalize() != zero {
		t.Fatal("zero quaternion changed on Normalize")
	}
	q := Quaternion[float64]{W: 2}.Normalize()
	if q != IdentityQuaternion[float64]() {
		t.Fatalf("Normalize = %+v", q)
	}
}

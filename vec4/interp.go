package vec4

import "github.com/cwbudde/algo-vector/scalar"

// Lerp returns (1-t)*a + t*b per component without clamping t.
func Lerp[T scalar.Number](a, b Vec[T], t float64) Vec[T] {
	return Vec[T]{
		X: scalar.Lerp(a.X, b.X, t),
		Y: scalar.Lerp(a.Y, b.Y, t),
		Z: scalar.Lerp(a.Z, b.Z, t),
		W: scalar.Lerp(a.W, b.W, t),
	}
}

// SmoothStep interpolates with t clamped to [0,1] and remapped by 3t²-2t³.
func SmoothStep[T scalar.Number](a, b Vec[T], t float64) Vec[T] {
	return Lerp(a, b, scalar.SmoothStepAmount(t))
}

// Barycentric returns v1 + u*(v2-v1) + w*(v3-v1) per component.
func Barycentric[T scalar.Number](v1, v2, v3 Vec[T], u, w float64) Vec[T] {
	return Vec[T]{
		X: scalar.Barycentric(v1.X, v2.X, v3.X, u, w),
		Y: scalar.Barycentric(v1.Y, v2.Y, v3.Y, u, w),
		Z: scalar.Barycentric(v1.Z, v2.Z, v3.Z, u, w),
		W: scalar.Barycentric(v1.W, v2.W, v3.W, u, w),
	}
}

// CatmullRom interpolates between v2 and v3 using v1 and v4 as neighbors.
func CatmullRom[T scalar.Float](v1, v2, v3, v4 Vec[T], t T) Vec[T] {
	return Vec[T]{
		X: scalar.CatmullRom(v1.X, v2.X, v3.X, v4.X, t),
		Y: scalar.CatmullRom(v1.Y, v2.Y, v3.Y, v4.Y, t),
		Z: scalar.CatmullRom(v1.Z, v2.Z, v3.Z, v4.Z, t),
		W: scalar.CatmullRom(v1.W, v2.W, v3.W, v4.W, t),
	}
}

// Hermite interpolates from v1 with tangent t1 to v2 with tangent t2.
func Hermite[T scalar.Float](v1, t1, v2, t2 Vec[T], s T) Vec[T] {
	return Vec[T]{
		X: scalar.Hermite(v1.X, t1.X, v2.X, t2.X, s),
		Y: scalar.Hermite(v1.Y, t1.Y, v2.Y, t2.Y, s),
		Z: scalar.Hermite(v1.Z, t1.Z, v2.Z, t2.Z, s),
		W: scalar.Hermite(v1.W, t1.W, v2.W, t2.W, s),
	}
}

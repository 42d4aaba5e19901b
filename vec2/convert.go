package vec2

import "github.com/cwbudde/algo-vector/scalar"

// Convert returns v with each component converted to U using Go's native
// numeric conversion. Floats truncate toward zero when converted to an
// integer kind; narrowing integers keep the low-order bits.
func Convert[U, T scalar.Number](v Vec[T]) Vec[U] {
	return Vec[U]{X: U(v.X), Y: U(v.Y)}
}

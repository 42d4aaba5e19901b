package vec2

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Orthogonalize writes to dst the modified Gram-Schmidt orthogonalization of
// src: dst[0] = src[0] and every later vector has its projections onto the
// earlier outputs removed. Zero outputs contribute no projection. dst may
// alias src. It fails with scalar.ErrInvalidArgument if either slice is nil
// or dst is shorter than src.
func Orthogonalize[T scalar.Float](dst, src []Vec[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec2: %w", err)
	}
	for i := range src {
		v := src[i]
		for _, d := range dst[:i] {
			if dd := d.Dot(d); dd != 0 {
				v = v.Sub(d.MulScalar(d.Dot(v) / dd))
			}
		}
		dst[i] = v
	}
	return nil
}

// Orthonormalize is Orthogonalize followed by normalization of each output.
func Orthonormalize[T scalar.Float](dst, src []Vec[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec2: %w", err)
	}
	for i := range src {
		v := src[i]
		for _, d := range dst[:i] {
			v = v.Sub(d.MulScalar(d.Dot(v)))
		}
		dst[i] = Normalize(v)
	}
	return nil
}

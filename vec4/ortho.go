package vec4

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Orthogonalize writes the modified Gram-Schmidt orthogonalization of src to
// dst, preserving order. dst may alias src.
func Orthogonalize[T scalar.Float](dst, src []Vec[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec4: %w", err)
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

// Orthonormalize writes an orthonormal basis spanning src to dst.
func Orthonormalize[T scalar.Float](dst, src []Vec[T]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("vec4: %w", err)
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

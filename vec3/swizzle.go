package vec3

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Swizzle builds a vector from src[x], src[y], src[z]. src may be a vector of
// any arity and indices may repeat.
func Swizzle[T scalar.Number](src scalar.Indexed[T], x, y, z int) (Vec[T], error) {
	if src == nil {
		return Vec[T]{}, fmt.Errorf("vec3 swizzle: %w: nil source", scalar.ErrInvalidArgument)
	}
	var r Vec[T]
	var err error
	if r.X, err = src.At(x); err != nil {
		return Vec[T]{}, fmt.Errorf("vec3 swizzle: %w", err)
	}
	if r.Y, err = src.At(y); err != nil {
		return Vec[T]{}, fmt.Errorf("vec3 swizzle: %w", err)
	}
	if r.Z, err = src.At(z); err != nil {
		return Vec[T]{}, fmt.Errorf("vec3 swizzle: %w", err)
	}
	return r, nil
}

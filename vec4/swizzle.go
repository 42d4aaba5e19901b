package vec4

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Swizzle builds a vector from src[x], src[y], src[z], src[w]. src may be a
// vector of any arity and indices may repeat.
func Swizzle[T scalar.Number](src scalar.Indexed[T], x, y, z, w int) (Vec[T], error) {
	if src == nil {
		return Vec[T]{}, fmt.Errorf("vec4 swizzle: %w: nil source", scalar.ErrInvalidArgument)
	}
	idx := [Size]int{x, y, z, w}
	var r [Size]T
	for i, j := range idx {
		c, err := src.At(j)
		if err != nil {
			return Vec[T]{}, fmt.Errorf("vec4 swizzle: %w", err)
		}
		r[i] = c
	}
	return FromArray(r), nil
}

package vec2

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Swizzle builds a vector whose X is src[x] and Y is src[y]. src may be a
// vector of any arity; indices may repeat. An index outside src fails with
// scalar.ErrIndexOutOfRange.
func Swizzle[T scalar.Number](src scalar.Indexed[T], x, y int) (Vec[T], error) {
	if src == nil {
		return Vec[T]{}, fmt.Errorf("vec2 swizzle: %w: nil source", scalar.ErrInvalidArgument)
	}
	cx, err := src.At(x)
	if err != nil {
		return Vec[T]{}, fmt.Errorf("vec2 swizzle: %w", err)
	}
	cy, err := src.At(y)
	if err != nil {
		return Vec[T]{}, fmt.Errorf("vec2 swizzle: %w", err)
	}
	return Vec[T]{X: cx, Y: cy}, nil
}

// YX returns (v.Y, v.X).
func (v Vec[T]) YX() Vec[T] {
	return Vec[T]{X: v.Y, Y: v.X}
}

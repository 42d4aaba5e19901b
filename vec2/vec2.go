package vec2

import (
	"fmt"

	"github.com/cwbudde/algo-vector/scalar"
)

// Size is the number of components in a [Vec].
const Size = 2

// Vec is a 2-component vector. Component i is X for i == 0 and Y for i == 1.
type Vec[T scalar.Number] struct {
	X, Y T
}

// New returns (x, y).
func New[T scalar.Number](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Splat returns (s, s).
func Splat[T scalar.Number](s T) Vec[T] {
	return Vec[T]{X: s, Y: s}
}

// FromSlice returns the first two elements of s as a vector. It fails with
// scalar.ErrInvalidArgument if s is nil or holds fewer than two elements.
func FromSlice[T scalar.Number](s []T) (Vec[T], error) {
	if err := scalar.CheckLength(s, Size); err != nil {
		return Vec[T]{}, fmt.Errorf("vec2: %w", err)
	}
	return Vec[T]{X: s[0], Y: s[1]}, nil
}

// FromArray returns (a[0], a[1]).
func FromArray[T scalar.Number](a [Size]T) Vec[T] {
	return Vec[T]{X: a[0], Y: a[1]}
}

// Zero returns (0, 0).
func Zero[T scalar.Number]() Vec[T] { return Vec[T]{} }

// One returns (1, 1).
func One[T scalar.Number]() Vec[T] { return Vec[T]{X: 1, Y: 1} }

// UnitX returns (1, 0).
func UnitX[T scalar.Number]() Vec[T] { return Vec[T]{X: 1} }

// UnitY returns (0, 1).
func UnitY[T scalar.Number]() Vec[T] { return Vec[T]{Y: 1} }

// Len returns the number of components.
func (v Vec[T]) Len() int { return Size }

// At returns component i.
func (v Vec[T]) At(i int) (T, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}
	var zero T
	return zero, fmt.Errorf("vec2: %w", scalar.CheckIndex(i, Size))
}

// Set replaces component i with x.
func (v *Vec[T]) Set(i int, x T) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		return fmt.Errorf("vec2: %w", scalar.CheckIndex(i, Size))
	}
	return nil
}

// Array returns the components in index order.
func (v Vec[T]) Array() [Size]T {
	return [Size]T{v.X, v.Y}
}

// Unpack returns the components as separate values.
func (v Vec[T]) Unpack() (x, y T) {
	return v.X, v.Y
}

// AppendTo appends the components to dst and returns the extended slice.
func (v Vec[T]) AppendTo(dst []T) []T {
	return append(dst, v.X, v.Y)
}

// CopyTo writes the components to dst[0:2].
func (v Vec[T]) CopyTo(dst []T) error {
	if err := scalar.CheckLength(dst, Size); err != nil {
		return fmt.Errorf("vec2: %w", err)
	}
	dst[0], dst[1] = v.X, v.Y
	return nil
}

// Flatten writes src as interleaved components (x0, y0, x1, y1, ...) to dst.
func Flatten[T scalar.Number](dst []T, src []Vec[T]) error {
	if src == nil {
		return fmt.Errorf("vec2: %w: nil source", scalar.ErrInvalidArgument)
	}
	if err := scalar.CheckLength(dst, Size*len(src)); err != nil {
		return fmt.Errorf("vec2: %w", err)
	}
	for i, v := range src {
		dst[Size*i], dst[Size*i+1] = v.X, v.Y
	}
	return nil
}

// Unflatten reads interleaved components from src into dst and returns the
// number of vectors written. A trailing partial vector in src is ignored.
func Unflatten[T scalar.Number](dst []Vec[T], src []T) (int, error) {
	if src == nil || dst == nil {
		return 0, fmt.Errorf("vec2: %w: nil slice", scalar.ErrInvalidArgument)
	}
	n := len(src) / Size
	if len(dst) < n {
		return 0, fmt.Errorf("vec2: %w: destination holds %d vectors, source %d",
			scalar.ErrInvalidArgument, len(dst), n)
	}
	for i := range n {
		dst[i] = Vec[T]{X: src[Size*i], Y: src[Size*i+1]}
	}
	return n, nil
}

// Equals reports whether every component of v equals the one in o.
// There is no tolerance; use [NearlyEqual] for floats.
func (v Vec[T]) Equals(o Vec[T]) bool {
	return v.X == o.X && v.Y == o.Y
}

// Hash returns an order-sensitive hash consistent with Equals.
func (v Vec[T]) Hash() uint64 {
	return scalar.Hash(v.X, v.Y)
}

// String returns "X:x Y:y".
func (v Vec[T]) String() string {
	return scalar.FormatVector(v.X, v.Y)
}

// Format implements fmt.Formatter. Verbs other than plain %v and %s are
// applied to each component, so %.2f yields "X:1.00 Y:2.00".
func (v Vec[T]) Format(f fmt.State, verb rune) {
	scalar.WriteFormatted(f, verb, v.X, v.Y)
}

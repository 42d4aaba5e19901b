package scalar

import (
	"fmt"
	"math"
	"unsafe"
)

const defaultEpsilon = 1e-12

// Unsigned is the set of unsigned integer scalar kinds.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SignedInteger is the set of signed integer scalar kinds.
type SignedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the set of integer scalar kinds.
type Integer interface {
	Unsigned | SignedInteger
}

// Float is the set of IEEE-754 scalar kinds.
type Float interface {
	~float32 | ~float64
}

// Signed is the set of scalar kinds that have a meaningful negation.
type Signed interface {
	SignedInteger | Float
}

// Number is the set of every scalar kind a vector can hold.
type Number interface {
	Integer | Float
}

// Indexed is implemented by every vector type. It lets operations such as
// swizzling read components from a vector of any arity.
type Indexed[T Number] interface {
	Len() int
	At(i int) (T, error)
}

// IsFloat reports whether T is a floating-point kind.
func IsFloat[T Number]() bool {
	var one, two T = 1, 2
	return one/two != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero, one T = 0, 1
	return zero-one < zero
}

// BitSize returns the width of T in bits.
func BitSize[T Number]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

// MaxValue returns the largest finite value representable by T.
func MaxValue[T Number]() T {
	bits := BitSize[T]()
	switch {
	case IsFloat[T]():
		f := math.MaxFloat64
		if bits == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	case IsSigned[T]():
		u := uint64(1)<<(bits-1) - 1
		return T(u)
	default:
		u := ^uint64(0) >> (64 - bits)
		return T(u)
	}
}

// MinValue returns the smallest finite value representable by T.
func MinValue[T Number]() T {
	bits := BitSize[T]()
	switch {
	case IsFloat[T]():
		f := -math.MaxFloat64
		if bits == 32 {
			f = -math.MaxFloat32
		}
		return T(f)
	case IsSigned[T]():
		i := int64(-1) << (bits - 1)
		return T(i)
	default:
		return 0
	}
}

// Cast converts x to U using Go's native conversion: floats truncate toward
// zero, wider integers keep their low-order bits.
func Cast[U, T Number](x T) U {
	return U(x)
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]. The upper bound is applied first, so lo wins
// when lo > hi.
func Clamp[T Number](x, lo, hi T) T {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}

// Abs returns |x|. For the most negative integer the result wraps to itself.
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// AddSat returns a+b clamped to T's range. Floats use plain IEEE addition.
func AddSat[T Number](a, b T) T {
	r := a + b
	if IsFloat[T]() {
		return r
	}
	if !IsSigned[T]() {
		if r < a {
			return MaxValue[T]()
		}
		return r
	}
	var zero T
	if b > zero && r < a {
		return MaxValue[T]()
	}
	if b < zero && r > a {
		return MinValue[T]()
	}
	return r
}

// SubSat returns a-b clamped to T's range. Floats use plain IEEE subtraction.
func SubSat[T Number](a, b T) T {
	if IsFloat[T]() {
		return a - b
	}
	var zero T
	if !IsSigned[T]() {
		if b > a {
			return zero
		}
		return a - b
	}
	r := a - b
	if b < zero && r < a {
		return MaxValue[T]()
	}
	if b > zero && r > a {
		return MinValue[T]()
	}
	return r
}

// Div returns a/b. Integer kinds fail with ErrDivisionByZero when b is zero;
// float kinds follow IEEE-754 and never fail.
func Div[T Number](a, b T) (T, error) {
	var zero T
	if b == zero && !IsFloat[T]() {
		return zero, fmt.Errorf("%w: %v / 0", ErrDivisionByZero, a)
	}
	return a / b, nil
}

// Lerp returns (1-t)*a + t*b computed in float64 and converted back to T.
// t is not clamped. t == 0, t == 1 and a == b return an endpoint exactly.
// Integer results truncate toward zero and wrap when they leave T's range.
func Lerp[T Number](a, b T, t float64) T {
	switch {
	case t == 0 || a == b:
		return a
	case t == 1:
		return b
	}
	return fromFloat[T]((1-t)*float64(a) + t*float64(b))
}

// fromFloat converts f to T. Integer kinds go through a 64-bit integer so
// out-of-range results wrap the same way on every architecture.
func fromFloat[T Number](f float64) T {
	switch {
	case IsFloat[T]():
		return T(f)
	case IsSigned[T]() || f < 0:
		return T(int64(f))
	default:
		return T(uint64(f))
	}
}

// SmoothStepAmount remaps t with 3t²-2t³ after clamping it to [0,1].
func SmoothStepAmount(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Sqrt returns the square root of x in T's width.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// NearlyEqual reports whether a and b are equal within eps, either absolutely
// or relative to the larger magnitude.
func NearlyEqual[T Float](a, b, eps T) bool {
	e := float64(eps)
	if e <= 0 {
		e = defaultEpsilon
	}

	diff := math.Abs(float64(a) - float64(b))
	if diff <= e {
		return true
	}

	largest := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if largest == 0 {
		return diff <= e
	}

	return diff/largest <= e
}

// Bits returns a canonical 64-bit encoding of x. Values that compare equal
// encode equally, so -0 and +0 share an encoding.
func Bits[T Number](x T) uint64 {
	switch {
	case IsFloat[T]():
		if x == 0 {
			return 0
		}
		f := float64(x)
		if math.IsNaN(f) {
			return math.Float64bits(math.NaN())
		}
		return math.Float64bits(f)
	case IsSigned[T]():
		return uint64(int64(x))
	default:
		return uint64(x)
	}
}

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing or too short input or destination.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange reports a component index outside [0, N).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDivisionByZero reports an integer division by zero.
	// Floating-point division never returns it.
	ErrDivisionByZero = errors.New("integer division by zero")
)

// CheckIndex returns ErrIndexOutOfRange unless 0 <= i < n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// CheckLength returns ErrInvalidArgument if s is nil or shorter than n.
func CheckLength[T any](s []T, n int) error {
	if s == nil {
		return fmt.Errorf("%w: nil slice, need %d elements", ErrInvalidArgument, n)
	}
	if len(s) < n {
		return fmt.Errorf("%w: have %d elements, need %d", ErrInvalidArgument, len(s), n)
	}
	return nil
}

// CheckDestination returns ErrInvalidArgument if either slice is nil or dst
// is shorter than src.
func CheckDestination[D, S any](dst []D, src []S) error {
	if src == nil {
		return fmt.Errorf("%w: nil source", ErrInvalidArgument)
	}
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: destination length %d < source length %d", ErrInvalidArgument, len(dst), len(src))
	}
	return nil
}

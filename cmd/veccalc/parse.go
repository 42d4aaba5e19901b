package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/vec4"
	"github.com/cwbudde/algo-vector/vector"
)

// operand is a parsed float64 vector of arity 2, 3 or 4.
type operand struct {
	n int
	c [4]float64
}

// unwrap strips one pair of enclosing brackets or parentheses, so "[-1,2]"
// and "(-1,2)" read like "-1,2" without starting with a dash.
func unwrap(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		switch {
		case s[0] == '[' && s[len(s)-1] == ']', s[0] == '(' && s[len(s)-1] == ')':
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

func parseOperand(s string) (operand, error) {
	parts := strings.Split(unwrap(s), ",")
	if len(parts) < 2 || len(parts) > 4 {
		return operand{}, fmt.Errorf("%w: %q has %d components, want 2 to 4",
			scalar.ErrInvalidArgument, s, len(parts))
	}
	op := operand{n: len(parts)}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return operand{}, fmt.Errorf("%w: component %d of %q: %v", scalar.ErrInvalidArgument, i, s, err)
		}
		op.c[i] = f
	}
	return op, nil
}

// parseAmount parses a scalar argument such as a lerp amount. Like operands
// it may be bracketed, which lets "[-0.5]" stand in for "-- -0.5".
func parseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(unwrap(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %v", scalar.ErrInvalidArgument, s, err)
	}
	return f, nil
}

func parsePair(a, b string) (operand, operand, error) {
	x, err := parseOperand(a)
	if err != nil {
		return operand{}, operand{}, err
	}
	y, err := parseOperand(b)
	if err != nil {
		return operand{}, operand{}, err
	}
	if x.n != y.n {
		return operand{}, operand{}, fmt.Errorf("%w: arity mismatch %d vs %d", scalar.ErrInvalidArgument, x.n, y.n)
	}
	return x, y, nil
}

func (o operand) v2() vec2.Vec[float64] { return vec2.New(o.c[0], o.c[1]) }
func (o operand) v3() vec3.Vec[float64] { return vec3.New(o.c[0], o.c[1], o.c[2]) }
func (o operand) v4() vec4.Vec[float64] { return vec4.New(o.c[0], o.c[1], o.c[2], o.c[3]) }

func (o operand) String() string {
	switch o.n {
	case 2:
		return o.v2().String()
	case 3:
		return o.v3().String()
	default:
		return o.v4().String()
	}
}

func (o operand) length() float64 {
	switch o.n {
	case 2:
		return vec2.Length(o.v2())
	case 3:
		return vec3.Length(o.v3())
	default:
		return vec4.Length(o.v4())
	}
}

func (o operand) normalize(allowZero bool) string {
	switch o.n {
	case 2:
		return vec2.NormalizeFallback(o.v2(), allowZero).String()
	case 3:
		return vec3.NormalizeFallback(o.v3(), allowZero).String()
	default:
		return vec4.NormalizeFallback(o.v4(), allowZero).String()
	}
}

func (o operand) dot(p operand) float64 {
	switch o.n {
	case 2:
		return o.v2().Dot(p.v2())
	case 3:
		return o.v3().Dot(p.v3())
	default:
		return o.v4().Dot(p.v4())
	}
}

func (o operand) cross(p operand) (string, error) {
	switch o.n {
	case 2:
		return scalar.FormatComponent(vec2.Cross(o.v2(), p.v2())), nil
	case 3:
		return vec3.Cross(o.v3(), p.v3()).String(), nil
	default:
		return "", fmt.Errorf("%w: cross product needs 2 or 3 components", scalar.ErrInvalidArgument)
	}
}

func (o operand) lerp(p operand, t float64) string {
	switch o.n {
	case 2:
		return vec2.Lerp(o.v2(), p.v2(), t).String()
	case 3:
		return vec3.Lerp(o.v3(), p.v3(), t).String()
	default:
		return vec4.Lerp(o.v4(), p.v4(), t).String()
	}
}

func convertAs[T scalar.Number](o operand) string {
	switch o.n {
	case 2:
		return vec2.Convert[T](o.v2()).String()
	case 3:
		return vec3.Convert[T](o.v3()).String()
	default:
		return vec4.Convert[T](o.v4()).String()
	}
}

func (o operand) convert(k vector.ScalarKind) (string, error) {
	switch k {
	case vector.KindUint8:
		return convertAs[uint8](o), nil
	case vector.KindInt8:
		return convertAs[int8](o), nil
	case vector.KindUint16:
		return convertAs[uint16](o), nil
	case vector.KindInt16:
		return convertAs[int16](o), nil
	case vector.KindUint32:
		return convertAs[uint32](o), nil
	case vector.KindInt32:
		return convertAs[int32](o), nil
	case vector.KindUint64:
		return convertAs[uint64](o), nil
	case vector.KindInt64:
		return convertAs[int64](o), nil
	case vector.KindFloat32:
		return convertAs[float32](o), nil
	case vector.KindFloat64:
		return convertAs[float64](o), nil
	}
	return "", fmt.Errorf("%w: unsupported kind %v", scalar.ErrInvalidArgument, k)
}

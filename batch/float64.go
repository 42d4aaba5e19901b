package batch

import (
	"fmt"

	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/internal/scratch"
	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/vec4"
)

// columns64 holds pooled per-component columns for n vectors.
type columns64 struct {
	bufs []*scratch.Buffer[float64]
}

func newColumns64(count, n int) *columns64 {
	c := &columns64{bufs: make([]*scratch.Buffer[float64], count)}
	for i := range c.bufs {
		c.bufs[i] = scratch.Float64.Get(n)
	}
	return c
}

func (c *columns64) col(i int) []float64 { return c.bufs[i].Data() }

func (c *columns64) release() {
	for _, b := range c.bufs {
		scratch.Float64.Put(b)
	}
}

// Lengths2 writes the length of src[i] to dst[i].
func Lengths2(dst []float64, src []vec2.Vec[float64]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	n := len(src)
	c := newColumns64(2, n)
	defer c.release()

	x, y := c.col(0), c.col(1)
	for i, v := range src {
		x[i], y[i] = v.X, v.Y
	}
	kernel.Active().Hypot(dst[:n], x, y)
	return nil
}

// LengthsSquared2 writes the squared length of src[i] to dst[i].
func LengthsSquared2(dst []float64, src []vec2.Vec[float64]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	n := len(src)
	c := newColumns64(2, n)
	defer c.release()

	x, y := c.col(0), c.col(1)
	for i, v := range src {
		x[i], y[i] = v.X, v.Y
	}
	kernel.Active().SumSquares(dst[:n], x, y)
	return nil
}

// Lengths3 writes the length of src[i] to dst[i].
func Lengths3(dst []float64, src []vec3.Vec[float64]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	n := len(src)
	c := newColumns64(3, n)
	defer c.release()

	x, y, z := c.col(0), c.col(1), c.col(2)
	for i, v := range src {
		x[i], y[i], z[i] = v.X, v.Y, v.Z
	}
	k := kernel.Active()
	out := dst[:n]
	k.Hypot(out, x, y)
	k.Hypot(out, out, z)
	return nil
}

// LengthsSquared3 writes the squared length of src[i] to dst[i].
func LengthsSquared3(dst []float64, src []vec3.Vec[float64]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	n := len(src)
	c := newColumns64(3, n)
	defer c.release()

	x, y, z := c.col(0), c.col(1), c.col(2)
	for i, v := range src {
		x[i], y[i], z[i] = v.X, v.Y, v.Z
	}
	k := kernel.Active()
	out := dst[:n]
	k.SumSquares(out, x, y)
	k.Mul(z, z, z)
	for i := range out {
		out[i] += z[i]
	}
	return nil
}

// Lengths4 writes the length of src[i] to dst[i].
func Lengths4(dst []float64, src []vec4.Vec[float64]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	n := len(src)
	c := newColumns64(4, n)
	defer c.release()

	x, y, z, w := c.col(0), c.col(1), c.col(2), c.col(3)
	for i, v := range src {
		x[i], y[i], z[i], w[i] = v.X, v.Y, v.Z, v.W
	}
	k := kernel.Active()
	out := dst[:n]
	k.Hypot(out, x, y)
	k.Hypot(z, z, w)
	k.Hypot(out, out, z)
	return nil
}

// Normalize2 writes Normalize(src[i]) to dst[i]. dst may alias src.
func Normalize2(dst, src []vec2.Vec[float64]) error {
	if err := scalar.CheckDestination(dst, src); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	lb := scratch.Float64.Get(len(src))
	defer scratch.Float64.Put(lb)

	lengths := lb.Data()
	if err := Lengths2(lengths, src); err != nil {
		return err
	}
	for i, v := range src {
		if l := lengths[i]; l != 0 {
			dst[i] = vec2.QuoScalar(v, l)
		} else {
			dst[i] = vec2.Vec[float64]{}
		}
	}
	return nil
}

func mulComponents[V any](
	dst, a, b []V,
	size int,
	flatten func([]float64, []V) error,
	unflatten func([]V, []float64) (int, error),
) error {
	if a == nil || b == nil || len(a) != len(b) {
		return fmt.Errorf("batch: %w: operand lengths %d and %d", scalar.ErrInvalidArgument, len(a), len(b))
	}
	if err := scalar.CheckDestination(dst, a); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	n := size * len(a)
	fa, fb := scratch.Float64.Get(n), scratch.Float64.Get(n)
	defer scratch.Float64.Put(fa)
	defer scratch.Float64.Put(fb)

	if err := flatten(fa.Data(), a); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err := flatten(fb.Data(), b); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	kernel.Active().Mul(fa.Data(), fa.Data(), fb.Data())
	if _, err := unflatten(dst, fa.Data()); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return nil
}

// MulComponents2 writes a[i].Mul(b[i]) to dst[i].
func MulComponents2(dst, a, b []vec2.Vec[float64]) error {
	return mulComponents(dst, a, b, vec2.Size, vec2.Flatten[float64], vec2.Unflatten[float64])
}

// MulComponents3 writes a[i].Mul(b[i]) to dst[i].
func MulComponents3(dst, a, b []vec3.Vec[float64]) error {
	return mulComponents(dst, a, b, vec3.Size, vec3.Flatten[float64], vec3.Unflatten[float64])
}

// MulComponents4 writes a[i].Mul(b[i]) to dst[i].
func MulComponents4(dst, a, b []vec4.Vec[float64]) error {
	return mulComponents(dst, a, b, vec4.Size, vec4.Flatten[float64], vec4.Unflatten[float64])
}

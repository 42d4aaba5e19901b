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

func flattenPair[V any](a, b []V, size int, flatten func([]float32, []V) error,
	fn func(fa, fb []float32) float32,
) (float32, error) {
	if a == nil || b == nil || len(a) != len(b) {
		return 0, fmt.Errorf("batch: %w: operand lengths %d and %d", scalar.ErrInvalidArgument, len(a), len(b))
	}
	n := size * len(a)
	fa, fb := scratch.Float32.Get(n), scratch.Float32.Get(n)
	defer scratch.Float32.Put(fa)
	defer scratch.Float32.Put(fb)

	if err := flatten(fa.Data(), a); err != nil {
		return 0, fmt.Errorf("batch: %w", err)
	}
	if err := flatten(fb.Data(), b); err != nil {
		return 0, fmt.Errorf("batch: %w", err)
	}
	return fn(fa.Data(), fb.Data()), nil
}

// InnerProduct2 returns the sum of a[i].Dot(b[i]) over all pairs.
func InnerProduct2(a, b []vec2.Vec[float32]) (float32, error) {
	return flattenPair(a, b, vec2.Size, vec2.Flatten[float32], kernel.Active().Dot32)
}

// InnerProduct3 returns the sum of a[i].Dot(b[i]) over all pairs.
func InnerProduct3(a, b []vec3.Vec[float32]) (float32, error) {
	return flattenPair(a, b, vec3.Size, vec3.Flatten[float32], kernel.Active().Dot32)
}

// InnerProduct4 returns the sum of a[i].Dot(b[i]) over all pairs.
func InnerProduct4(a, b []vec4.Vec[float32]) (float32, error) {
	return flattenPair(a, b, vec4.Size, vec4.Flatten[float32], kernel.Active().Dot32)
}

// Deviation2 returns sqrt(Σ a[i].DistanceSquared(b[i])), the distance
// between the two point sets taken as one long vector.
func Deviation2(a, b []vec2.Vec[float32]) (float32, error) {
	return flattenPair(a, b, vec2.Size, vec2.Flatten[float32], kernel.Active().Distance32)
}

// Deviation3 is Deviation2 for 3-component points.
func Deviation3(a, b []vec3.Vec[float32]) (float32, error) {
	return flattenPair(a, b, vec3.Size, vec3.Flatten[float32], kernel.Active().Distance32)
}

// Deviation4 is Deviation2 for 4-component points.
func Deviation4(a, b []vec4.Vec[float32]) (float32, error) {
	return flattenPair(a, b, vec4.Size, vec4.Flatten[float32], kernel.Active().Distance32)
}

// axisMeans returns the mean of each of the size component columns of the
// interleaved points produced by fill.
func axisMeans(n, size int, fill func(col int, dst []float32)) [4]float32 {
	buf := scratch.Float32.Get(n)
	defer scratch.Float32.Put(buf)

	sum := kernel.Active().Sum32
	var means [4]float32
	for c := range size {
		fill(c, buf.Data())
		means[c] = sum(buf.Data()) / float32(n)
	}
	return means
}

func checkPoints(n int) error {
	if n == 0 {
		return fmt.Errorf("batch: %w: centroid of no points", scalar.ErrInvalidArgument)
	}
	return nil
}

// Centroid2 returns the componentwise mean of points.
func Centroid2(points []vec2.Vec[float32]) (vec2.Vec[float32], error) {
	if err := checkPoints(len(points)); err != nil {
		return vec2.Vec[float32]{}, err
	}
	m := axisMeans(len(points), vec2.Size, func(c int, dst []float32) {
		for i, p := range points {
			dst[i] = p.Array()[c]
		}
	})
	return vec2.New(m[0], m[1]), nil
}

// Centroid3 returns the componentwise mean of points.
func Centroid3(points []vec3.Vec[float32]) (vec3.Vec[float32], error) {
	if err := checkPoints(len(points)); err != nil {
		return vec3.Vec[float32]{}, err
	}
	m := axisMeans(len(points), vec3.Size, func(c int, dst []float32) {
		for i, p := range points {
			dst[i] = p.Array()[c]
		}
	})
	return vec3.New(m[0], m[1], m[2]), nil
}

// Centroid4 returns the componentwise mean of points.
func Centroid4(points []vec4.Vec[float32]) (vec4.Vec[float32], error) {
	if err := checkPoints(len(points)); err != nil {
		return vec4.Vec[float32]{}, err
	}
	m := axisMeans(len(points), vec4.Size, func(c int, dst []float32) {
		for i, p := range points {
			dst[i] = p.Array()[c]
		}
	})
	return vec4.New(m[0], m[1], m[2], m[3]), nil
}

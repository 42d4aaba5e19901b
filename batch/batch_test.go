package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vector/internal/cpu"
	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/internal/testutil"
	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/vec4"
)

// eachBackend runs fn once with the detected kernels and once with the
// generic kernels forced.
func eachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	t.Run("detected", fn)
	t.Run("generic", func(t *testing.T) {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
		kernel.Reload()
		t.Cleanup(func() {
			cpu.ResetDetection()
			kernel.Reload()
		})
		require.Equal(t, "generic", kernel.Active().Name)
		fn(t)
	})
}

const numPoints = 37

func points2() []vec2.Vec[float64] {
	vals := testutil.DeterministicValues[float64](1, 10, 2*numPoints)
	out := make([]vec2.Vec[float64], numPoints)
	_, _ = vec2.Unflatten(out, vals)
	return out
}

func points3() []vec3.Vec[float64] {
	vals := testutil.DeterministicValues[float64](2, 10, 3*numPoints)
	out := make([]vec3.Vec[float64], numPoints)
	_, _ = vec3.Unflatten(out, vals)
	return out
}

func points4() []vec4.Vec[float64] {
	vals := testutil.DeterministicValues[float64](3, 10, 4*numPoints)
	out := make([]vec4.Vec[float64], numPoints)
	_, _ = vec4.Unflatten(out, vals)
	return out
}

func to32[V, W any](src []V, conv func(V) W) []W {
	out := make([]W, len(src))
	for i, v := range src {
		out[i] = conv(v)
	}
	return out
}

func TestLengths(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		p2, p3, p4 := points2(), points3(), points4()
		got := make([]float64, numPoints)

		require.NoError(t, Lengths2(got, p2))
		for i, v := range p2 {
			assert.InDelta(t, vec2.Length(v), got[i], 1e-12, "Lengths2[%d]", i)
		}
		require.NoError(t, LengthsSquared2(got, p2))
		for i, v := range p2 {
			assert.InDelta(t, v.LengthSquared(), got[i], 1e-10, "LengthsSquared2[%d]", i)
		}
		require.NoError(t, Lengths3(got, p3))
		for i, v := range p3 {
			assert.InDelta(t, vec3.Length(v), got[i], 1e-12, "Lengths3[%d]", i)
		}
		require.NoError(t, LengthsSquared3(got, p3))
		for i, v := range p3 {
			assert.InDelta(t, v.LengthSquared(), got[i], 1e-10, "LengthsSquared3[%d]", i)
		}
		require.NoError(t, Lengths4(got, p4))
		for i, v := range p4 {
			assert.InDelta(t, vec4.Length(v), got[i], 1e-12, "Lengths4[%d]", i)
		}
	})
}

func TestLengthsKeepSource(t *testing.T) {
	p3 := points3()
	orig := append([]vec3.Vec[float64](nil), p3...)
	got := make([]float64, numPoints)
	require.NoError(t, Lengths3(got, p3))
	require.NoError(t, LengthsSquared3(got, p3))
	assert.Equal(t, orig, p3)
}

func TestNormalize2(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		src := append(points2(), vec2.Vec[float64]{})
		dst := make([]vec2.Vec[float64], len(src))
		require.NoError(t, Normalize2(dst, src))
		for i, v := range src {
			want := vec2.Normalize(v)
			assert.True(t, vec2.NearlyEqual(want, dst[i], 1e-12), "Normalize2[%d] = %v, want %v", i, dst[i], want)
		}
		assert.Equal(t, vec2.Vec[float64]{}, dst[len(dst)-1])

		require.NoError(t, Normalize2(src, src))
		assert.Equal(t, dst, src)
	})
}

func TestMulComponents(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		a2, b2 := points2(), points2()[1:]
		a2 = a2[:len(b2)]
		d2 := make([]vec2.Vec[float64], len(a2))
		require.NoError(t, MulComponents2(d2, a2, b2))
		for i := range a2 {
			assert.Equal(t, a2[i].Mul(b2[i]), d2[i])
		}

		a3, b3 := points3(), points3()
		d3 := make([]vec3.Vec[float64], numPoints)
		require.NoError(t, MulComponents3(d3, a3, b3))
		for i := range a3 {
			assert.Equal(t, a3[i].Mul(b3[i]), d3[i])
		}

		a4 := points4()
		require.NoError(t, MulComponents4(a4, a4, a4))
		for i, v := range points4() {
			assert.Equal(t, v.Mul(v), a4[i])
		}
	})
}

func TestFloat32Reductions(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		a2 := to32(points2(), vec2.Convert[float32, float64])
		b2 := to32(points2(), func(v vec2.Vec[float64]) vec2.Vec[float32] {
			return vec2.Convert[float32](v.YX())
		})

		var dot, dist float64
		for i := range a2 {
			dot += float64(a2[i].Dot(b2[i]))
			dist += float64(a2[i].DistanceSquared(b2[i]))
		}
		got, err := InnerProduct2(a2, b2)
		require.NoError(t, err)
		assert.InDelta(t, dot, float64(got), 0.05)

		got, err = Deviation2(a2, b2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(dist), float64(got), 1e-3)

		a3 := to32(points3(), vec3.Convert[float32, float64])
		got, err = InnerProduct3(a3, a3)
		require.NoError(t, err)
		var sq float64
		for _, v := range a3 {
			sq += float64(v.LengthSquared())
		}
		assert.InDelta(t, sq, float64(got), 0.05)

		got, err = Deviation3(a3, a3)
		require.NoError(t, err)
		assert.Zero(t, got)

		a4 := to32(points4(), vec4.Convert[float32, float64])
		got, err = InnerProduct4(a4, a4)
		require.NoError(t, err)
		assert.Greater(t, got, float32(0))

		got, err = Deviation4(a4, a4)
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestCentroids(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		c2, err := Centroid2([]vec2.Vec[float32]{{X: 0, Y: 0}, {X: 2, Y: 4}, {X: 4, Y: 2}})
		require.NoError(t, err)
		assert.Equal(t, vec2.New[float32](2, 2), c2)

		c3, err := Centroid3([]vec3.Vec[float32]{{X: 1, Y: 2, Z: 3}, {X: 3, Y: 2, Z: 1}})
		require.NoError(t, err)
		assert.Equal(t, vec3.New[float32](2, 2, 2), c3)

		c4, err := Centroid4([]vec4.Vec[float32]{vec4.UnitW[float32]()})
		require.NoError(t, err)
		assert.Equal(t, vec4.UnitW[float32](), c4)
	})
}

func TestInvalidArguments(t *testing.T) {
	p2 := points2()
	f32 := to32(p2, vec2.Convert[float32, float64])

	tests := []struct {
		name string
		call func() error
	}{
		{"lengths nil dst", func() error { return Lengths2(nil, p2) }},
		{"lengths short dst", func() error { return Lengths2(make([]float64, numPoints-1), p2) }},
		{"lengths nil src", func() error { return Lengths3(make([]float64, 1), nil) }},
		{"squared short dst", func() error { return LengthsSquared2(make([]float64, 1), p2) }},
		{"normalize short dst", func() error { return Normalize2(p2[:1], p2) }},
		{"mul mismatched", func() error { return MulComponents2(p2, p2, p2[1:]) }},
		{"mul nil operand", func() error { return MulComponents3(nil, nil, nil) }},
		{"mul short dst", func() error { return MulComponents2(p2[:2], p2, p2) }},
		{"dot mismatched", func() error { _, err := InnerProduct2(f32, f32[1:]); return err }},
		{"dot nil", func() error { _, err := InnerProduct3(nil, nil); return err }},
		{"deviation mismatched", func() error { _, err := Deviation2(f32[1:], f32); return err }},
		{"centroid empty", func() error { _, err := Centroid2([]vec2.Vec[float32]{}); return err }},
		{"centroid nil", func() error { _, err := Centroid4(nil); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.call(), scalar.ErrInvalidArgument)
		})
	}
}

func TestEmptyInputs(t *testing.T) {
	require.NoError(t, Lengths2(make([]float64, 0), []vec2.Vec[float64]{}))
	require.NoError(t, MulComponents4([]vec4.Vec[float64]{}, []vec4.Vec[float64]{}, []vec4.Vec[float64]{}))

	got, err := InnerProduct2([]vec2.Vec[float32]{}, []vec2.Vec[float32]{})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func BenchmarkLengths3(b *testing.B) {
	src := points3()
	dst := make([]float64, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Lengths3(dst, src)
	}
}

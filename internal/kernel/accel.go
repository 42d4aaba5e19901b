//go:build amd64 || arm64

package kernel

import (
	"runtime"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

func init() {
	level := cpu.SIMDSSE2
	if runtime.GOARCH == "arm64" {
		level = cpu.SIMDNEON
	}

	Global.Register(Entry{
		Name:     "vecmath",
		Level:    level,
		Priority: 10,

		Hypot:      hypotVecmath,
		SumSquares: sumSquaresVecmath,
		Mul:        mulVecmath,
	})

	Global.Register(Entry{
		Name:     "vek32",
		Level:    level,
		Priority: 10,

		Dot32:      dot32Vek,
		Sum32:      sum32Vek,
		Distance32: distance32Vek,
	})
}

func hypotVecmath(dst, x, y []float64) {
	checkLen(len(dst), len(x), len(y))
	vecmath.Magnitude(dst, x, y)
}

func sumSquaresVecmath(dst, x, y []float64) {
	checkLen(len(dst), len(x), len(y))
	vecmath.Power(dst, x, y)
}

func mulVecmath(dst, a, b []float64) {
	checkLen(len(dst), len(a), len(b))
	vecmath.MulBlock(dst, a, b)
}

func dot32Vek(a, b []float32) float32 {
	checkLen(len(a), len(b))
	if len(a) == 0 {
		return 0
	}
	return vek32.Dot(a, b)
}

func sum32Vek(x []float32) float32 {
	if len(x) == 0 {
		return 0
	}
	return vek32.Sum(x)
}

func distance32Vek(a, b []float32) float32 {
	checkLen(len(a), len(b))
	if len(a) == 0 {
		return 0
	}
	return vek32.Distance(a, b)
}

// accelInfo reports the SIMD features vek32 detected.
func accelInfo() (features []string, accelerated bool) {
	info := vek32.Info()
	return info.CPUFeatures, info.Acceleration
}

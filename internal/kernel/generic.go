package kernel

import (
	"math"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

func init() {
	Global.Register(Entry{
		Name:     "generic",
		Level:    cpu.SIMDNone,
		Priority: 0,

		Hypot:      hypotGeneric,
		SumSquares: sumSquaresGeneric,
		Mul:        mulGeneric,
		Dot32:      dot32Generic,
		Sum32:      sum32Generic,
		Distance32: distance32Generic,
	})
}

func checkLen(n int, others ...int) {
	for _, m := range others {
		if m != n {
			panic("kernel: slice length mismatch")
		}
	}
}

func hypotGeneric(dst, x, y []float64) {
	checkLen(len(dst), len(x), len(y))
	for i := range dst {
		dst[i] = math.Sqrt(x[i]*x[i] + y[i]*y[i])
	}
}

func sumSquaresGeneric(dst, x, y []float64) {
	checkLen(len(dst), len(x), len(y))
	for i := range dst {
		dst[i] = x[i]*x[i] + y[i]*y[i]
	}
}

func mulGeneric(dst, a, b []float64) {
	checkLen(len(dst), len(a), len(b))
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func dot32Generic(a, b []float32) float32 {
	checkLen(len(a), len(b))
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func sum32Generic(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return sum
}

func distance32Generic(a, b []float32) float32 {
	checkLen(len(a), len(b))
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return float32(math.Sqrt(float64(sum)))
}

package cpu

import (
	"runtime"
	"testing"
)

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"sse2 present", Features{HasSSE2: true}, SIMDSSE2, true},
		{"sse2 missing", Features{HasAVX2: true}, SIMDSSE2, false},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"neon missing", Features{HasSSE2: true}, SIMDNEON, false},
		{"forced generic", Features{HasSSE2: true, ForceGeneric: true}, SIMDSSE2, false},
		{"forced generic none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasSSE2: true}, SIMDLevel(99), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Supports(tc.features, tc.level); got != tc.want {
				t.Fatalf("Supports(%+v, %v) = %v, want %v", tc.features, tc.level, got, tc.want)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(Features{ForceGeneric: true, Architecture: "test"})
	if f := DetectFeatures(); !f.ForceGeneric || f.Architecture != "test" {
		t.Fatalf("DetectFeatures = %+v, want forced set", f)
	}

	ResetDetection()
	if f := DetectFeatures(); f.ForceGeneric || f.Architecture != runtime.GOARCH {
		t.Fatalf("DetectFeatures after reset = %+v", f)
	}
}

func TestSIMDLevelString(t *testing.T) {
	for level, want := range map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDSSE2:      "SSE2",
		SIMDAVX2:      "AVX2",
		SIMDNEON:      "NEON",
		SIMDLevel(-1): "Unknown",
	} {
		if got := level.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(level), got, want)
		}
	}
}

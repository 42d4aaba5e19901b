// Package cpu detects the SIMD capabilities used to pick batch kernels.
//
// Detection runs once, lazily, and is cached. Tests can pin a feature set
// with SetForcedFeatures and undo it with ResetDetection.
package cpu

import "sync"

// SIMDLevel is the instruction set a kernel entry requires.
type SIMDLevel int

const (
	// SIMDNone marks pure Go kernels that run everywhere.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 is the amd64 baseline.
	SIMDSSE2
	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2
	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns the conventional name of the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the detected processor.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric restricts kernel selection to SIMDNone entries.
	ForceGeneric bool

	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features

	mu     sync.RWMutex
	forced *Features
)

// DetectFeatures returns the features of the running processor, or the
// forced set if one is installed.
func DetectFeatures() Features {
	mu.RLock()
	f := forced
	mu.RUnlock()
	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// SetForcedFeatures overrides detection until ResetDetection is called.
func SetForcedFeatures(f Features) {
	mu.Lock()
	defer mu.Unlock()
	forced = &f
}

// ResetDetection removes any forced feature set.
func ResetDetection() {
	mu.Lock()
	defer mu.Unlock()
	forced = nil
}

// Supports reports whether a kernel requiring level can run with features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

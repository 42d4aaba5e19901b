package scalar

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash combines the components in order into a 64-bit xxhash. Swapping two
// different components changes the result; equal component lists hash equal.
func Hash[T Number](components ...T) uint64 {
	var buf [32]byte
	b := buf[:0]
	for _, c := range components {
		b = binary.LittleEndian.AppendUint64(b, Bits(c))
	}
	return xxhash.Sum64(b)
}

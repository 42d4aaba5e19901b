package vector

import (
	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/vec4"
)

// Unsigned 8-bit.
type (
	Byte2 = vec2.Vec[uint8]
	Byte3 = vec3.Vec[uint8]
	Byte4 = vec4.Vec[uint8]
)

// Signed 8-bit.
type (
	SByte2 = vec2.Vec[int8]
	SByte3 = vec3.Vec[int8]
	SByte4 = vec4.Vec[int8]
)

// Unsigned 16-bit.
type (
	UShort2 = vec2.Vec[uint16]
	UShort3 = vec3.Vec[uint16]
	UShort4 = vec4.Vec[uint16]
)

// Signed 16-bit.
type (
	Short2 = vec2.Vec[int16]
	Short3 = vec3.Vec[int16]
	Short4 = vec4.Vec[int16]
)

// Unsigned 32-bit.
type (
	UInt2 = vec2.Vec[uint32]
	UInt3 = vec3.Vec[uint32]
	UInt4 = vec4.Vec[uint32]
)

// Signed 32-bit.
type (
	Int2 = vec2.Vec[int32]
	Int3 = vec3.Vec[int32]
	Int4 = vec4.Vec[int32]
)

// Unsigned 64-bit.
type (
	ULong2 = vec2.Vec[uint64]
	ULong3 = vec3.Vec[uint64]
	ULong4 = vec4.Vec[uint64]
)

// Signed 64-bit.
type (
	Long2 = vec2.Vec[int64]
	Long3 = vec3.Vec[int64]
	Long4 = vec4.Vec[int64]
)

// 32-bit float.
type (
	Vector2F = vec2.Vec[float32]
	Vector3F = vec3.Vec[float32]
	Vector4F = vec4.Vec[float32]
)

// 64-bit float.
type (
	Vector2D = vec2.Vec[float64]
	Vector3D = vec3.Vec[float64]
	Vector4D = vec4.Vec[float64]
)

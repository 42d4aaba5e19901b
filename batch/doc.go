// Package batch applies vector operations to whole slices of float vectors.
//
// The slices are split into component columns or flattened into interleaved
// storage and handed to slice kernels. On amd64 and arm64 the float64 kernels
// come from algo-vecmath and the float32 kernels from vek32; elsewhere, or
// when generic kernels are forced, pure Go loops are used. Results agree with
// the per-vector functions of packages vec2, vec3 and vec4 up to floating
// point rounding.
//
// Every function validates its slices and fails with
// scalar.ErrInvalidArgument instead of panicking.
package batch

// Package scalar provides the numeric traits shared by the fixed-size vector
// packages ([vec2], [vec3], [vec4]).
//
// The traits work for every scalar kind in [Number], including derived types
// such as `type Meters float32`:
//
//   - [IsFloat], [IsSigned], [BitSize]: kind probes
//   - [MinValue], [MaxValue]:          representable range
//   - [Min], [Max], [Clamp], [Abs]:    ordering helpers
//   - [AddSat], [SubSat]:             saturating arithmetic
//   - [Div]:                          division with an explicit zero check for integers
//   - [Lerp]:                         float64 interpolation converted back to T
//   - [Hash]:                         order-sensitive component hash
//
// Integer arithmetic everywhere else in the module wraps (two's complement),
// which is Go's native behavior. Saturation happens only through [AddSat],
// [SubSat] and [Clamp].
//
// [vec2]: https://pkg.go.dev/github.com/cwbudde/algo-vector/vec2
// [vec3]: https://pkg.go.dev/github.com/cwbudde/algo-vector/vec3
// [vec4]: https://pkg.go.dev/github.com/cwbudde/algo-vector/vec4
package scalar

// Package vector names the concrete members of the vector family.
//
// Every name is an alias of one of the generic types in packages vec2, vec3
// and vec4, so a [Byte2] is a vec2.Vec[uint8] and all of that package's
// methods and functions apply:
//
//	a := vector.Byte2{X: 250, Y: 250}
//	b := a.Add(vec2.Splat[uint8](10)) // X:4 Y:4, integer arithmetic wraps
//
// Conversions between members are explicit. Scalar kinds change through the
// Convert functions of each arity package; arity widens through FromVec2 and
// FromVec3 (new trailing components are 1) and narrows through the Vec2 and
// Vec3 methods.
//
// [Kinds] lists the family for tooling.
package vector

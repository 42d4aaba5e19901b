// Package vec4 implements the 4-component vector value type [Vec].
//
// Widening conversions from package vec2 and vec3 fill the new trailing
// components with 1, so vec4.FromVec3(p) is the homogeneous point (p, 1).
package vec4

// Package vec3 implements the 3-component vector value type [Vec].
//
// It mirrors package vec2 and adds the 3D cross product, coordinate
// transforms that divide by w, and conversions to and from 2-component
// vectors. Widening a vec2 fills Z with 1.
package vec3

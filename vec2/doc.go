// Package vec2 implements the 2-component vector value type [Vec] over every
// scalar kind in [scalar.Number].
//
// Operations valid for every kind are methods (Add, Dot, Clamp, ...).
// Operations that only make sense for floats ([Length], [Normalize],
// [CatmullRom], [Transform], ...) or signed kinds ([Negate], [Abs]) are
// package functions with a narrower constraint.
//
// Integer arithmetic wraps:
//
//	vec2.New[uint8](250, 250).Add(vec2.Splat[uint8](10)) // X:4 Y:4
//
// Integer division by zero fails with [scalar.ErrDivisionByZero]; float
// division follows IEEE-754.
package vec2

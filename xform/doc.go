// Package xform provides the rotation and matrix value types consumed by the
// Transform and Rotate functions of the vector packages.
//
// All matrices use the row-vector convention: a point p is transformed as
// p' = p * M, and translation lives in the last row (M31/M32 for
// [Matrix3x2], M41..M43 for [Matrix4x4]). Field Mrc is row r, column c.
//
// Quaternions rotate as v' = q v q⁻¹ and are expected to be unit length;
// nothing here renormalizes implicitly.
package xform

// seehuhn.de/go/colortool - colour space conversion matrices
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cie

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a column vector with three components.
//
// Depending on context, this holds CIE XYZ tristimulus values, linear RGB
// values or cone responses.
type Vec3 f64.Vec3

// Quo divides v by w, component by component.
func (v Vec3) Quo(w Vec3) (Vec3, error) {
	for i, wi := range w {
		if wi == 0 {
			return Vec3{}, &DomainError{
				Op:  "Quo",
				Err: fmt.Errorf("component %d: %w", i, ErrZeroDivision),
			}
		}
	}
	return Vec3{v[0] / w[0], v[1] / w[1], v[2] / w[2]}, nil
}

// Scale returns the vector v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{s * v[0], s * v[1], s * v[2]}
}

// IsFinite reports whether all components of v are finite.
func (v Vec3) IsFinite() bool {
	for _, vi := range v {
		if math.IsNaN(vi) || math.IsInf(vi, 0) {
			return false
		}
	}
	return true
}

// Matrix is a 3x3 matrix, stored in row-major order.
//
// If M = [a b c d e f g h i] is a [Matrix], then M corresponds to
//
//	/ a b c \
//	| d e f |
//	\ g h i /
//
// and a column vector v is mapped to M*v.
type Matrix f64.Mat3

// IdentityMatrix is the 3x3 identity matrix.
var IdentityMatrix = Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}

// detTolerance is the smallest absolute determinant for which [Matrix.Inv]
// still returns a result.
const detTolerance = 1e-10

// FromColumns returns the matrix with columns a, b and c.
func FromColumns(a, b, c Vec3) Matrix {
	return Matrix{
		a[0], b[0], c[0],
		a[1], b[1], c[1],
		a[2], b[2], c[2],
	}
}

// Diag returns the diagonal matrix with v on the diagonal.
func Diag(v Vec3) Matrix {
	return Matrix{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Col returns column i of M.
func (M Matrix) Col(i int) Vec3 {
	return Vec3{M[i], M[3+i], M[6+i]}
}

// Apply computes the matrix-vector product M*v.
func (M Matrix) Apply(v Vec3) Vec3 {
	return Vec3{
		M[0]*v[0] + M[1]*v[1] + M[2]*v[2],
		M[3]*v[0] + M[4]*v[1] + M[5]*v[2],
		M[6]*v[0] + M[7]*v[1] + M[8]*v[2],
	}
}

// Mul computes the matrix product M*B.
// The result is equivalent to first applying B and then M.
func (M Matrix) Mul(B Matrix) Matrix {
	var C Matrix
	for i := range 3 {
		for j := range 3 {
			C[3*i+j] = M[3*i]*B[j] + M[3*i+1]*B[3+j] + M[3*i+2]*B[6+j]
		}
	}
	return C
}

// Det returns the determinant of M.
func (M Matrix) Det() float64 {
	return M[0]*(M[4]*M[8]-M[5]*M[7]) -
		M[1]*(M[3]*M[8]-M[5]*M[6]) +
		M[2]*(M[3]*M[7]-M[4]*M[6])
}

// Inv computes the inverse of M.
//
// If M is singular, or so close to singular that the inverse cannot be
// represented, a [*DomainError] wrapping [ErrSingular] is returned.
func (M Matrix) Inv() (Matrix, error) {
	// cofactors
	A := M[4]*M[8] - M[5]*M[7]
	B := -(M[3]*M[8] - M[5]*M[6])
	C := M[3]*M[7] - M[4]*M[6]
	D := -(M[1]*M[8] - M[2]*M[7])
	E := M[0]*M[8] - M[2]*M[6]
	F := -(M[0]*M[7] - M[1]*M[6])
	G := M[1]*M[5] - M[2]*M[4]
	H := -(M[0]*M[5] - M[2]*M[3])
	I := M[0]*M[4] - M[1]*M[3]

	det := M[0]*A + M[1]*B + M[2]*C
	if math.IsNaN(det) || math.Abs(det) < detTolerance {
		return Matrix{}, &DomainError{
			Op:  "Inv",
			Err: fmt.Errorf("%w (det=%g)", ErrSingular, det),
		}
	}

	inv := Matrix{
		A / det, D / det, G / det,
		B / det, E / det, H / det,
		C / det, F / det, I / det,
	}
	if !inv.IsFinite() {
		return Matrix{}, &DomainError{Op: "Inv", Err: ErrSingular}
	}
	return inv, nil
}

// IsFinite reports whether all entries of M are finite.
func (M Matrix) IsFinite() bool {
	for _, x := range M {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Row returns row i of M.
func (M Matrix) Row(i int) Vec3 {
	return Vec3{M[3*i], M[3*i+1], M[3*i+2]}
}

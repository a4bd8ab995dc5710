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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Primaries holds the chromaticities of the red, green and blue primaries
// of an RGB colour space.
type Primaries struct {
	R, G, B vec.Vec2
}

// RGBToXYZ returns the matrix which maps linear RGB values to CIE XYZ.
// The primaries r, g and b are given as tristimulus vectors, for example as
// returned by [XYToXYZ].
//
// The columns of the result are multiples of r, g and b, scaled such that
// RGB=(1, 1, 1) is mapped to the given white point.
// If the primaries are linearly dependent, a [*DomainError] wrapping
// [ErrSingular] is returned.
func RGBToXYZ(r, g, b, white Vec3) (Matrix, error) {
	M := FromColumns(r, g, b)
	Minv, err := M.Inv()
	if err != nil {
		// Inv returns a *DomainError; keep only its cause.
		return Matrix{}, &DomainError{
			Op:  "RGBToXYZ",
			Err: fmt.Errorf("degenerate primaries: %w", errors.Unwrap(err)),
		}
	}

	S := Minv.Apply(white)
	return FromColumns(r.Scale(S[0]), g.Scale(S[1]), b.Scale(S[2])), nil
}

// RGBToXYZ returns the RGB to XYZ matrix for the primaries p and the
// white point with chromaticity white.
func (p Primaries) RGBToXYZ(white vec.Vec2) (Matrix, error) {
	var cols [3]Vec3
	for i, xy := range []vec.Vec2{p.R, p.G, p.B} {
		v, err := XYToXYZ(xy)
		if err != nil {
			return Matrix{}, fmt.Errorf("primary %c: %w", "RGB"[i], err)
		}
		cols[i] = v
	}
	w, err := XYToXYZ(white)
	if err != nil {
		return Matrix{}, fmt.Errorf("white point: %w", err)
	}
	return RGBToXYZ(cols[0], cols[1], cols[2], w)
}

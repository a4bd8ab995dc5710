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

// Package adapt computes chromatic adaptation matrices.
//
// A chromatic adaptation matrix maps CIE XYZ values seen under one white
// point to the corresponding values under another white point.  The
// matrices are built by the von Kries construction: both white points are
// projected into a cone response space, the cone responses are scaled
// independently, and the result is projected back.  The cone response space
// is selected by a [Method].
package adapt

import (
	"errors"
	"fmt"

	"seehuhn.de/go/colortool/cie"
)

// ErrInvalidMethod is returned by [Matrix] for methods which do not describe
// a computable adaptation, in particular for [None].
var ErrInvalidMethod = errors.New("invalid adaptation method")

// Matrix returns the matrix which adapts XYZ values from the white point src
// to the white point dst, using the cone response model of method m.
//
// The result A satisfies A*src = dst.  If one of the cone responses of src
// is zero, or if the white points are too extreme for the result to be
// finite, a [*cie.DomainError] is returned.
func Matrix(src, dst cie.Vec3, m Method) (cie.Matrix, error) {
	if !m.IsValid() {
		return cie.Matrix{}, fmt.Errorf("adapt: %w %s", ErrInvalidMethod, m)
	}

	M := m.ConeResponse()
	Minv, err := M.Inv()
	if err != nil {
		return cie.Matrix{}, err
	}

	srcCone := M.Apply(src)
	dstCone := M.Apply(dst)
	gain, err := dstCone.Quo(srcCone)
	if err != nil {
		return cie.Matrix{}, fmt.Errorf("adapt: %s cone response of source white: %w", m, err)
	}
	if !gain.IsFinite() {
		return cie.Matrix{}, &cie.DomainError{
			Op:  "adapt.Matrix",
			Err: fmt.Errorf("%w: %s cone gain %v", cie.ErrOutOfRange, m, gain),
		}
	}

	A := Minv.Mul(cie.Diag(gain)).Mul(M)
	if !A.IsFinite() {
		return cie.Matrix{}, &cie.DomainError{
			Op:  "adapt.Matrix",
			Err: fmt.Errorf("%w: %s adaptation matrix", cie.ErrOutOfRange, m),
		}
	}
	return A, nil
}

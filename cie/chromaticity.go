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

	"seehuhn.de/go/geom/vec"
)

// XYToXYZ converts the chromaticity p=(x, y) to the tristimulus vector
// with luminance Y=1:
//
//	X = x/y,  Y = 1,  Z = (1-x-y)/y
//
// If y is zero, or p is not finite, or y is so small that X or Z overflows,
// a [*DomainError] is returned.
func XYToXYZ(p vec.Vec2) (Vec3, error) {
	if !isFinite(p.X) || !isFinite(p.Y) {
		return Vec3{}, &DomainError{
			Op:  "XYToXYZ",
			Err: fmt.Errorf("%w: chromaticity (%g, %g)", ErrOutOfRange, p.X, p.Y),
		}
	}
	if p.Y == 0 {
		return Vec3{}, &DomainError{
			Op:  "XYToXYZ",
			Err: fmt.Errorf("%w: chromaticity (%g, 0)", ErrZeroDivision, p.X),
		}
	}
	v := Vec3{p.X / p.Y, 1, (1 - p.X - p.Y) / p.Y}
	if !v.IsFinite() {
		return Vec3{}, &DomainError{
			Op:  "XYToXYZ",
			Err: fmt.Errorf("%w: chromaticity (%g, %g)", ErrOutOfRange, p.X, p.Y),
		}
	}
	return v, nil
}

// DaylightXY returns the chromaticity of the CIE daylight illuminant with
// correlated colour temperature cct (in kelvin).
//
// The CIE daylight locus is only defined for 4000K <= cct <= 25000K.
// For other temperatures a [*DomainError] wrapping [ErrOutOfRange] is
// returned.
func DaylightXY(cct float64) (vec.Vec2, error) {
	T := cct
	T2 := T * T
	T3 := T2 * T

	var x float64
	switch {
	case T >= 4000 && T <= 7000:
		x = -4.6070e9/T3 + 2.9678e6/T2 + 0.09911e3/T + 0.244063
	case T > 7000 && T <= 25000:
		x = -2.0064e9/T3 + 1.9018e6/T2 + 0.24748e3/T + 0.237040
	default:
		return vec.Vec2{}, &DomainError{
			Op:  "DaylightXY",
			Err: fmt.Errorf("%w: %gK not in [4000K, 25000K]", ErrOutOfRange, cct),
		}
	}
	y := -3.000*x*x + 2.870*x - 0.275

	return vec.Vec2{X: x, Y: y}, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

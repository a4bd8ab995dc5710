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

// Package cie implements the CIE 1931 colorimetry needed to build colour
// space conversion matrices.
//
// Chromaticity coordinates are represented as [vec.Vec2] values, with the
// x coordinate in the X field and the y coordinate in the Y field.
// Tristimulus values are represented by [Vec3], and all linear maps between
// RGB, XYZ and cone response spaces by the fixed size [Matrix] type.
//
// The main entry points are:
//   - [XYToXYZ]: convert a chromaticity to a tristimulus vector with Y=1
//   - [RGBToXYZ]: build the RGB to XYZ matrix of an RGB colour space
//   - [DaylightXY]: chromaticity of a CIE daylight illuminant
//
// All functions are pure.  Numerical problems, like a zero denominator or a
// singular matrix, are reported as [*DomainError] values.
package cie

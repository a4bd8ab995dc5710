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

// Package colortool computes the matrices needed to convert linear RGB
// values between colour spaces, including chromatic adaptation between
// different white points.
//
// Colour spaces and illuminants are looked up by name in a
// [registry.Registry].  There are two kinds of computation:
//   - [ColorspaceTransform] finds the single matrix which maps RGB values in
//     one colour space to RGB values in another colour space.
//   - [IlluminantAdaptation] finds the chromatic adaptation matrix between
//     the white points of two illuminants.
//
// Both are controlled by an [Options] value, which selects the input and
// output names and the chromatic adaptation method.
//
// The sub-packages contain the building blocks: package cie for chromaticity
// coordinates and RGB to XYZ matrices, package adapt for chromatic
// adaptation, and package registry for the tables of named colour spaces and
// illuminants.
package colortool

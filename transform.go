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

package colortool

import (
	"errors"
	"fmt"

	"seehuhn.de/go/colortool/adapt"
	"seehuhn.de/go/colortool/cie"
	"seehuhn.de/go/colortool/registry"
)

// Options selects what to compute.
//
// An Options value is filled in once, for example from command line
// arguments, and is not modified afterwards.
type Options struct {
	// Input and Output are the names of the source and destination colour
	// spaces (for [ColorspaceTransform]) or illuminants (for
	// [IlluminantAdaptation]).
	Input  string
	Output string

	// Method is the chromatic adaptation method.  This must be one of
	// the methods returned by [adapt.Methods].
	Method adapt.Method
}

// SpaceTransform is the result of [ColorspaceTransform].
type SpaceTransform struct {
	Input  *registry.ColorSpace
	Output *registry.ColorSpace
	Method adapt.Method

	// InputWhite and OutputWhite are the white points of the two colour
	// spaces, as XYZ values with Y=1.
	InputWhite  cie.Vec3
	OutputWhite cie.Vec3

	// InputXYZ maps input RGB to XYZ, XYZToInput is its inverse.
	InputXYZ   cie.Matrix
	XYZToInput cie.Matrix

	// OutputXYZ maps output RGB to XYZ, XYZToOutput is its inverse.
	OutputXYZ   cie.Matrix
	XYZToOutput cie.Matrix

	// Adaptation maps XYZ values relative to InputWhite to XYZ values
	// relative to OutputWhite.
	Adaptation cie.Matrix

	// Transform maps input RGB values to output RGB values.
	Transform cie.Matrix
}

// WhitePointAdaptation is the result of [IlluminantAdaptation].
type WhitePointAdaptation struct {
	Input  *registry.Illuminant
	Output *registry.Illuminant
	Method adapt.Method

	InputWhite  cie.Vec3
	OutputWhite cie.Vec3

	Adaptation cie.Matrix
}

// ColorspaceTransform computes the matrices for converting linear RGB values
// from the colour space opt.Input to the colour space opt.Output.
//
// If one of the names is not in the registry, a [*registry.NotFoundError] is
// returned.  Numerical problems, for example degenerate primaries, are
// reported as [*cie.DomainError].
func ColorspaceTransform(reg *registry.Registry, opt *Options) (*SpaceTransform, error) {
	if !opt.Method.IsValid() {
		return nil, fmt.Errorf("%w %s", adapt.ErrInvalidMethod, opt.Method)
	}

	in, err := reg.ColorSpace(opt.Input)
	if err != nil {
		return nil, err
	}
	out, err := reg.ColorSpace(opt.Output)
	if err != nil {
		return nil, err
	}

	res := &SpaceTransform{
		Input:  in,
		Output: out,
		Method: opt.Method,
	}

	res.InputXYZ, res.XYZToInput, res.InputWhite, err = spaceMatrices(in)
	if err != nil {
		return nil, err
	}
	res.OutputXYZ, res.XYZToOutput, res.OutputWhite, err = spaceMatrices(out)
	if err != nil {
		return nil, err
	}

	res.Adaptation, err = adapt.Matrix(res.InputWhite, res.OutputWhite, opt.Method)
	if err != nil {
		return nil, err
	}

	res.Transform, err = ComposeTransform(res.InputXYZ, res.Adaptation, res.OutputXYZ)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// spaceMatrices returns the RGB to XYZ matrix of cs, its inverse, and the
// white point of cs.
func spaceMatrices(cs *registry.ColorSpace) (toXYZ, fromXYZ cie.Matrix, white cie.Vec3, err error) {
	toXYZ, err = cs.RGBToXYZ()
	if err != nil {
		return toXYZ, fromXYZ, white, fmt.Errorf("color space %q: %w", cs.Name, err)
	}
	fromXYZ, err = toXYZ.Inv()
	if err != nil {
		return toXYZ, fromXYZ, white, fmt.Errorf("color space %q: %w", cs.Name, err)
	}
	white, err = cie.XYToXYZ(cs.WhitePoint)
	if err != nil {
		return toXYZ, fromXYZ, white, fmt.Errorf("color space %q: %w", cs.Name, err)
	}
	return toXYZ, fromXYZ, white, nil
}

// IlluminantAdaptation computes the chromatic adaptation matrix from the
// white point of illuminant opt.Input to the white point of illuminant
// opt.Output.
func IlluminantAdaptation(reg *registry.Registry, opt *Options) (*WhitePointAdaptation, error) {
	if !opt.Method.IsValid() {
		return nil, fmt.Errorf("%w %s", adapt.ErrInvalidMethod, opt.Method)
	}

	in, err := reg.Illuminant(opt.Input)
	if err != nil {
		return nil, err
	}
	out, err := reg.Illuminant(opt.Output)
	if err != nil {
		return nil, err
	}

	res := &WhitePointAdaptation{
		Input:  in,
		Output: out,
		Method: opt.Method,
	}
	res.InputWhite, err = cie.XYToXYZ(in.WhitePoint)
	if err != nil {
		return nil, fmt.Errorf("illuminant %q: %w", in.Name, err)
	}
	res.OutputWhite, err = cie.XYToXYZ(out.WhitePoint)
	if err != nil {
		return nil, fmt.Errorf("illuminant %q: %w", out.Name, err)
	}

	res.Adaptation, err = adapt.Matrix(res.InputWhite, res.OutputWhite, opt.Method)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ComposeTransform returns the matrix out⁻¹·adaptation·in, which maps RGB
// values of the input space to RGB values of the output space.
//
// The arguments are the RGB to XYZ matrix of the input space, a chromatic
// adaptation matrix, and the RGB to XYZ matrix of the output space.
// If out is not invertible, a [*cie.DomainError] is returned.
func ComposeTransform(in, adaptation, out cie.Matrix) (cie.Matrix, error) {
	outInv, err := out.Inv()
	if err != nil {
		return cie.Matrix{}, err
	}
	return outInv.Mul(adaptation).Mul(in), nil
}

// IsNotFound reports whether err is caused by an unknown colour space or
// illuminant name.
func IsNotFound(err error) bool {
	var nf *registry.NotFoundError
	return errors.As(err, &nf)
}

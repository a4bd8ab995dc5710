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

// Package report formats the results of colortool computations for
// display.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colortool"
	"seehuhn.de/go/colortool/cie"
	"seehuhn.de/go/colortool/registry"
)

// DefaultPrecision is the number of digits after the decimal point used
// when Text.Precision is zero.
const DefaultPrecision = 6

// Text writes results as human readable text, one "info:" line per item.
type Text struct {
	W io.Writer

	// Precision is the number of digits printed after the decimal point.
	// If this is zero, DefaultPrecision is used.
	Precision int

	// Verbose enables printing of chromaticities and white points.
	Verbose bool
}

// SpaceTransform writes the matrices of a colour space conversion.
func (t *Text) SpaceTransform(res *colortool.SpaceTransform) error {
	p := t.printer()

	p.info("input color space: " + res.Input.Name)
	t.space(p, res.Input, res.InputXYZ, res.XYZToInput)
	p.info("output color space: " + res.Output.Name)
	t.space(p, res.Output, res.OutputXYZ, res.XYZToOutput)

	p.info("whitepoint adaptation: " + res.Method.String())
	p.matrix("    matrix: ", res.Adaptation)
	if t.Verbose {
		p.info("input color space: " + res.Input.Name)
		p.point("    whitepoint: ", res.Input.WhitePoint)
		p.vector("    whitepoint xyz: ", res.InputWhite)
		p.info("output color space: " + res.Output.Name)
		p.point("    whitepoint: ", res.Output.WhitePoint)
		p.vector("    whitepoint xyz: ", res.OutputWhite)
	}

	p.info("input to output transformation")
	p.matrix("    matrix: ", res.Transform)
	return p.err
}

func (t *Text) space(p *printer, cs *registry.ColorSpace, toXYZ, fromXYZ cie.Matrix) {
	if t.Verbose {
		pr := cs.Primaries
		p.info("  XY")
		p.point("    r: ", pr.R)
		p.point("    g: ", pr.G)
		p.point("    b: ", pr.B)
		p.point("    whitepoint: ", cs.WhitePoint)

		// tristimulus values with Y=1, before scaling to the white point
		p.info("  XYZ")
		p.xyz("    r: ", pr.R)
		p.xyz("    g: ", pr.G)
		p.xyz("    b: ", pr.B)
		p.xyz("    whitepoint: ", cs.WhitePoint)
	}
	p.info("  RGB XYZ")
	p.matrix("    matrix: ", toXYZ)
	p.info("  XYZ RGB")
	p.matrix("    matrix: ", fromXYZ)
}

// WhitePointAdaptation writes the chromatic adaptation matrix between two
// illuminants.
func (t *Text) WhitePointAdaptation(res *colortool.WhitePointAdaptation) error {
	p := t.printer()

	p.info("input illuminant: " + res.Input.Name)
	if t.Verbose {
		t.illuminant(p, res.Input, res.InputWhite)
	}
	p.info("output illuminant: " + res.Output.Name)
	if t.Verbose {
		t.illuminant(p, res.Output, res.OutputWhite)
	}

	p.info("whitepoint adaptation: " + res.Method.String())
	p.matrix("    matrix: ", res.Adaptation)
	return p.err
}

func (t *Text) illuminant(p *printer, ill *registry.Illuminant, white cie.Vec3) {
	if ill.Description != "" {
		p.info("    description: " + ill.Description)
	}
	if ill.CCT > 0 {
		p.info("    cct: " + strconv.FormatFloat(ill.CCT, 'f', -1, 64) + "K")
	}
	p.point("    whitepoint: ", ill.WhitePoint)
	p.vector("    whitepoint xyz: ", white)
}

// Names writes a heading followed by one indented line per name.
func (t *Text) Names(heading string, names []string) error {
	p := t.printer()
	p.info(heading)
	for _, name := range names {
		p.info("    " + name)
	}
	return p.err
}

func (t *Text) printer() *printer {
	prec := t.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}
	return &printer{w: t.W, prec: prec}
}

// printer keeps the first write error, so that callers need to check only
// once at the end.
type printer struct {
	w    io.Writer
	prec int
	err  error
}

func (p *printer) info(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, "info: "+s)
}

func (p *printer) point(label string, v vec.Vec2) {
	p.info(label + p.join(v.X, v.Y))
}

func (p *printer) vector(label string, v cie.Vec3) {
	p.info(label + p.join(v[:]...))
}

func (p *printer) xyz(label string, xy vec.Vec2) {
	v, err := cie.XYToXYZ(xy)
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		return
	}
	p.vector(label, v)
}

func (p *printer) matrix(label string, M cie.Matrix) {
	p.info(strings.TrimSuffix(label, " "))
	for i := range 3 {
		p.info("    " + p.join(M[3*i:3*i+3]...))
	}
}

func (p *printer) join(xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		s := strconv.FormatFloat(x, 'f', p.prec, 64)
		if s[0] == '-' && strings.Trim(s, "-0.") == "" {
			s = s[1:]
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

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

package registry

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colortool/cie"
)

// The raw types mirror the table layout.  Numeric fields are pointers, so
// that missing values can be told apart from zeros.

type rawPoint struct {
	X *float64 `json:"x" toml:"x" yaml:"x"`
	Y *float64 `json:"y" toml:"y" yaml:"y"`
}

type rawPrimaries struct {
	R *rawPoint `json:"R" toml:"R" yaml:"R"`
	G *rawPoint `json:"G" toml:"G" yaml:"G"`
	B *rawPoint `json:"B" toml:"B" yaml:"B"`
}

type rawSpace struct {
	Description string        `json:"description" toml:"description" yaml:"description"`
	Transfer    string        `json:"transfer" toml:"transfer" yaml:"transfer"`
	Primaries   *rawPrimaries `json:"primaries" toml:"primaries" yaml:"primaries"`
	WhitePoint  *rawPoint     `json:"whitepoint" toml:"whitepoint" yaml:"whitepoint"`
}

type rawIlluminant struct {
	Description string    `json:"description" toml:"description" yaml:"description"`
	WhitePoint  *rawPoint `json:"whitepoint" toml:"whitepoint" yaml:"whitepoint"`
	CCT         *float64  `json:"cct" toml:"cct" yaml:"cct"`
}

// fieldError is turned into a ConfigError by the caller, who knows the
// source and entry names.
type fieldError struct {
	field string
	err   error
}

func (p *rawPoint) toVec(field string) (vec.Vec2, *fieldError) {
	if p == nil {
		return vec.Vec2{}, &fieldError{field, ErrMissing}
	}
	x, ferr := getNumber(p.X, field+".x")
	if ferr != nil {
		return vec.Vec2{}, ferr
	}
	y, ferr := getNumber(p.Y, field+".y")
	if ferr != nil {
		return vec.Vec2{}, ferr
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func getNumber(x *float64, field string) (float64, *fieldError) {
	if x == nil {
		return 0, &fieldError{field, ErrMissing}
	}
	if math.IsNaN(*x) || math.IsInf(*x, 0) {
		return 0, &fieldError{field, ErrInvalid}
	}
	return *x, nil
}

func (raw *rawSpace) toColorSpace(name string) (*ColorSpace, *fieldError) {
	if raw.Primaries == nil {
		return nil, &fieldError{"primaries", ErrMissing}
	}
	R, ferr := raw.Primaries.R.toVec("primaries.R")
	if ferr != nil {
		return nil, ferr
	}
	G, ferr := raw.Primaries.G.toVec("primaries.G")
	if ferr != nil {
		return nil, ferr
	}
	B, ferr := raw.Primaries.B.toVec("primaries.B")
	if ferr != nil {
		return nil, ferr
	}
	white, ferr := raw.WhitePoint.toVec("whitepoint")
	if ferr != nil {
		return nil, ferr
	}

	cs := &ColorSpace{
		Name:        name,
		Description: raw.Description,
		Transfer:    raw.Transfer,
		Primaries:   cie.Primaries{R: R, G: G, B: B},
		WhitePoint:  white,
	}
	return cs, nil
}

func (raw *rawIlluminant) toIlluminant(name string) (*Illuminant, *fieldError) {
	ill := &Illuminant{
		Name:        name,
		Description: raw.Description,
	}

	switch {
	case raw.WhitePoint != nil && raw.CCT != nil:
		return nil, &fieldError{"cct", fmt.Errorf("%w: both whitepoint and cct given", ErrInvalid)}
	case raw.CCT != nil:
		cct, ferr := getNumber(raw.CCT, "cct")
		if ferr != nil {
			return nil, ferr
		}
		white, err := cie.DaylightXY(cct)
		if err != nil {
			return nil, &fieldError{"cct", err}
		}
		ill.WhitePoint = white
		ill.CCT = cct
	default:
		white, ferr := raw.WhitePoint.toVec("whitepoint")
		if ferr != nil {
			return nil, ferr
		}
		ill.WhitePoint = white
	}
	return ill, nil
}

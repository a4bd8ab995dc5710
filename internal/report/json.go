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

package report

import (
	"encoding/json"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colortool"
	"seehuhn.de/go/colortool/adapt"
	"seehuhn.de/go/colortool/cie"
	"seehuhn.de/go/colortool/registry"
)

// Matrices are written as three rows of three numbers.
type jsonMatrix [3][3]float64

func toJSONMatrix(M cie.Matrix) jsonMatrix {
	return jsonMatrix{
		{M[0], M[1], M[2]},
		{M[3], M[4], M[5]},
		{M[6], M[7], M[8]},
	}
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func toJSONPoint(p vec.Vec2) jsonPoint {
	return jsonPoint{X: p.X, Y: p.Y}
}

type jsonSpace struct {
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	Transfer      string               `json:"transfer,omitempty"`
	Primaries     map[string]jsonPoint `json:"primaries"`
	WhitePoint    jsonPoint            `json:"whitepoint"`
	WhitePointXYZ [3]float64           `json:"whitepointXYZ"`
	RGBToXYZ      jsonMatrix           `json:"rgbToXYZ"`
	XYZToRGB      jsonMatrix           `json:"xyzToRGB"`
}

func toJSONSpace(cs *registry.ColorSpace, white cie.Vec3, toXYZ, fromXYZ cie.Matrix) *jsonSpace {
	return &jsonSpace{
		Name:        cs.Name,
		Description: cs.Description,
		Transfer:    cs.Transfer,
		Primaries: map[string]jsonPoint{
			"R": toJSONPoint(cs.Primaries.R),
			"G": toJSONPoint(cs.Primaries.G),
			"B": toJSONPoint(cs.Primaries.B),
		},
		WhitePoint:    toJSONPoint(cs.WhitePoint),
		WhitePointXYZ: white,
		RGBToXYZ:      toJSONMatrix(toXYZ),
		XYZToRGB:      toJSONMatrix(fromXYZ),
	}
}

type jsonIlluminant struct {
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	CCT           float64    `json:"cct,omitempty"`
	WhitePoint    jsonPoint  `json:"whitepoint"`
	WhitePointXYZ [3]float64 `json:"whitepointXYZ"`
}

func toJSONIlluminant(ill *registry.Illuminant, white cie.Vec3) *jsonIlluminant {
	return &jsonIlluminant{
		Name:          ill.Name,
		Description:   ill.Description,
		CCT:           ill.CCT,
		WhitePoint:    toJSONPoint(ill.WhitePoint),
		WhitePointXYZ: white,
	}
}

type jsonSpaceTransform struct {
	Input      *jsonSpace   `json:"input"`
	Output     *jsonSpace   `json:"output"`
	Method     adapt.Method `json:"method"`
	Adaptation jsonMatrix   `json:"adaptation"`
	Transform  jsonMatrix   `json:"transform"`
}

type jsonWhitePointAdaptation struct {
	Input      *jsonIlluminant `json:"input"`
	Output     *jsonIlluminant `json:"output"`
	Method     adapt.Method    `json:"method"`
	Adaptation jsonMatrix      `json:"adaptation"`
}

// JSON writes results as indented JSON documents.
//
// Numbers are written with full precision.
type JSON struct {
	W io.Writer
}

// SpaceTransform writes the matrices of a colour space conversion.
func (j *JSON) SpaceTransform(res *colortool.SpaceTransform) error {
	doc := &jsonSpaceTransform{
		Input:      toJSONSpace(res.Input, res.InputWhite, res.InputXYZ, res.XYZToInput),
		Output:     toJSONSpace(res.Output, res.OutputWhite, res.OutputXYZ, res.XYZToOutput),
		Method:     res.Method,
		Adaptation: toJSONMatrix(res.Adaptation),
		Transform:  toJSONMatrix(res.Transform),
	}
	return j.encode(doc)
}

// WhitePointAdaptation writes the chromatic adaptation matrix between two
// illuminants.
func (j *JSON) WhitePointAdaptation(res *colortool.WhitePointAdaptation) error {
	doc := &jsonWhitePointAdaptation{
		Input:      toJSONIlluminant(res.Input, res.InputWhite),
		Output:     toJSONIlluminant(res.Output, res.OutputWhite),
		Method:     res.Method,
		Adaptation: toJSONMatrix(res.Adaptation),
	}
	return j.encode(doc)
}

// Names writes a single JSON object which maps each key to its list of
// names, for example {"colorspaces": [...], "illuminants": [...]}.
// Keys are written in sorted order.
func (j *JSON) Names(lists map[string][]string) error {
	doc := make(map[string][]string, len(lists))
	for key, names := range lists {
		if names == nil {
			names = []string{}
		}
		doc[key] = names
	}
	return j.encode(doc)
}

func (j *JSON) encode(v any) error {
	enc := json.NewEncoder(j.W)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

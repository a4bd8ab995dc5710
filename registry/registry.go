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

// Package registry holds the named colour spaces and illuminants known to
// colortool.
//
// A [Registry] is filled from two tables, one for colour spaces and one for
// illuminants.  Built-in tables are embedded in the package and are used by
// [Default]; replacement tables can be read from JSON, TOML or YAML files
// using [Open].
//
// A colour space table maps names to entries of the form
//
//	{
//	    "description": "IEC 61966-2-1",
//	    "transfer": "srgb",
//	    "primaries": {
//	        "R": { "x": 0.64, "y": 0.33 },
//	        "G": { "x": 0.30, "y": 0.60 },
//	        "B": { "x": 0.15, "y": 0.06 }
//	    },
//	    "whitepoint": { "x": 0.3127, "y": 0.3290 }
//	}
//
// where description and transfer are optional.  An illuminant table maps
// names to entries with an optional description and either a whitepoint or
// a correlated colour temperature "cct" (in kelvin) on the CIE daylight
// locus.
//
// Missing numeric fields are reported as [*ConfigError]; they are never
// replaced by defaults.  Once loaded, a registry is only read, and can be
// shared between goroutines.
package registry

import (
	"embed"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/colortool/cie"
)

//go:embed data/*.json
var builtinData embed.FS

const (
	builtinColorSpaces = "data/colorspaces.json"
	builtinIlluminants = "data/illuminants.json"
)

// ColorSpace describes an RGB colour space.
type ColorSpace struct {
	Name        string
	Description string

	// Transfer names the transfer curve of the space.  This is
	// informational only and is not used for computing matrices.
	Transfer string

	Primaries  cie.Primaries
	WhitePoint vec.Vec2
}

// RGBToXYZ returns the matrix mapping linear RGB values in the colour space
// to CIE XYZ values, relative to the white point of the space.
func (cs *ColorSpace) RGBToXYZ() (cie.Matrix, error) {
	return cs.Primaries.RGBToXYZ(cs.WhitePoint)
}

// Illuminant describes a named light source by its white point.
type Illuminant struct {
	Name        string
	Description string
	WhitePoint  vec.Vec2

	// CCT is the correlated colour temperature in kelvin, for illuminants
	// which were specified by temperature.  Otherwise CCT is zero.
	CCT float64
}

// Registry maps names to colour spaces and illuminants.
// Names are matched case-insensitively.
type Registry struct {
	spaces      map[string]*ColorSpace
	illuminants map[string]*Illuminant
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		spaces:      make(map[string]*ColorSpace),
		illuminants: make(map[string]*Illuminant),
	}
}

// Default returns a registry filled from the built-in tables.
func Default() (*Registry, error) {
	return Open("", "")
}

// Open returns a registry filled from the given table files.  The format of
// each file is determined by [FormatFromPath].  If a path is empty, the
// corresponding built-in table is used instead.
func Open(spacesPath, illuminantsPath string) (*Registry, error) {
	r := New()

	data, source, format, err := readTable(spacesPath, builtinColorSpaces)
	if err != nil {
		return nil, err
	}
	err = r.AddColorSpaces(source, format, data)
	if err != nil {
		return nil, err
	}

	data, source, format, err = readTable(illuminantsPath, builtinIlluminants)
	if err != nil {
		return nil, err
	}
	err = r.AddIlluminants(source, format, data)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func readTable(path, builtin string) ([]byte, string, Format, error) {
	if path == "" {
		data, err := builtinData.ReadFile(builtin)
		if err != nil {
			return nil, "", 0, &ConfigError{Source: builtin, Err: err}
		}
		return data, builtin, JSON, nil
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", 0, &ConfigError{Source: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", 0, &ConfigError{Source: path, Err: err}
	}
	return data, path, format, nil
}

// AddColorSpaces decodes a colour space table and adds its entries to r.
// Source is used in error messages.
//
// Either all entries are added, or none.  AddColorSpaces must not be called
// concurrently with any other method of r.
func (r *Registry) AddColorSpaces(source string, format Format, data []byte) error {
	var table map[string]*rawSpace
	err := format.unmarshal(data, &table)
	if err != nil {
		return &ConfigError{Source: source, Err: err}
	}

	names := slices.Sorted(maps.Keys(table))
	if err := checkNames(source, names, r.spaces); err != nil {
		return err
	}

	add := make(map[string]*ColorSpace, len(table))
	for _, name := range names {
		raw := table[name]
		if raw == nil {
			return &ConfigError{Source: source, Entry: name, Err: ErrMissing}
		}
		cs, ferr := raw.toColorSpace(name)
		if ferr != nil {
			return &ConfigError{Source: source, Entry: name, Field: ferr.field, Err: ferr.err}
		}
		add[key(name)] = cs
	}

	maps.Copy(r.spaces, add)
	return nil
}

// AddIlluminants decodes an illuminant table and adds its entries to r.
// Source is used in error messages.
//
// Either all entries are added, or none.  AddIlluminants must not be called
// concurrently with any other method of r.
func (r *Registry) AddIlluminants(source string, format Format, data []byte) error {
	var table map[string]*rawIlluminant
	err := format.unmarshal(data, &table)
	if err != nil {
		return &ConfigError{Source: source, Err: err}
	}

	names := slices.Sorted(maps.Keys(table))
	if err := checkNames(source, names, r.illuminants); err != nil {
		return err
	}

	add := make(map[string]*Illuminant, len(table))
	for _, name := range names {
		raw := table[name]
		if raw == nil {
			return &ConfigError{Source: source, Entry: name, Err: ErrMissing}
		}
		ill, ferr := raw.toIlluminant(name)
		if ferr != nil {
			return &ConfigError{Source: source, Entry: name, Field: ferr.field, Err: ferr.err}
		}
		add[key(name)] = ill
	}

	maps.Copy(r.illuminants, add)
	return nil
}

// checkNames makes sure that none of the new names clashes with another
// new name or with an existing entry.
func checkNames[T any](source string, names []string, existing map[string]T) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		k := key(name)
		if _, clash := existing[k]; clash || seen[k] {
			return &ConfigError{Source: source, Entry: name, Err: ErrDuplicate}
		}
		seen[k] = true
	}
	return nil
}

// ColorSpace returns the colour space with the given name.
// If there is no such colour space, a [*NotFoundError] is returned.
func (r *Registry) ColorSpace(name string) (*ColorSpace, error) {
	cs := r.spaces[key(name)]
	if cs == nil {
		return nil, &NotFoundError{Kind: "color space", Name: name}
	}
	return cs, nil
}

// Illuminant returns the illuminant with the given name.
// If there is no such illuminant, a [*NotFoundError] is returned.
func (r *Registry) Illuminant(name string) (*Illuminant, error) {
	ill := r.illuminants[key(name)]
	if ill == nil {
		return nil, &NotFoundError{Kind: "illuminant", Name: name}
	}
	return ill, nil
}

// ColorSpaceNames returns the names of all colour spaces, in alphabetical
// order (ignoring case).
func (r *Registry) ColorSpaceNames() []string {
	res := make([]string, 0, len(r.spaces))
	for _, k := range slices.Sorted(maps.Keys(r.spaces)) {
		res = append(res, r.spaces[k].Name)
	}
	return res
}

// IlluminantNames returns the names of all illuminants, in alphabetical
// order (ignoring case).
func (r *Registry) IlluminantNames() []string {
	res := make([]string, 0, len(r.illuminants))
	for _, k := range slices.Sorted(maps.Keys(r.illuminants)) {
		res = append(res, r.illuminants[k].Name)
	}
	return res
}

// key returns the map key for a colour space or illuminant name.
func key(name string) string {
	// A Caser keeps state and must not be shared between goroutines.
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}

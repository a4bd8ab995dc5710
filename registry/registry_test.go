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
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/colortool/cie"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	names := r.ColorSpaceNames()
	for _, want := range []string{"sRGB", "Rec2020", "ACES2065-1", "ProPhotoRGB"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("color space %q missing from %v", want, names)
		}
	}

	if len(r.IlluminantNames()) < 5 {
		t.Errorf("too few illuminants: %v", r.IlluminantNames())
	}
}

// TestDefaultWhitePoints checks that every built-in colour space gives an
// RGB to XYZ matrix which maps RGB white to the white point.
func TestDefaultWhitePoints(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range r.ColorSpaceNames() {
		t.Run(name, func(t *testing.T) {
			cs, err := r.ColorSpace(name)
			if err != nil {
				t.Fatal(err)
			}
			M, err := cs.RGBToXYZ()
			if err != nil {
				t.Fatal(err)
			}
			want, err := cie.XYToXYZ(cs.WhitePoint)
			if err != nil {
				t.Fatal(err)
			}
			got := M.Apply(cie.Vec3{1, 1, 1})
			if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"sRGB", "srgb", "SRGB", " sRGB "} {
		cs, err := r.ColorSpace(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
			continue
		}
		if cs.Name != "sRGB" {
			t.Errorf("%q: got %q", name, cs.Name)
		}
	}

	ill, err := r.Illuminant("d65")
	if err != nil {
		t.Fatal(err)
	}
	if ill.Name != "D65" || ill.CCT != 0 {
		t.Errorf("unexpected illuminant %+v", ill)
	}
}

func TestNotFound(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	cs, err := r.ColorSpace("no-such-space")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if cs != nil {
		t.Errorf("got non-nil color space %v", cs)
	}
	if nf.Kind != "color space" || nf.Name != "no-such-space" {
		t.Errorf("unexpected error fields %+v", nf)
	}

	_, err = r.Illuminant("D42")
	if !errors.As(err, &nf) || nf.Kind != "illuminant" {
		t.Errorf("expected illuminant NotFoundError, got %v", err)
	}
}

func TestCCT(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	ill, err := r.Illuminant("D93")
	if err != nil {
		t.Fatal(err)
	}
	if ill.CCT != 9300 {
		t.Errorf("CCT = %g, want 9300", ill.CCT)
	}
	if math.Abs(ill.WhitePoint.X-0.2831) > 1e-3 || math.Abs(ill.WhitePoint.Y-0.2971) > 1e-3 {
		t.Errorf("unexpected white point %v", ill.WhitePoint)
	}
}

const tomlSpaces = `
[Test]
description = "a test space"
transfer = "linear"
primaries.R = { x = 0.64, y = 0.33 }
primaries.G = { x = 0.30, y = 0.60 }
primaries.B = { x = 0.15, y = 0.06 }
whitepoint = { x = 0.3127, y = 0.3290 }
`

const yamlSpaces = `
Test:
  description: a test space
  transfer: linear
  primaries:
    R: {x: 0.64, y: 0.33}
    G: {x: 0.30, y: 0.60}
    B: {x: 0.15, y: 0.06}
  whitepoint: {x: 0.3127, y: 0.3290}
`

const jsonSpaces = `{
  "Test": {
    "description": "a test space",
    "transfer": "linear",
    "primaries": {
      "R": {"x": 0.64, "y": 0.33},
      "G": {"x": 0.30, "y": 0.60},
      "B": {"x": 0.15, "y": 0.06}
    },
    "whitepoint": {"x": 0.3127, "y": 0.3290}
  }
}`

func TestFormats(t *testing.T) {
	var results []*ColorSpace
	for _, c := range []struct {
		format Format
		data   string
	}{
		{JSON, jsonSpaces},
		{TOML, tomlSpaces},
		{YAML, yamlSpaces},
	} {
		r := New()
		err := r.AddColorSpaces(c.format.String(), c.format, []byte(c.data))
		if err != nil {
			t.Fatalf("%s: %v", c.format, err)
		}
		cs, err := r.ColorSpace("test")
		if err != nil {
			t.Fatalf("%s: %v", c.format, err)
		}
		results = append(results, cs)
	}

	want := results[0]
	if want.Description != "a test space" || want.Transfer != "linear" {
		t.Errorf("unexpected text fields %+v", want)
	}
	if want.Primaries.G.X != 0.30 || want.WhitePoint.Y != 0.3290 {
		t.Errorf("unexpected numbers %+v", want)
	}
	for _, got := range results[1:] {
		if *got != *want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}
}

func TestMissingFields(t *testing.T) {
	cases := []struct {
		data  string
		field string
	}{
		{`{"X": {"primaries": {"R": {"x": 0.64, "y": 0.33}, "G": {"x": 0.3, "y": 0.6}, "B": {"x": 0.15}}, "whitepoint": {"x": 0.3127, "y": 0.329}}}`, "primaries.B.y"},
		{`{"X": {"primaries": {"R": {"x": 0.64, "y": 0.33}, "G": {"x": 0.3, "y": 0.6}}, "whitepoint": {"x": 0.3127, "y": 0.329}}}`, "primaries.B"},
		{`{"X": {"primaries": {"R": {"x": 0.64, "y": 0.33}, "G": {"x": 0.3, "y": 0.6}, "B": {"x": 0.15, "y": 0.06}}}}`, "whitepoint"},
		{`{"X": {"primaries": {"R": {"x": 0.64, "y": 0.33}, "G": {"x": 0.3, "y": 0.6}, "B": {"x": 0.15, "y": 0.06}}, "whitepoint": {"y": 0.329}}}`, "whitepoint.x"},
		{`{"X": {"description": "no numbers at all"}}`, "primaries"},
		{`{"X": null}`, ""},
	}
	for _, c := range cases {
		r := New()
		err := r.AddColorSpaces("test.json", JSON, []byte(c.data))
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", c.field, err)
			continue
		}
		if !errors.Is(err, ErrMissing) {
			t.Errorf("%s: expected ErrMissing, got %v", c.field, err)
		}
		if cfgErr.Entry != "X" || cfgErr.Field != c.field {
			t.Errorf("%s: wrong location %q/%q", c.field, cfgErr.Entry, cfgErr.Field)
		}
		if len(r.ColorSpaceNames()) != 0 {
			t.Errorf("%s: registry modified after error", c.field)
		}
	}
}

func TestBadTables(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		data   string
		target error
	}{
		{"syntax", JSON, `{"X": `, nil},
		{"unknown field", JSON, `{"X": {"gamma": 2.2}}`, nil},
		{"duplicate", JSON, `{"abc": {}, "ABC": {}}`, ErrDuplicate},
		{"nan", YAML, "X:\n  primaries:\n    R: {x: .nan, y: 0.33}\n", ErrInvalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := New()
			err := r.AddColorSpaces("test", c.format, []byte(c.data))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if c.target != nil && !errors.Is(err, c.target) {
				t.Errorf("expected %v, got %v", c.target, err)
			}
		})
	}
}

func TestDuplicateAcrossTables(t *testing.T) {
	r, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	data := []byte(`{"SRGB": {"whitepoint": {"x": 0.3127, "y": 0.329}}}`)
	err = r.AddIlluminants("extra.json", JSON, data)
	if err != nil {
		t.Fatalf("illuminants and color spaces share names: %v", err)
	}
	err = r.AddIlluminants("extra2.json", JSON, []byte(`{"d65": {"cct": 6504}}`))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestIlluminantTable(t *testing.T) {
	cases := []struct {
		data   string
		target error
	}{
		{`{"X": {"cct": 2856}}`, cie.ErrOutOfRange},
		{`{"X": {"cct": 6504, "whitepoint": {"x": 0.3127, "y": 0.329}}}`, ErrInvalid},
		{`{"X": {"description": "nothing"}}`, ErrMissing},
	}
	for _, c := range cases {
		r := New()
		err := r.AddIlluminants("test.json", JSON, []byte(c.data))
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", c.data, err)
			continue
		}
		if !errors.Is(err, c.target) {
			t.Errorf("%s: expected %v, got %v", c.data, c.target, err)
		}
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	spaces := filepath.Join(dir, "spaces.toml")
	err := os.WriteFile(spaces, []byte(tomlSpaces), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	r, err := Open(spaces, "")
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"Test"}, r.ColorSpaceNames()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if _, err := r.Illuminant("D50"); err != nil {
		t.Error(err)
	}

	_, err = Open(filepath.Join(dir, "missing.json"), "")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("missing file: expected ConfigError, got %v", err)
	}

	_, err = Open(filepath.Join(dir, "spaces.ini"), "")
	if !errors.As(err, &cfgErr) {
		t.Errorf("unknown format: expected ConfigError, got %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"a.json":       JSON,
		"b/c.JSON":     JSON,
		"spaces.toml":  TOML,
		"spaces.yaml":  YAML,
		"/x/y/z.yml":   YAML,
		"dir.json/a.y": -1,
		"noext":        -1,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if want < 0 {
			if err == nil {
				t.Errorf("%s: expected error, got %s", path, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", path, err)
		} else if got != want {
			t.Errorf("%s: got %s, want %s", path, got, want)
		}
	}
}

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

package adapt

import (
	"fmt"
	"strings"

	"seehuhn.de/go/colortool/cie"
)

// Method selects the cone response model used for chromatic adaptation.
//
// The zero value, [None], does not describe a computable adaptation.
// Use [Method.IsValid] or [ParseMethod] to reject it before calling
// [Matrix].
type Method int

// These are the supported adaptation methods.
const (
	None Method = iota
	XYZScaling
	Bradford
	CAT02
	VonKries
)

// Methods returns all computable adaptation methods.
// The caller may modify the returned slice.
func Methods() []Method {
	return []Method{XYZScaling, Bradford, CAT02, VonKries}
}

func (m Method) String() string {
	switch m {
	case None:
		return "None"
	case XYZScaling:
		return "XYZScaling"
	case Bradford:
		return "Bradford"
	case CAT02:
		return "CAT02"
	case VonKries:
		return "VonKries"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// IsValid reports whether m is one of the computable methods.
func (m Method) IsValid() bool {
	switch m {
	case XYZScaling, Bradford, CAT02, VonKries:
		return true
	default:
		return false
	}
}

// ParseMethod converts a method name, as used on the command line, to a
// [Method].  Names are matched case-insensitively; "none" is rejected.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return None, fmt.Errorf("unknown adaptation method %q", name)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Method) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("adaptation method %s cannot be encoded", m)
	}
	return []byte(m.String()), nil
}

// ConeResponse returns the matrix which maps CIE XYZ values to the cone
// response space of the method.
//
// This panics if m is not a valid method.
func (m Method) ConeResponse() cie.Matrix {
	switch m {
	case XYZScaling:
		return cie.IdentityMatrix
	case Bradford:
		return coneBradford
	case CAT02:
		return coneCAT02
	case VonKries:
		return coneVonKries
	default:
		panic("adapt: no cone response for method " + m.String())
	}
}

var (
	coneBradford = cie.Matrix{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	coneCAT02 = cie.Matrix{
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	}
	coneVonKries = cie.Matrix{
		0.40024, 0.70760, -0.08081,
		-0.22630, 1.16532, 0.04570,
		0.00000, 0.00000, 0.91822,
	}
)

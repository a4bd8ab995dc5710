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

import "errors"

var (
	// ErrZeroDivision indicates a zero denominator, for example a
	// chromaticity with y=0.
	ErrZeroDivision = errors.New("division by zero")

	// ErrSingular indicates that a matrix could not be inverted.
	ErrSingular = errors.New("singular matrix")

	// ErrOutOfRange indicates an argument outside the domain of a function.
	ErrOutOfRange = errors.New("argument out of range")
)

// DomainError is returned when a computation has no finite result
// for the given input.
type DomainError struct {
	// Op is the name of the failing operation, e.g. "XYToXYZ".
	Op string

	// Err is one of ErrZeroDivision, ErrSingular or ErrOutOfRange,
	// possibly wrapped with more detail.
	Err error
}

func (err *DomainError) Error() string {
	return "cie: " + err.Op + ": " + err.Err.Error()
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

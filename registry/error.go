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
	"strconv"
	"strings"
)

var (
	// ErrMissing indicates that a required table field is absent.
	ErrMissing = errors.New("missing required value")

	// ErrInvalid indicates a table field with an unusable value.
	ErrInvalid = errors.New("invalid value")

	// ErrDuplicate indicates that a name occurs more than once.
	// Names which differ only in case count as duplicates.
	ErrDuplicate = errors.New("duplicate name")
)

// NotFoundError is returned when a colour space or illuminant name is not
// present in the registry.
type NotFoundError struct {
	Kind string // "color space" or "illuminant"
	Name string
}

func (err *NotFoundError) Error() string {
	return "registry: unknown " + err.Kind + " " + strconv.Quote(err.Name)
}

// ConfigError indicates that a colour space or illuminant table could not be
// loaded.
type ConfigError struct {
	// Source is the name of the table, usually a file name.
	Source string

	// Entry is the name of the offending table entry, if known.
	Entry string

	// Field is the dotted path of the offending field inside the entry,
	// e.g. "primaries.R.x", if known.
	Field string

	Err error
}

func (err *ConfigError) Error() string {
	parts := []string{"registry"}
	if err.Source != "" {
		parts = append(parts, err.Source)
	}
	if err.Entry != "" {
		parts = append(parts, strconv.Quote(err.Entry))
	}
	if err.Field != "" {
		parts = append(parts, err.Field)
	}
	return strings.Join(parts, ": ") + ": " + err.Err.Error()
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

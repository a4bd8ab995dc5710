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
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// columnGap is the number of spaces between two columns.
const columnGap = 2

// Columns writes the names in columns, filled top to bottom, so that no
// line is longer than width.  If width is not positive, or if a single name
// does not fit, one name is written per line.
func Columns(w io.Writer, names []string, width int) error {
	if len(names) == 0 {
		return nil
	}

	colWidth := 0
	for _, name := range names {
		colWidth = max(colWidth, utf8.RuneCountInString(name))
	}
	colWidth += columnGap

	numCols := 1
	if width > 0 {
		numCols = max(1, (width+columnGap)/colWidth)
	}
	numRows := (len(names) + numCols - 1) / numCols
	// use as few columns as possible for the chosen number of rows
	numCols = (len(names) + numRows - 1) / numRows

	out := bufio.NewWriter(w)
	for row := range numRows {
		for col := range numCols {
			idx := col*numRows + row
			if idx >= len(names) {
				break
			}
			name := names[idx]
			out.WriteString(name)

			last := col == numCols-1 || idx+numRows >= len(names)
			if !last {
				pad := colWidth - utf8.RuneCountInString(name)
				out.WriteString(strings.Repeat(" ", pad))
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}

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

// Colortool prints the matrices needed to convert linear RGB values between
// colour spaces, with chromatic adaptation between white points.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/colortool"
	"seehuhn.de/go/colortool/adapt"
	"seehuhn.de/go/colortool/internal/buildinfo"
	"seehuhn.de/go/colortool/internal/report"
	"seehuhn.de/go/colortool/registry"
)

var (
	verbose          = flag.Bool("v", false, "also print chromaticities and white points")
	listColorspaces  = flag.Bool("colorspaces", false, "list the known color spaces")
	listIlluminants  = flag.Bool("illuminants", false, "list the known illuminants")
	adaptationMethod = flag.String("adaptationmethod", "bradford", "chromatic adaptation `method`: xyzscaling, bradford, cat02 or vonkries")
	inputColorspace  = flag.String("inputcolorspace", "", "`name` of the input color space")
	outputColorspace = flag.String("outputcolorspace", "", "`name` of the output color space")
	inputIlluminant  = flag.String("inputilluminant", "", "`name` of the input illuminant")
	outputIlluminant = flag.String("outputilluminant", "", "`name` of the output illuminant")
	colorspaceFile   = flag.String("colorspacefile", "", "read color spaces from `file` (.json, .toml or .yaml)")
	illuminantFile   = flag.String("illuminantfile", "", "read illuminants from `file` (.json, .toml or .yaml)")
	precision        = flag.Int("precision", report.DefaultPrecision, "number of `digits` after the decimal point")
	jsonOutput       = flag.Bool("json", false, "write the results as JSON")
	showVersion      = flag.Bool("version", false, "print version information and exit")
)

const usageStatus = 2

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "colortool - color space conversion matrices with white point adaptation\n")
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short("colortool"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  colortool [options] -inputcolorspace <name> -outputcolorspace <name>\n")
		fmt.Fprintf(out, "  colortool [options] -inputilluminant <name> -outputilluminant <name>\n")
		fmt.Fprintf(out, "  colortool [options] -colorspaces|-illuminants\n\n")
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  colortool -inputcolorspace sRGB -outputcolorspace ACEScg\n")
		fmt.Fprintf(out, "  colortool -adaptationmethod cat02 -inputilluminant D65 -outputilluminant D50\n")
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("colortool: ")

	if *showVersion {
		fmt.Println(buildinfo.Short("colortool"))
		return
	}

	if flag.NArg() > 0 {
		usageError("unexpected arguments: %q", flag.Args())
	}
	if *precision < 0 || *precision > 17 {
		usageError("precision must be between 0 and 17")
	}
	method, err := adapt.ParseMethod(*adaptationMethod)
	if err != nil {
		usageError("%v", err)
	}

	m, err := selectMode()
	if err != nil {
		usageError("%v", err)
	}

	err = run(m, method)
	if colortool.IsNotFound(err) {
		log.Fatalf("%v (use -colorspaces or -illuminants to list the known names)", err)
	} else if err != nil {
		log.Fatal(err)
	}
}

type mode int

const (
	modeList mode = iota
	modeColorspace
	modeIlluminant
)

// selectMode checks that the command line asks for exactly one thing.
func selectMode() (mode, error) {
	spaces := *inputColorspace != "" || *outputColorspace != ""
	illuminants := *inputIlluminant != "" || *outputIlluminant != ""
	listing := *listColorspaces || *listIlluminants

	switch {
	case listing && (spaces || illuminants):
		return 0, errors.New("listing cannot be combined with a conversion")
	case listing:
		return modeList, nil
	case spaces && illuminants:
		return 0, errors.New("give either color spaces or illuminants, not both")
	case spaces:
		if *inputColorspace == "" || *outputColorspace == "" {
			return 0, errors.New("both -inputcolorspace and -outputcolorspace are required")
		}
		return modeColorspace, nil
	case illuminants:
		if *inputIlluminant == "" || *outputIlluminant == "" {
			return 0, errors.New("both -inputilluminant and -outputilluminant are required")
		}
		return modeIlluminant, nil
	default:
		return 0, errors.New("nothing to do")
	}
}

// writer is implemented by report.Text and report.JSON.
type writer interface {
	SpaceTransform(*colortool.SpaceTransform) error
	WhitePointAdaptation(*colortool.WhitePointAdaptation) error
}

func run(m mode, method adapt.Method) error {
	reg, err := registry.Open(*colorspaceFile, *illuminantFile)
	if err != nil {
		return err
	}

	if m == modeList {
		return list(os.Stdout, reg)
	}

	var out writer
	if *jsonOutput {
		out = &report.JSON{W: os.Stdout}
	} else {
		fmt.Println("info: colortool -- a utility set for color space conversions, with support for white point adaptation.")
		out = &report.Text{W: os.Stdout, Precision: *precision, Verbose: *verbose}
	}

	switch m {
	case modeColorspace:
		opt := &colortool.Options{
			Input:  *inputColorspace,
			Output: *outputColorspace,
			Method: method,
		}
		res, err := colortool.ColorspaceTransform(reg, opt)
		if err != nil {
			return err
		}
		return out.SpaceTransform(res)

	default:
		opt := &colortool.Options{
			Input:  *inputIlluminant,
			Output: *outputIlluminant,
			Method: method,
		}
		res, err := colortool.IlluminantAdaptation(reg, opt)
		if err != nil {
			return err
		}
		return out.WhitePointAdaptation(res)
	}
}

// list prints the names of the known colour spaces and/or illuminants.
// On a terminal the names are arranged in columns.
func list(w io.Writer, reg *registry.Registry) error {
	type group struct {
		key     string
		heading string
		names   []string
	}
	var groups []group
	if *listColorspaces {
		groups = append(groups, group{"colorspaces", "Colorspaces:", reg.ColorSpaceNames()})
	}
	if *listIlluminants {
		groups = append(groups, group{"illuminants", "Illuminants:", reg.IlluminantNames()})
	}

	if *jsonOutput {
		lists := make(map[string][]string, len(groups))
		for _, g := range groups {
			lists[g.key] = g.names
		}
		return (&report.JSON{W: w}).Names(lists)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		out := &report.Text{W: w}
		for _, g := range groups {
			if err := out.Names(g.heading, g.names); err != nil {
				return err
			}
		}
		return nil
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 80
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, g.heading)
		if err := report.Columns(w, g.names, width); err != nil {
			return err
		}
	}
	return nil
}

func usageError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "colortool: "+format+"\n", args...)
	fmt.Fprintf(os.Stderr, "Run 'colortool -help' for usage.\n")
	os.Exit(usageStatus)
}

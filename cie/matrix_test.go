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

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIdentityMatrix(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			B := A.Mul(IdentityMatrix)
			if d := cmp.Diff(A, B); d != "" {
				t.Error(d)
			}
			C := IdentityMatrix.Mul(A)
			if d := cmp.Diff(A, C); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestMatrixInverse1 checks that a matrix multiplied by its inverse is the
// identity matrix.
func TestMatrixInverse1(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv, err := A.Inv()
			if err != nil {
				t.Fatal(err)
			}

			B := Ainv.Mul(A)
			if d := cmp.Diff(IdentityMatrix, B, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Error(d)
			}

			B = A.Mul(Ainv)
			if d := cmp.Diff(IdentityMatrix, B, cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

// TestMatrixInverse2 checks that the inverse of the inverse of a matrix is the
// original matrix.
func TestMatrixInverse2(t *testing.T) {
	for i, A := range testMatrices {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			Ainv, err := A.Inv()
			if err != nil {
				t.Fatal(err)
			}
			B, err := Ainv.Inv()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(A, B, cmpopts.EquateApprox(1e-9, 1e-9)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestMatrixSingular(t *testing.T) {
	singular := []Matrix{
		{},
		{1, 2, 3, 2, 4, 6, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		FromColumns(Vec3{1, 2, 3}, Vec3{2, 4, 6}, Vec3{0, 1, 0}),
		Diag(Vec3{1, 1e-12, 1}),
	}
	for i, A := range singular {
		t.Run(fmt.Sprintf("mat%d", i), func(t *testing.T) {
			_, err := A.Inv()
			var domErr *DomainError
			if !errors.As(err, &domErr) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if !errors.Is(err, ErrSingular) {
				t.Errorf("expected ErrSingular, got %v", err)
			}
		})
	}
}

func TestMatrixApply(t *testing.T) {
	A := Matrix{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	v := Vec3{1, 0, -1}
	got := A.Apply(v)
	want := Vec3{-2, -2, -3}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Applying a product is the same as applying the factors in turn.
	B := Diag(Vec3{2, 3, 4})
	left := A.Mul(B).Apply(v)
	right := A.Apply(B.Apply(v))
	if d := cmp.Diff(left, right); d != "" {
		t.Error(d)
	}
}

func TestColumns(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	c := Vec3{7, 8, 9}
	M := FromColumns(a, b, c)
	for i, want := range []Vec3{a, b, c} {
		if got := M.Col(i); got != want {
			t.Errorf("column %d: got %v, want %v", i, got, want)
		}
	}
	if got, want := M.Row(0), (Vec3{1, 4, 7}); got != want {
		t.Errorf("row 0: got %v, want %v", got, want)
	}
}

func TestQuo(t *testing.T) {
	q, err := Vec3{1, 4, 9}.Quo(Vec3{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if q != (Vec3{1, 2, 3}) {
		t.Errorf("got %v", q)
	}

	_, err = Vec3{1, 1, 1}.Quo(Vec3{1, 0, 1})
	if !errors.Is(err, ErrZeroDivision) {
		t.Errorf("expected ErrZeroDivision, got %v", err)
	}
}

var testMatrices = []Matrix{
	IdentityMatrix,
	{2, 3, 4, 5, 6, 7, 8, 9, 11},
	Diag(Vec3{0.5, 0.5, 0.5}),
	Diag(Vec3{2, 1, 3}),
	Diag(Vec3{-1, -1, -1}),
	{0, 1, 0, 0, 0, 1, 1, 0, 0},
	{
		0.4124, 0.3576, 0.1805,
		0.2126, 0.7152, 0.0722,
		0.0193, 0.1192, 0.9505,
	},
	{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	},
}

//
//  (C) Copyright 2025  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

package arbitrary_test

import (
	"math"
	"testing"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
)

func TestPrecisionForRadius(t *testing.T) {
	if got := arbitrary.PrecisionForRadius(10); got != arbitrary.MinimumPrecision {
		t.Fatalf("large radius should floor to %d bits, got %d", arbitrary.MinimumPrecision, got)
	}
	if got := arbitrary.PrecisionForRadius(-1000); got != 1064 {
		t.Fatalf("expected 1064 bits, got %d", got)
	}
}

func TestParseAndToComplexExtended(t *testing.T) {
	c, err := arbitrary.Parse("-0.75", "0.0", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ext := c.ToComplexExtended()
	got := ext.ToComplex128()
	if math.Abs(real(got)-(-0.75)) > 1e-9 || math.Abs(imag(got)) > 1e-9 {
		t.Fatalf("expected (-0.75, 0), got %v", got)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := arbitrary.Parse("not-a-number", "0", 64); err == nil {
		t.Fatal("expected error for invalid real part")
	}
}

func TestSquareMatchesDirectMultiplication(t *testing.T) {
	c, err := arbitrary.Parse("2.0", "3.0", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	squared := c.Square()
	got := squared.ToComplexExtended().ToComplex128()
	want := complex(2.0, 3.0) * complex(2.0, 3.0)
	if math.Abs(real(got)-real(want)) > 1e-9 || math.Abs(imag(got)-imag(want)) > 1e-9 {
		t.Fatalf("square mismatch: got %v want %v", got, want)
	}
}

func TestAddFixed(t *testing.T) {
	c, err := arbitrary.Parse("1.0", "1.0", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	shifted := c.AddFixed(complex(0.5, -0.25))
	got := shifted.ToComplexExtended().ToComplex128()
	if math.Abs(real(got)-1.5) > 1e-9 || math.Abs(imag(got)-0.75) > 1e-9 {
		t.Fatalf("expected (1.5, 0.75), got %v", got)
	}
}

func TestClonePreservesIndependence(t *testing.T) {
	c, err := arbitrary.Parse("1.0", "1.0", 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clone := c.Clone()
	c.Re.SetFloat64(5)
	if clone.ToComplexExtended().ToComplex128() != complex(1.0, 1.0) {
		t.Fatal("clone should not be affected by operations on the original")
	}
}

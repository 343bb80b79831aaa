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

package reference_test

import (
	"math/cmplx"
	"testing"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
	"github.com/tisnik/svitava-deepzoom/reference"
)

func zero(prec uint) arbitrary.ComplexArbitrary {
	return arbitrary.New(prec)
}

// S1-style baseline: c = -0.75 (period-2 bulb boundary neighbourhood) never
// escapes within a modest iteration budget.
func TestRunFillsToMaximumIterationWhenBounded(t *testing.T) {
	c, err := arbitrary.Parse("-0.75", "0.0", 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orb := reference.New(c, zero(64), 0, 500)
	orb.Run()

	if orb.EscapeIteration != 500 {
		t.Fatalf("expected no escape within budget, got escape at %d", orb.EscapeIteration)
	}
	if orb.CurrentIteration != 500 {
		t.Fatalf("expected current_iteration == maximum_iteration, got %d", orb.CurrentIteration)
	}
}

func TestRunDetectsEscape(t *testing.T) {
	c, err := arbitrary.Parse("2.0", "2.0", 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orb := reference.New(c, zero(64), 0, 1000)
	orb.Run()

	if orb.EscapeIteration >= 1000 {
		t.Fatalf("expected an early escape, got %d", orb.EscapeIteration)
	}
	if orb.CurrentIteration != orb.EscapeIteration {
		t.Fatalf("current_iteration should equal escape_iteration on escape, got %d vs %d", orb.CurrentIteration, orb.EscapeIteration)
	}
}

// Skip-start variant: a reference seeded mid-orbit only fills from
// StartIteration onward, but At() still addresses by global index. The
// seed handed to this skip-start orbit is the float64-narrowed image of the
// full orbit's arbitrary-precision iterate at index 50, so it no longer tracks the
// full orbit bit-for-bit past its start index — it only has to stay close,
// and -0.75 sits on a parabolic boundary where a narrowing-sized
// perturbation only drifts slowly.
func TestSkipStartVariant(t *testing.T) {
	c, err := arbitrary.Parse("-0.75", "0.0", 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	full := reference.New(c, zero(64), 0, 200)
	full.Run()

	midZ := full.At(50)
	seed := arbitrary.New(64).AddFixed(midZ)
	skipped := reference.New(c, seed, 50, 200)
	skipped.Run()

	if skipped.StartIteration != 50 {
		t.Fatalf("expected start iteration 50, got %d", skipped.StartIteration)
	}
	if skipped.At(50) != midZ {
		t.Fatalf("skip-start orbit should reproduce the seeded value at its start index")
	}
	if drift := cmplx.Abs(skipped.At(100) - full.At(100)); drift > 1e-3 {
		t.Fatalf("skip-start orbit drifted too far from full orbit: got %v vs %v (drift %g)", skipped.At(100), full.At(100), drift)
	}
}

func TestIsRebasedDefaultsFalse(t *testing.T) {
	c, err := arbitrary.Parse("-0.75", "0.0", 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orb := reference.New(c, zero(64), 0, 10)
	orb.Run()
	if orb.IsRebased(0) {
		t.Fatal("iterate near z0 should not be rebased")
	}
}

// TestArbitraryPrecisionOrbitDivergesFromDoubleCollapse is the regression
// test for the orbit actually running in arbitrary precision. c sits just
// past the tip of the set's real-axis antenna (-2), at an offset no double
// can represent: the orbit's fixed point there (z=2) is repelling with
// multiplier 4, so a genuinely high-precision orbit eventually escapes,
// while the float64-rounded center (exactly -2.0, for which 0, -2, 2, 2, 2,
// ... is exact binary arithmetic with no rounding noise to perturb it off
// the fixed point) stays pinned there forever. If Run ever again collapsed
// CHigh to complex128 before iterating, this orbit would never escape.
func TestArbitraryPrecisionOrbitDivergesFromDoubleCollapse(t *testing.T) {
	deepC, err := arbitrary.Parse("-2.000000000000000000000000000001", "0.0", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const maxIter = 300
	orb := reference.New(deepC, zero(200), 0, maxIter)
	orb.Run()

	if orb.EscapeIteration >= maxIter {
		t.Fatalf("expected the arbitrary-precision orbit to escape within %d iterations, it stayed bounded through %d", maxIter, orb.EscapeIteration)
	}

	z := complex(0.0, 0.0)
	const collapsedC = complex(-2.0, 0.0)
	for n := 0; n < maxIter; n++ {
		z = z*z + collapsedC
	}
	if real(z) != 2.0 || imag(z) != 0.0 {
		t.Fatalf("expected the float64-collapsed orbit to sit at the fixed point 2, got %v", z)
	}
}

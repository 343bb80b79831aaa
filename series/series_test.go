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

package series_test

import (
	"testing"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
	"github.com/tisnik/svitava-deepzoom/numeric"
	"github.com/tisnik/svitava-deepzoom/series"
)

func TestAutoOrderClampsToBounds(t *testing.T) {
	if got := series.AutoOrder(1, 1); got != series.MinOrder {
		t.Fatalf("tiny image should clamp to MinOrder, got %d", got)
	}
	if got := series.AutoOrder(1_000_000, 1_000_000); got > series.MaxOrder {
		t.Fatalf("order should never exceed MaxOrder, got %d", got)
	}
}

func corners(radius float64) [4]numeric.ComplexExtended {
	return [4]numeric.ComplexExtended{
		numeric.ComplexExtendedFromComplex128(complex(radius, radius)),
		numeric.ComplexExtendedFromComplex128(complex(-radius, radius)),
		numeric.ComplexExtendedFromComplex128(complex(radius, -radius)),
		numeric.ComplexExtendedFromComplex128(complex(-radius, -radius)),
	}
}

func buildCenter(t *testing.T, real, imag string) arbitrary.ComplexArbitrary {
	t.Helper()
	c, err := arbitrary.Parse(real, imag, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// S3-style check: a tightly zoomed-in view around -0.75 (where the main
// cardioid meets the period-2 bulb) should allow the safe-skip test to advance past a handful of
// iterations before any probe trips tolerance.
func TestRunAdvancesPastZeroForSmoothRegion(t *testing.T) {
	center := buildCenter(t, "-0.75", "0.0")

	deltaPixelSquared := numeric.FloatExtendedFromFloat64(1e-30)
	sa := series.New(8, center, corners(1e-12), deltaPixelSquared, 2000)
	sa.Run()

	if sa.CurrentIteration == 0 {
		t.Fatal("expected the safe-skip test to advance past iteration 0 for a tight, smooth neighbourhood")
	}
}

func TestEvaluateAtZeroDeltaIsZero(t *testing.T) {
	center := buildCenter(t, "-0.75", "0.0")

	deltaPixelSquared := numeric.FloatExtendedFromFloat64(1e-20)
	sa := series.New(5, center, corners(1e-8), deltaPixelSquared, 100)
	sa.Run()

	zero := numeric.ComplexExtendedFromComplex128(complex(0, 0))
	got := sa.Evaluate(zero).ToComplex128()
	if got != complex(0, 0) {
		t.Fatalf("evaluate(0) should be 0, got %v", got)
	}
}

func TestGetReferenceAtZeroStartsTheFirstPassOrbit(t *testing.T) {
	center := buildCenter(t, "-0.75", "0.0")

	deltaPixelSquared := numeric.FloatExtendedFromFloat64(1e-24)
	sa := series.New(6, center, corners(1e-10), deltaPixelSquared, 500)
	sa.Run()

	zero := numeric.ComplexExtendedFromComplex128(complex(0, 0))
	orbit := sa.GetReference(zero, 500)

	if orbit.StartIteration != sa.CurrentIteration {
		t.Fatalf("first reference should start at SA.CurrentIteration, got %d want %d", orbit.StartIteration, sa.CurrentIteration)
	}
	if orbit.MaximumIteration != 500 {
		t.Fatalf("expected maximum_iteration 500, got %d", orbit.MaximumIteration)
	}
}

func TestGetReferenceDuringRepairShiftsCenter(t *testing.T) {
	center := buildCenter(t, "-0.75", "0.0")

	deltaPixelSquared := numeric.FloatExtendedFromFloat64(1e-24)
	sa := series.New(6, center, corners(1e-10), deltaPixelSquared, 500)
	sa.Run()

	delta0 := numeric.ComplexExtendedFromComplex128(complex(1e-11, -1e-11))
	orbit := sa.GetReference(delta0, 500)

	if orbit.StartIteration != sa.CurrentIteration {
		t.Fatalf("new reference should start at SA.CurrentIteration, got %d want %d", orbit.StartIteration, sa.CurrentIteration)
	}
}

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

package perturbation_test

import (
	"testing"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
	"github.com/tisnik/svitava-deepzoom/numeric"
	"github.com/tisnik/svitava-deepzoom/perturbation"
	"github.com/tisnik/svitava-deepzoom/pixel"
	"github.com/tisnik/svitava-deepzoom/reference"
)

func buildReference(t *testing.T, real, imag string, maxIter uint) *reference.Orbit {
	t.Helper()
	c, err := arbitrary.Parse(real, imag, 64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orb := reference.New(c, arbitrary.New(c.Precision()), 0, maxIter)
	orb.Run()
	return orb
}

// S1-style baseline: delta=0 pixel at a bounded reference should reach
// reference.maximum_iteration without escaping or glitching.
func TestIterateZeroDeltaStaysActiveToMaximum(t *testing.T) {
	orb := buildReference(t, "-0.75", "0.0", 300)
	zero := numeric.ComplexExtendedFromComplex128(complex(0, 0))
	p := pixel.New(0, 0, zero, zero, 0)

	perturbation.Iterate([]*pixel.Data{p}, orb, orb.MaximumIteration)

	if p.Escaped || p.Glitched {
		t.Fatalf("delta=0 pixel should track the reference exactly, got escaped=%v glitched=%v at iteration %d", p.Escaped, p.Glitched, p.Iteration)
	}
	if p.Iteration != orb.MaximumIteration {
		t.Fatalf("expected to reach maximum_iteration=%d, got %d", orb.MaximumIteration, p.Iteration)
	}
}

func TestIterateDetectsEscapeForFarPixel(t *testing.T) {
	orb := buildReference(t, "-0.75", "0.0", 500)
	far := numeric.ComplexExtendedFromComplex128(complex(3, 3))
	p := pixel.New(1, 1, far, far, 0)

	perturbation.Iterate([]*pixel.Data{p}, orb, orb.MaximumIteration)

	if !p.Escaped {
		t.Fatalf("a pixel far outside the set should escape, got iteration %d glitched=%v", p.Iteration, p.Glitched)
	}
}

// Iterate advances an arbitrary-sized pixel set with no cross-pixel
// dependency; this exercises the worker-pool fan-out.
func TestIterateHandlesManyPixelsConcurrently(t *testing.T) {
	orb := buildReference(t, "-0.75", "0.0", 200)

	pixels := make([]*pixel.Data, 0, 64)
	for i := 0; i < 64; i++ {
		d := numeric.ComplexExtendedFromComplex128(complex(float64(i)*1e-9, 0))
		pixels = append(pixels, pixel.New(uint(i), 0, d, d, 0))
	}

	perturbation.Iterate(pixels, orb, orb.MaximumIteration)

	for _, p := range pixels {
		if !p.Escaped && !p.Glitched && p.Iteration != orb.MaximumIteration {
			t.Fatalf("pixel %d ended mid-iteration without escape/glitch: iteration=%d", p.ImageX, p.Iteration)
		}
	}
}

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

// Package reference implements the high-precision reference orbit that the
// series approximation seeds and the perturbation loop reads from on every
// pixel iteration.
package reference

import (
	"math"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
	"github.com/tisnik/svitava-deepzoom/numeric"
)

// escapeRadius is the fixed bailout magnitude used while filling the
// reference orbit.
const escapeRadius = 1e10

// rebaseThreshold is the magnitude below which a reference iterate is
// considered to underflow double precision and is kept in extended form
// instead (roughly 2^-500).
const rebaseThreshold = 1e-150

// Orbit is a single-use high-precision reference orbit. Callers must not
// construct one directly except through series.Approximation.GetReference:
// only that path keeps a repair pass's new reference consistent with the
// approximation's center.
type Orbit struct {
	// CHigh is the reference's location in arbitrary precision.
	CHigh arbitrary.ComplexArbitrary

	// zLow holds the double-complex image of each iterate after the
	// rebasing rule: rebased indices are also present here (as whatever
	// the narrowing produced) but authoritative values for them live in
	// extended.
	zLow []complex128

	// extended is the sparse side table of rebased iterates, keyed by
	// iteration index.
	extended map[uint]numeric.ComplexExtended

	// StartIteration is the first index this orbit is populated from; 0
	// unless constructed via the skip-start variant.
	StartIteration uint

	// CurrentIteration is set by Run to the last filled index.
	CurrentIteration uint

	MaximumIteration uint

	// EscapeIteration is the index at which |z| first exceeded
	// escapeRadius, or MaximumIteration if it never did.
	EscapeIteration uint

	// zHigh0 is the orbit's starting iterate in arbitrary precision, at
	// whatever precision CHigh carries. Run advances a running copy of
	// this value through Square()/Add() every iteration rather than
	// narrowing it to complex128 up front, so the recurrence itself stays
	// arbitrary-precision; only the per-iteration result is narrowed into
	// zLow/extended.
	zHigh0 arbitrary.ComplexArbitrary
}

// New constructs an orbit starting from z = z0 at iteration startIteration,
// both in arbitrary precision. By convention this is called only from
// series.Approximation's GetReference, including for the very first pass
// (startIteration the approximation's skip count, z0 its iterate there);
// calling it anywhere else risks a reference whose center disagrees with
// the approximation that seeded the pixels' delta_start values.
func New(cHigh arbitrary.ComplexArbitrary, z0 arbitrary.ComplexArbitrary, startIteration, maximumIteration uint) *Orbit {
	return &Orbit{
		CHigh:            cHigh,
		StartIteration:   startIteration,
		CurrentIteration: startIteration,
		MaximumIteration: maximumIteration,
		EscapeIteration:  maximumIteration,
		zHigh0:           z0,
		extended:         make(map[uint]numeric.ComplexExtended),
	}
}

// Run fills zLow[StartIteration..N] where N is the first index at which the
// orbit escapes escapeRadius, or MaximumIteration if it never escapes. The
// recurrence z <- z^2 + c runs entirely through ComplexArbitrary at CHigh's
// precision; only the narrowed result of each step is kept.
func (o *Orbit) Run() {
	span := o.MaximumIteration - o.StartIteration + 1
	o.zLow = make([]complex128, span)

	zHigh := o.zHigh0
	zExt := zHigh.ToComplexExtended()
	o.zLow[0] = zExt.ToComplex128()

	o.EscapeIteration = o.MaximumIteration
	o.CurrentIteration = o.StartIteration

	for n := uint(0); n < span-1; n++ {
		mag := cmplxAbs(zExt.ToComplex128())
		if mag > escapeRadius {
			o.EscapeIteration = o.StartIteration + n
			o.CurrentIteration = o.EscapeIteration
			o.zLow = o.zLow[:n+1]
			return
		}

		if mag < rebaseThreshold && mag != 0 {
			o.extended[o.StartIteration+n] = zExt
		}

		zHigh = zHigh.Square().Add(o.CHigh)
		zExt = zHigh.ToComplexExtended()
		o.zLow[n+1] = zExt.ToComplex128()
	}

	o.CurrentIteration = o.MaximumIteration
	o.EscapeIteration = o.MaximumIteration
}

// At returns the reference iterate at the given global iteration index,
// preferring the rebased extended-form value when one was recorded.
func (o *Orbit) At(iteration uint) complex128 {
	localIdx := iteration - o.StartIteration
	if ext, ok := o.extended[iteration]; ok {
		return ext.ToComplex128()
	}
	return o.zLow[localIdx]
}

// AtExtended returns the rebased extended-form value for iteration, and
// whether one was recorded at all (perturbation uses this to decide
// whether it must do the 2*Z*delta multiply in extended form).
func (o *Orbit) AtExtended(iteration uint) (numeric.ComplexExtended, bool) {
	ext, ok := o.extended[iteration]
	return ext, ok
}

// IsRebased reports whether iteration was recorded in the sparse extended
// side table.
func (o *Orbit) IsRebased(iteration uint) bool {
	_, ok := o.extended[iteration]
	return ok
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

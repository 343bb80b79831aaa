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

// Package series implements the series-approximation coefficient pipeline
// that lets the perturbation loop skip a shared prefix of iterations for
// every pixel at once.
package series

import (
	"math"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
	"github.com/tisnik/svitava-deepzoom/numeric"
	"github.com/tisnik/svitava-deepzoom/reference"
)

// MinOrder and MaxOrder bound the auto-order formula.
const (
	MinOrder = 3
	MaxOrder = 64
)

// probe is one of the four corner points the safe-skip test tracks
// alongside the coefficient recurrence.
type probe struct {
	delta        numeric.ComplexExtended
	exactDelta   complex128 // orbit computed directly by the perturbation recurrence
	withinBudget bool       // false once this probe has exceeded tolerance once
}

// Approximation is a one-shot series-approximation coefficient pipeline. It
// maintains its own copy of the δ=0 orbit: an Approximation is built once
// per reference, and for the very first pass no reference exists yet — the
// first reference is obtained from this Approximation via GetReference(0).
type Approximation struct {
	order  uint
	CHigh  arbitrary.ComplexArbitrary
	coeffs []numeric.ComplexExtended // coeffs[0] unused, coeffs[1..order]

	// zHigh is the approximation's own δ=0 orbit, carried in arbitrary
	// precision and advanced through Square()/Add() at CHigh's precision
	// each call to advance — the same recurrence reference.Orbit.Run uses,
	// so the very first reference this Approximation hands out is seeded
	// from a genuinely high-precision iterate rather than a double.
	zHigh arbitrary.ComplexArbitrary

	// zn is zHigh narrowed to a double, refreshed once per call to advance
	// for the coefficient recurrence and the probe orbits, both of which
	// only ever need double precision.
	zn complex128

	probes []probe

	deltaPixelSquared numeric.FloatExtended

	CurrentIteration uint
	MaximumIteration uint
}

// AutoOrder picks a default order from the image size:
// clamp(floor(log_1e6(W*H)^6.619 * 16), MinOrder, MaxOrder).
func AutoOrder(imageWidth, imageHeight uint) uint {
	n := float64(imageWidth) * float64(imageHeight)
	if n < 1 {
		n = 1
	}
	logBase := math.Log(n) / math.Log(1e6)
	raw := math.Floor(math.Pow(logBase, 6.619) * 16)
	order := uint(0)
	if raw > 0 {
		order = uint(raw)
	}
	if order < MinOrder {
		return MinOrder
	}
	if order > MaxOrder {
		return MaxOrder
	}
	return order
}

// New builds an Approximation directly from the high-precision center,
// starting its internal orbit at z=0, with four probe deltas placed at the
// image corners (in δ coordinates) and deltaPixelSquared the squared pixel
// spacing in extended form.
func New(order uint, center arbitrary.ComplexArbitrary, corners [4]numeric.ComplexExtended, deltaPixelSquared numeric.FloatExtended, maximumIteration uint) *Approximation {
	if order < MinOrder {
		order = MinOrder
	}
	coeffs := make([]numeric.ComplexExtended, order+1)

	probes := make([]probe, 4)
	for i, c := range corners {
		probes[i] = probe{delta: c, exactDelta: c.ToComplex128(), withinBudget: true}
	}

	return &Approximation{
		order:             order,
		CHigh:             center,
		coeffs:            coeffs,
		zHigh:             arbitrary.New(center.Precision()),
		zn:                complex(0, 0),
		probes:            probes,
		deltaPixelSquared: deltaPixelSquared,
		MaximumIteration:  maximumIteration,
	}
}

// Order reports the coefficient count the approximation was built with.
func (a *Approximation) Order() uint {
	return a.order
}

// Run advances the coefficient recurrence and the probe orbits one
// iteration at a time until a probe's relative error first exceeds
// deltaPixelSquared, or MaximumIteration-1 is reached.
func (a *Approximation) Run() {
	for a.CurrentIteration+1 < a.MaximumIteration {
		if !a.advance() {
			return
		}
		a.CurrentIteration++
	}
}

// advance performs one coefficient-recurrence step and one probe-orbit
// step, returning false the moment any probe's estimate exceeds tolerance.
// If a probe already exceeds tolerance at iteration 1, CurrentIteration
// stays at 0.
func (a *Approximation) advance() bool {
	zExt := numeric.ComplexExtendedFromComplex128(a.zn)
	twoZ := zExt.MulFloatExtended(numeric.NewFloatExtended(2, 0))

	next := make([]numeric.ComplexExtended, len(a.coeffs))
	one := numeric.ComplexExtendedFromComplex128(complex(1, 0))

	next[1] = twoZ.Mul(a.coeffs[1]).Add(one)
	for i := uint(2); i <= a.order; i++ {
		var crossSum numeric.ComplexExtended
		for j := uint(1); j < i; j++ {
			crossSum = crossSum.Add(a.coeffs[j].Mul(a.coeffs[i-j]))
		}
		next[i] = twoZ.Mul(a.coeffs[i]).Add(crossSum)
	}
	a.coeffs = next

	nextZHigh := a.zHigh.Square().Add(a.CHigh)
	nextZn := nextZHigh.ToComplexExtended().ToComplex128()

	for i := range a.probes {
		p := &a.probes[i]
		if !p.withinBudget {
			continue
		}
		p.exactDelta = 2*a.zn*p.exactDelta + p.exactDelta*p.exactDelta + p.delta.ToComplex128()

		estimate := a.evaluateAt(p.delta, a.coeffs)
		diff := estimate.ToComplex128() - p.exactDelta
		errSq := real(diff)*real(diff) + imag(diff)*imag(diff)
		if errSq > a.deltaPixelSquared.ToFloat64() {
			p.withinBudget = false
			return false
		}
	}

	a.zHigh = nextZHigh
	a.zn = nextZn
	return true
}

// Evaluate computes Σ aᵢ·δⁱ via Horner's method.
func (a *Approximation) Evaluate(delta numeric.ComplexExtended) numeric.ComplexExtended {
	return a.evaluateAt(delta, a.coeffs)
}

func (a *Approximation) evaluateAt(delta numeric.ComplexExtended, coeffs []numeric.ComplexExtended) numeric.ComplexExtended {
	order := len(coeffs) - 1
	acc := coeffs[order]
	for i := order - 1; i >= 1; i-- {
		acc = acc.Mul(delta).Add(coeffs[i])
	}
	return acc.Mul(delta).Reduce()
}

// GetReference returns a new reference orbit whose start_iteration equals
// CurrentIteration and whose initial z is Z_current + Evaluate(delta0), with
// both Z_current and c = center + delta0 combined in arbitrary precision.
// This is the only sanctioned way to obtain a reference, including the very
// first one at delta0 = 0.
func (a *Approximation) GetReference(delta0 numeric.ComplexExtended, maximumIteration uint) *reference.Orbit {
	seed := a.zHigh.AddFixed(a.Evaluate(delta0).ToComplex128())

	newCenter := a.CHigh.AddFixed(delta0.ToComplex128())

	return reference.New(newCenter, seed, a.CurrentIteration, maximumIteration)
}

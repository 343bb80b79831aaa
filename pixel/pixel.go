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

// Package pixel holds the per-pixel working state that the series
// approximation, reference orbit and perturbation loop all operate on.
package pixel

import "github.com/tisnik/svitava-deepzoom/numeric"

// State is the mutually-exclusive classification every pixel carries at
// all times.
type State int

const (
	// Active pixels are still being iterated.
	Active State = iota
	// Escaped pixels left the bailout radius before reaching maximum_iteration.
	Escaped
	// Glitched pixels diverged from their reference's frame and need repair.
	Glitched
	// ReachedMax pixels hit maximum_iteration without escaping or glitching.
	ReachedMax
)

// Data is one pixel's working state.
type Data struct {
	ImageX, ImageY uint

	// Iteration is the pixel's current global iteration count.
	Iteration uint

	// DeltaCentre is the pixel's displacement from the image center; set
	// once at construction and never recomputed.
	DeltaCentre numeric.ComplexExtended

	// DeltaReference is the pixel's displacement from the *current*
	// reference center; recomputed on every reference change.
	DeltaReference numeric.ComplexExtended

	// DeltaStart is the pixel's perturbed value at the start iteration,
	// i.e. SeriesApproximation.Evaluate(DeltaReference).
	DeltaStart numeric.ComplexExtended

	// DeltaCurrent is the current perturbed value, an ordinary double
	// complex in the active reference's frame.
	DeltaCurrent complex128

	// DerivativeCurrent is d(delta)/d(c), used for distance estimation.
	DerivativeCurrent complex128

	Glitched bool
	Escaped  bool
}

// New constructs a pixel at its initial (pre-iteration) state: delta_start
// doubles as delta_current, the derivative starts at 1, and iteration
// starts from the reference's skip count.
func New(imageX, imageY uint, deltaCentre, deltaStart numeric.ComplexExtended, startIteration uint) *Data {
	return &Data{
		ImageX:            imageX,
		ImageY:            imageY,
		Iteration:         startIteration,
		DeltaCentre:       deltaCentre,
		DeltaReference:    deltaCentre,
		DeltaStart:        deltaStart,
		DeltaCurrent:      deltaStart.ToComplex128(),
		DerivativeCurrent: complex(1, 0),
	}
}

// State classifies a pixel into exactly one of {active, escaped, glitched,
// reached_max}, which holds at all times.
func (d *Data) State(maximumIteration uint) State {
	switch {
	case d.Escaped:
		return Escaped
	case d.Glitched:
		return Glitched
	case d.Iteration >= maximumIteration:
		return ReachedMax
	default:
		return Active
	}
}

// ResetForRepair re-seeds a glitched pixel against a newly chosen
// reference. Derivative reset to 1 is a documented simplification: the
// derivative is not transformed across the reference change, only reset,
// which can leave visible seams in distance-estimated output.
func (d *Data) ResetForRepair(startIteration uint, deltaZ numeric.ComplexExtended, referenceOffset numeric.ComplexExtended) {
	d.Iteration = startIteration
	d.Glitched = false
	d.DeltaCurrent = d.DeltaStart.Sub(deltaZ).ToComplex128()
	d.DeltaReference = d.DeltaCentre.Sub(referenceOffset)
	d.DerivativeCurrent = complex(1, 0)
}

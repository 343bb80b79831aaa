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

// Package perturbation implements the hot inner loop that advances every
// non-escaped, non-glitched pixel's delta against a reference orbit in
// ordinary double precision.
package perturbation

import (
	"math"
	"runtime"
	"sync"

	"github.com/tisnik/svitava-deepzoom/numeric"
	"github.com/tisnik/svitava-deepzoom/pixel"
	"github.com/tisnik/svitava-deepzoom/reference"
)

// EscapeRadius is the fixed bailout magnitude.
const EscapeRadius = 1e10

// GlitchToleranceFactor scales |delta|^2 against which |Z+delta|^2 is
// compared to flag a glitch.
const GlitchToleranceFactor = 1e-3

// Iterate advances all non-escaped, non-glitched pixels in parallel from
// their current iteration up to nCap against the given reference orbit.
// Workers partition the slice into contiguous chunks, following the
// channel+WaitGroup row-worker pattern; there is no cross-pixel dependency
// so no locking is required.
func Iterate(pixels []*pixel.Data, ref *reference.Orbit, nCap uint) {
	workers := runtime.NumCPU()
	if workers > len(pixels) {
		workers = len(pixels)
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (len(pixels) + workers - 1) / workers
	work := make(chan []*pixel.Data, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunk := range work {
				for _, p := range chunk {
					iterateOne(p, ref, nCap)
				}
			}
		}()
	}

	for start := 0; start < len(pixels); start += chunkSize {
		end := start + chunkSize
		if end > len(pixels) {
			end = len(pixels)
		}
		work <- pixels[start:end]
	}
	close(work)
	wg.Wait()
}

// iterateOne advances a single pixel's delta by the perturbation
// recurrence until it escapes, glitches, or reaches nCap.
func iterateOne(p *pixel.Data, ref *reference.Orbit, nCap uint) {
	if p.Escaped || p.Glitched {
		return
	}

	cDelta := p.DeltaReference.ToComplex128()
	delta := p.DeltaCurrent
	derivative := p.DerivativeCurrent

	for p.Iteration < nCap {
		n := p.Iteration
		zn := ref.At(n)

		if ext, rebased := ref.AtExtended(n); rebased {
			twoZn := ext.MulFloatExtended(numeric.NewFloatExtended(2, 0))
			product := twoZn.Mul(numeric.ComplexExtendedFromComplex128(delta)).Reduce()
			if !representableInDouble(product) {
				p.Glitched = true
				break
			}
			zn = ext.ToComplex128()
		}

		sum := zn + delta
		magSq := real(sum)*real(sum) + imag(sum)*imag(sum)
		deltaMagSq := real(delta)*real(delta) + imag(delta)*imag(delta)

		if magSq < GlitchToleranceFactor*deltaMagSq {
			p.Glitched = true
			break
		}
		if math.Sqrt(magSq) > EscapeRadius {
			p.Escaped = true
			p.DeltaCurrent = delta
			p.DerivativeCurrent = derivative
			p.Iteration = n
			return
		}

		nextDelta := 2*zn*delta + delta*delta + cDelta
		nextDerivative := 2*sum*derivative + 1

		delta = nextDelta
		derivative = nextDerivative
		p.Iteration = n + 1
	}

	p.DeltaCurrent = delta
	p.DerivativeCurrent = derivative
}

// representableInDouble reports whether a rebased ComplexExtended value's
// magnitude still fits double precision once folded back to exponent 0.
func representableInDouble(c numeric.ComplexExtended) bool {
	r := c.Reduce()
	return r.Exponent > -1000 && r.Exponent < 1000
}

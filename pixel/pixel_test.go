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

package pixel_test

import (
	"testing"

	"github.com/tisnik/svitava-deepzoom/numeric"
	"github.com/tisnik/svitava-deepzoom/pixel"
)

func TestNewPixelIsActive(t *testing.T) {
	delta := numeric.ComplexExtendedFromComplex128(complex(0.1, -0.1))
	p := pixel.New(3, 7, delta, delta, 0)

	if p.ImageX != 3 || p.ImageY != 7 {
		t.Fatalf("unexpected coordinates: %+v", p)
	}
	if got := p.State(1000); got != pixel.Active {
		t.Fatalf("fresh pixel should be active, got %v", got)
	}
	if p.DerivativeCurrent != complex(1, 0) {
		t.Fatalf("derivative should start at 1, got %v", p.DerivativeCurrent)
	}
}

// Every pixel is in exactly one of
// {active, escaped, glitched, reached_max}.
func TestStateIsMutuallyExclusive(t *testing.T) {
	delta := numeric.ComplexExtendedFromComplex128(complex(0, 0))

	escaped := pixel.New(0, 0, delta, delta, 0)
	escaped.Escaped = true
	if got := escaped.State(100); got != pixel.Escaped {
		t.Fatalf("expected Escaped, got %v", got)
	}

	glitched := pixel.New(0, 0, delta, delta, 0)
	glitched.Glitched = true
	if got := glitched.State(100); got != pixel.Glitched {
		t.Fatalf("expected Glitched, got %v", got)
	}

	reachedMax := pixel.New(0, 0, delta, delta, 100)
	if got := reachedMax.State(100); got != pixel.ReachedMax {
		t.Fatalf("expected ReachedMax, got %v", got)
	}

	active := pixel.New(0, 0, delta, delta, 5)
	if got := active.State(100); got != pixel.Active {
		t.Fatalf("expected Active, got %v", got)
	}
}

// Escaped takes priority over reached_max when both conditions hold,
// matching the order the perturbation loop sets the flags in.
func TestEscapedTakesPriorityOverReachedMax(t *testing.T) {
	delta := numeric.ComplexExtendedFromComplex128(complex(0, 0))
	p := pixel.New(0, 0, delta, delta, 100)
	p.Escaped = true
	if got := p.State(100); got != pixel.Escaped {
		t.Fatalf("expected Escaped to take priority, got %v", got)
	}
}

func TestResetForRepairClearsGlitchAndRebasesIteration(t *testing.T) {
	delta := numeric.ComplexExtendedFromComplex128(complex(0.2, 0.3))
	p := pixel.New(1, 1, delta, delta, 0)
	p.Glitched = true
	p.Iteration = 500

	deltaZ := numeric.ComplexExtendedFromComplex128(complex(0.01, -0.02))
	referenceOffset := numeric.ComplexExtendedFromComplex128(complex(0.05, 0.05))
	p.ResetForRepair(42, deltaZ, referenceOffset)

	if p.Glitched {
		t.Fatal("glitched flag should be cleared")
	}
	if p.Iteration != 42 {
		t.Fatalf("iteration should rebase to 42, got %d", p.Iteration)
	}
	if got := p.State(1000); got != pixel.Active {
		t.Fatalf("repaired pixel should be active again, got %v", got)
	}
}

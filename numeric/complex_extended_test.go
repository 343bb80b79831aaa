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

package numeric_test

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/tisnik/svitava-deepzoom/numeric"
)

func TestComplexExtendedReduceIdempotent(t *testing.T) {
	for i := 0; i < 200; i++ {
		raw := numeric.NewComplexExtended(rand.Float64()*20-10, rand.Float64()*20-10, int32(rand.IntN(2000)-1000))
		once := raw.Reduce()
		twice := once.Reduce()
		if !once.Equal(twice) {
			t.Fatalf("reduce not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestComplexExtendedReduceCanonicalRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		raw := numeric.NewComplexExtended(rand.Float64()*2000-1000, rand.Float64()*2000-1000, int32(rand.IntN(100)))
		r := raw.Reduce()
		maxAbs := math.Max(math.Abs(r.Re), math.Abs(r.Im))
		if maxAbs == 0 {
			continue
		}
		if maxAbs < 1 || maxAbs >= 2 {
			t.Fatalf("max(|Re|,|Im|)=%v not in canonical range [1,2)", maxAbs)
		}
	}
}

func TestComplexExtendedMulAgreesWithComplex128AtExponentZero(t *testing.T) {
	for i := 0; i < 200; i++ {
		a := complex(rand.Float64()*2-1, rand.Float64()*2-1)
		b := complex(rand.Float64()*2-1, rand.Float64()*2-1)
		ea := numeric.ComplexExtendedFromComplex128(a)
		eb := numeric.ComplexExtendedFromComplex128(b)

		want := a * b
		got := ea.Mul(eb).ToComplex128()
		if math.Abs(real(got)-real(want)) > 1e-9 || math.Abs(imag(got)-imag(want)) > 1e-9 {
			t.Fatalf("mul mismatch: a=%v b=%v want=%v got=%v", a, b, want, got)
		}
	}
}

func TestComplexExtendedSquareMatchesMul(t *testing.T) {
	c := numeric.ComplexExtendedFromComplex128(complex(1.3, -0.7))
	if !c.Square().Equal(c.Mul(c)) {
		t.Fatalf("square should equal self-multiply")
	}
}

func TestComplexExtendedAddSubRoundTrip(t *testing.T) {
	a := numeric.ComplexExtendedFromComplex128(complex(3.0, -5.0))
	b := numeric.NewComplexExtended(1.1, 2.2, -400)
	sum := a.Add(b)
	back := sum.Sub(b)
	if cmplx.Abs(back.ToComplex128()-a.ToComplex128()) > 1e-9 {
		t.Fatalf("add/sub round trip failed: got %v want %v", back.ToComplex128(), a.ToComplex128())
	}
}

func TestComplexExtendedDivInverse(t *testing.T) {
	a := numeric.ComplexExtendedFromComplex128(complex(2.0, 1.0))
	b := numeric.ComplexExtendedFromComplex128(complex(0.5, -1.5))
	quotient := a.Div(b)
	back := quotient.Mul(b)
	if cmplx.Abs(back.ToComplex128()-a.ToComplex128()) > 1e-9 {
		t.Fatalf("div/mul round trip failed: got %v want %v", back.ToComplex128(), a.ToComplex128())
	}
}

func TestComplexExtendedMagnitudeSquared(t *testing.T) {
	c := numeric.ComplexExtendedFromComplex128(complex(3.0, 4.0))
	got := c.MagnitudeSquared().ToFloat64()
	if math.Abs(got-25.0) > 1e-9 {
		t.Fatalf("expected |3+4i|^2 = 25, got %v", got)
	}
}

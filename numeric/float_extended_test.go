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
	"math/rand/v2"
	"testing"

	"github.com/tisnik/svitava-deepzoom/numeric"
)

// S5: round-trip through FloatExtended is bit-for-bit exact for ordinary
// doubles.
func TestFloatExtendedRoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := (rand.Float64() - 0.5) * math.Pow(10, float64(rand.IntN(600)-300))
		got := numeric.FloatExtendedFromFloat64(x).ToFloat64()
		if got != x {
			t.Fatalf("round trip failed for %v: got %v", x, got)
		}
	}
}

func TestFloatExtendedRoundTripZero(t *testing.T) {
	fe := numeric.FloatExtendedFromFloat64(0)
	if fe.ToFloat64() != 0 {
		t.Fatalf("zero round trip failed: got %v", fe.ToFloat64())
	}
}

// Property 3: reduce(reduce(x)) == reduce(x).
func TestFloatExtendedReduceIdempotent(t *testing.T) {
	for i := 0; i < 200; i++ {
		raw := numeric.NewFloatExtended(rand.Float64()*20-10, int32(rand.IntN(2000)-1000))
		once := raw.Reduce()
		twice := once.Reduce()
		if !once.Equal(twice) {
			t.Fatalf("reduce not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestFloatExtendedReduceCanonicalRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		raw := numeric.NewFloatExtended(rand.Float64()*2000-1000, int32(rand.IntN(100)))
		r := raw.Reduce()
		if r.Mantissa == 0 {
			continue
		}
		m := math.Abs(r.Mantissa)
		if m < 1 || m >= 2 {
			t.Fatalf("mantissa %v not in canonical range [1,2)", r.Mantissa)
		}
	}
}

// Property 4: at exponent 0, FloatExtended arithmetic agrees with double
// arithmetic to within 1 ulp when the true result fits in a double.
func TestFloatExtendedAgreesWithDoubleAtExponentZero(t *testing.T) {
	for i := 0; i < 500; i++ {
		a := rand.Float64()*4 - 2
		b := rand.Float64()*4 - 2
		fa := numeric.NewFloatExtended(a, 0)
		fb := numeric.NewFloatExtended(b, 0)

		wantAdd := a + b
		gotAdd := fa.Add(fb).ToFloat64()
		if math.Abs(gotAdd-wantAdd) > math.Abs(math.Nextafter(wantAdd, math.Inf(1))-wantAdd) {
			t.Fatalf("add mismatch: a=%v b=%v want=%v got=%v", a, b, wantAdd, gotAdd)
		}

		wantMul := a * b
		gotMul := fa.Mul(fb).ToFloat64()
		if math.Abs(gotMul-wantMul) > math.Abs(math.Nextafter(wantMul, math.Inf(1))-wantMul) {
			t.Fatalf("mul mismatch: a=%v b=%v want=%v got=%v", a, b, wantMul, gotMul)
		}
	}
}

func TestParseFloatExtended(t *testing.T) {
	fe, err := numeric.ParseFloatExtended("1E0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fe.ToFloat64(); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("1E0 should be 1.0, got %v", got)
	}

	fe, err = numeric.ParseFloatExtended("1E2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fe.ToFloat64(); math.Abs(got-100.0) > 1e-6 {
		t.Fatalf("1E2 should be 100.0, got %v", got)
	}

	if _, err := numeric.ParseFloatExtended("bogus"); err == nil {
		t.Fatal("expected error for malformed zoom string")
	}
}

func TestFloatExtendedAddBigExponentGap(t *testing.T) {
	large := numeric.NewFloatExtended(1.5, 1000)
	tiny := numeric.NewFloatExtended(1.5, 1000-100)
	sum := large.Add(tiny)
	if !sum.Equal(large.Reduce()) {
		t.Fatalf("tiny operand should be absorbed, got %v want %v", sum, large.Reduce())
	}
}

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

package numeric

import "math"

// ComplexExtended represents (Re + Im*i) * 2^Exponent. Canonical form has
// max(|Re|, |Im|) in [1, 2), or both components zero with Exponent == 0.
type ComplexExtended struct {
	Re       float64
	Im       float64
	Exponent int32
}

// NewComplexExtended constructs a ComplexExtended from raw parts without
// reducing it.
func NewComplexExtended(re, im float64, exponent int32) ComplexExtended {
	return ComplexExtended{Re: re, Im: im, Exponent: exponent}
}

// ComplexExtendedFromComplex128 builds a canonical ComplexExtended from an
// ordinary double complex at exponent 0.
func ComplexExtendedFromComplex128(z complex128) ComplexExtended {
	return ComplexExtended{Re: real(z), Im: imag(z)}.Reduce()
}

// Reduce renormalizes the value so max(|Re|, |Im|) is 0 or in [1, 2).
func (c ComplexExtended) Reduce() ComplexExtended {
	maxAbs := math.Max(math.Abs(c.Re), math.Abs(c.Im))
	if maxAbs == 0 {
		return ComplexExtended{}
	}
	_, exp := math.Frexp(maxAbs)
	shift := exp - 1
	scale := math.Ldexp(1, -shift)
	return ComplexExtended{
		Re:       c.Re * scale,
		Im:       c.Im * scale,
		Exponent: c.Exponent + int32(shift),
	}
}

// ToComplex128 collapses the value back to a double complex, which may
// overflow or underflow if the exponent is out of double's range.
func (c ComplexExtended) ToComplex128() complex128 {
	scale := math.Ldexp(1, int(c.Exponent))
	return complex(c.Re*scale, c.Im*scale)
}

func (c ComplexExtended) isZero() bool {
	return c.Re == 0 && c.Im == 0
}

// Add implements the same shift-then-sum contract as FloatExtended.Add,
// applied component-wise with a shared shift.
func (c ComplexExtended) Add(other ComplexExtended) ComplexExtended {
	a, b := c.Reduce(), other.Reduce()
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}
	delta := a.Exponent - b.Exponent
	if delta > maxShiftBits {
		return a
	}
	if delta < -maxShiftBits {
		return b
	}
	if delta >= 0 {
		scale := math.Pow(2, float64(-delta))
		return ComplexExtended{
			Re:       a.Re + b.Re*scale,
			Im:       a.Im + b.Im*scale,
			Exponent: a.Exponent,
		}.Reduce()
	}
	scale := math.Pow(2, float64(delta))
	return ComplexExtended{
		Re:       b.Re + a.Re*scale,
		Im:       b.Im + a.Im*scale,
		Exponent: b.Exponent,
	}.Reduce()
}

// Negate flips the sign of both components.
func (c ComplexExtended) Negate() ComplexExtended {
	return ComplexExtended{Re: -c.Re, Im: -c.Im, Exponent: c.Exponent}
}

// Sub returns c - other.
func (c ComplexExtended) Sub(other ComplexExtended) ComplexExtended {
	return c.Add(other.Negate())
}

// Mul implements complex multiplication with exponents added and mantissas
// multiplied, then reduces.
func (c ComplexExtended) Mul(other ComplexExtended) ComplexExtended {
	return ComplexExtended{
		Re:       c.Re*other.Re - c.Im*other.Im,
		Im:       c.Re*other.Im + c.Im*other.Re,
		Exponent: c.Exponent + other.Exponent,
	}.Reduce()
}

// MulFloatExtended multiplies by a real-valued FloatExtended scalar.
func (c ComplexExtended) MulFloatExtended(scalar FloatExtended) ComplexExtended {
	return ComplexExtended{
		Re:       c.Re * scalar.Mantissa,
		Im:       c.Im * scalar.Mantissa,
		Exponent: c.Exponent + scalar.Exponent,
	}.Reduce()
}

// Square returns c * c, computed directly to avoid one redundant multiply.
func (c ComplexExtended) Square() ComplexExtended {
	return ComplexExtended{
		Re:       c.Re*c.Re - c.Im*c.Im,
		Im:       2 * c.Re * c.Im,
		Exponent: 2 * c.Exponent,
	}.Reduce()
}

// Div implements complex division (c / other), then reduces.
func (c ComplexExtended) Div(other ComplexExtended) ComplexExtended {
	denom := other.Re*other.Re + other.Im*other.Im
	return ComplexExtended{
		Re:       (c.Re*other.Re + c.Im*other.Im) / denom,
		Im:       (c.Im*other.Re - c.Re*other.Im) / denom,
		Exponent: c.Exponent - other.Exponent,
	}.Reduce()
}

// MagnitudeSquared returns |c|^2 as a FloatExtended, avoiding a premature
// collapse to float64 for deeply-zoomed values.
func (c ComplexExtended) MagnitudeSquared() FloatExtended {
	return FloatExtended{
		Mantissa: c.Re*c.Re + c.Im*c.Im,
		Exponent: 2 * c.Exponent,
	}.Reduce()
}

// Equal compares reduced forms.
func (c ComplexExtended) Equal(other ComplexExtended) bool {
	a, b := c.Reduce(), other.Reduce()
	return a.Re == b.Re && a.Im == b.Im && a.Exponent == b.Exponent
}

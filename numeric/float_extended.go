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

// Package numeric implements exponent-extended floating point and complex
// arithmetic. A FloatExtended/ComplexExtended widens the exponent range of
// a double without widening its mantissa, which is what lets perturbation
// arithmetic describe pixel deltas at zoom depths a plain float64 cannot
// represent.
package numeric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// log2Of10 converts a base-10 decimal exponent into a base-2 one.
const log2Of10 = math.Ln10 / math.Ln2

// maxShiftBits is the largest exponent difference at which the smaller
// operand of an addition still contributes any bits to the result.
const maxShiftBits = 53

// FloatExtended represents Mantissa * 2^Exponent. Canonical form has
// Mantissa == 0 (with Exponent == 0) or |Mantissa| in [1, 2).
type FloatExtended struct {
	Mantissa float64
	Exponent int32
}

// NewFloatExtended constructs a FloatExtended from raw parts without
// reducing it; callers that need canonical form call Reduce explicitly.
func NewFloatExtended(mantissa float64, exponent int32) FloatExtended {
	return FloatExtended{Mantissa: mantissa, Exponent: exponent}
}

// FloatExtendedFromFloat64 builds a canonical FloatExtended from a double.
func FloatExtendedFromFloat64(value float64) FloatExtended {
	if value == 0 {
		return FloatExtended{}
	}
	frac, exp := math.Frexp(value)
	return FloatExtended{Mantissa: frac * 2, Exponent: int32(exp) - 1}
}

// ParseFloatExtended parses a "<mantissa>E<decimal exponent>" string, e.g.
// "1E500", the same notation the zoom setting uses.
func ParseFloatExtended(s string) (FloatExtended, error) {
	parts := strings.SplitN(s, "E", 2)
	if len(parts) != 2 {
		return FloatExtended{}, fmt.Errorf("numeric: %q is not of the form <mantissa>E<exponent>", s)
	}
	mantissa, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return FloatExtended{}, fmt.Errorf("numeric: invalid mantissa in %q: %w", s, err)
	}
	decimalExponent, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return FloatExtended{}, fmt.Errorf("numeric: invalid exponent in %q: %w", s, err)
	}
	scaled := decimalExponent * log2Of10
	frac := scaled - math.Floor(scaled)
	return FloatExtended{
		Mantissa: mantissa * math.Pow(2, frac),
		Exponent: int32(math.Floor(scaled)),
	}.Reduce(), nil
}

// Reduce renormalizes the value so the mantissa is 0 or in [1, 2).
func (f FloatExtended) Reduce() FloatExtended {
	if f.Mantissa == 0 {
		return FloatExtended{}
	}
	frac, exp := math.Frexp(f.Mantissa)
	return FloatExtended{Mantissa: frac * 2, Exponent: f.Exponent + int32(exp) - 1}
}

// ToFloat64 collapses the value back to a double, which may overflow to
// +/-Inf or underflow to 0 if the exponent is out of double's range.
func (f FloatExtended) ToFloat64() float64 {
	return math.Ldexp(f.Mantissa, int(f.Exponent))
}

// Add shifts the smaller-exponent operand into the larger one's frame
// before summing; operands with exponents more than maxShiftBits apart
// absorb the smaller one as zero, a documented precision loss rather
// than a correctness bug.
func (f FloatExtended) Add(other FloatExtended) FloatExtended {
	a, b := f.Reduce(), other.Reduce()
	if a.Mantissa == 0 {
		return b
	}
	if b.Mantissa == 0 {
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
		return FloatExtended{
			Mantissa: a.Mantissa + b.Mantissa*math.Pow(2, float64(-delta)),
			Exponent: a.Exponent,
		}.Reduce()
	}
	return FloatExtended{
		Mantissa: b.Mantissa + a.Mantissa*math.Pow(2, float64(delta)),
		Exponent: b.Exponent,
	}.Reduce()
}

// Negate flips the sign of the mantissa, leaving the exponent untouched.
func (f FloatExtended) Negate() FloatExtended {
	return FloatExtended{Mantissa: -f.Mantissa, Exponent: f.Exponent}
}

// Sub returns f - other.
func (f FloatExtended) Sub(other FloatExtended) FloatExtended {
	return f.Add(other.Negate())
}

// Mul adds exponents and multiplies mantissas, then reduces.
func (f FloatExtended) Mul(other FloatExtended) FloatExtended {
	return FloatExtended{
		Mantissa: f.Mantissa * other.Mantissa,
		Exponent: f.Exponent + other.Exponent,
	}.Reduce()
}

// MulFloat64 multiplies by a plain double, useful for scale factors that
// never need their own extended exponent (e.g. 2.0, -1.0).
func (f FloatExtended) MulFloat64(scalar float64) FloatExtended {
	return f.Mul(FloatExtendedFromFloat64(scalar))
}

// Div divides mantissas and subtracts exponents, then reduces.
func (f FloatExtended) Div(other FloatExtended) FloatExtended {
	return FloatExtended{
		Mantissa: f.Mantissa / other.Mantissa,
		Exponent: f.Exponent - other.Exponent,
	}.Reduce()
}

// Square returns f * f.
func (f FloatExtended) Square() FloatExtended {
	return f.Mul(f)
}

// Equal compares reduced forms.
func (f FloatExtended) Equal(other FloatExtended) bool {
	a, b := f.Reduce(), other.Reduce()
	return a.Mantissa == b.Mantissa && a.Exponent == b.Exponent
}

// GreaterThan compares magnitudes in canonical form without collapsing
// to float64, so it stays meaningful for exponents far outside double's
// range. Both values are assumed non-negative, which holds for every
// radius/tolerance comparison this package performs.
func (f FloatExtended) GreaterThan(other FloatExtended) bool {
	a, b := f.Reduce(), other.Reduce()
	if a.Exponent != b.Exponent {
		return a.Exponent > b.Exponent
	}
	return a.Mantissa > b.Mantissa
}

func (f FloatExtended) String() string {
	return fmt.Sprintf("%gE%d(base2)", f.Mantissa, f.Exponent)
}

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

// Package arbitrary implements the multi-precision complex type used for
// the reference orbit center and the high-precision location. It wraps
// math/big.Float using the same calling convention the bigmath ephemeris
// toolkit uses for its own BigFloat type (SetPrec, Add, Sub, Mul, Quo).
package arbitrary

import (
	"fmt"
	"math/big"

	"github.com/tisnik/svitava-deepzoom/numeric"
)

// MinimumPrecision is the floor enforced by PrecisionForRadius:
// max(64, -radius.exponent + 64).
const MinimumPrecision = 64

// PrecisionExtraBits is the headroom added beyond the radius exponent.
const PrecisionExtraBits = 64

// ComplexArbitrary is a multi-precision complex number with both
// components sharing one precision (bits of mantissa).
type ComplexArbitrary struct {
	Re   *big.Float
	Im   *big.Float
	prec uint
}

// PrecisionForRadius computes the precision (in bits) needed so that
// 1/zoom is resolved with at least PrecisionExtraBits bits of headroom
// beyond the pixel radius' exponent.
func PrecisionForRadius(radiusExponent int32) uint {
	needed := -radiusExponent + PrecisionExtraBits
	if needed < MinimumPrecision {
		return MinimumPrecision
	}
	return uint(needed)
}

// New constructs a zero-valued ComplexArbitrary at the given precision.
func New(prec uint) ComplexArbitrary {
	return ComplexArbitrary{
		Re:   new(big.Float).SetPrec(prec),
		Im:   new(big.Float).SetPrec(prec),
		prec: prec,
	}
}

// Parse builds a ComplexArbitrary from decimal strings for the real and
// imaginary parts, at the given precision. This is how the render center's
// "real"/"imag" settings are materialized.
func Parse(realStr, imagStr string, prec uint) (ComplexArbitrary, error) {
	re, _, err := big.ParseFloat(realStr, 10, prec, big.ToNearestEven)
	if err != nil {
		return ComplexArbitrary{}, fmt.Errorf("arbitrary: invalid real part %q: %w", realStr, err)
	}
	im, _, err := big.ParseFloat(imagStr, 10, prec, big.ToNearestEven)
	if err != nil {
		return ComplexArbitrary{}, fmt.Errorf("arbitrary: invalid imaginary part %q: %w", imagStr, err)
	}
	return ComplexArbitrary{Re: re, Im: im, prec: prec}, nil
}

// Precision returns the number of mantissa bits each component carries.
func (c ComplexArbitrary) Precision() uint {
	return c.prec
}

// Clone returns an independent copy, since *big.Float is mutated in place
// by its own methods and ComplexArbitrary values are otherwise shared by
// the pointers they hold.
func (c ComplexArbitrary) Clone() ComplexArbitrary {
	return ComplexArbitrary{
		Re:   new(big.Float).SetPrec(c.prec).Set(c.Re),
		Im:   new(big.Float).SetPrec(c.prec).Set(c.Im),
		prec: c.prec,
	}
}

// Add returns c + other, both ComplexArbitrary values at c's precision.
func (c ComplexArbitrary) Add(other ComplexArbitrary) ComplexArbitrary {
	return ComplexArbitrary{
		Re:   new(big.Float).SetPrec(c.prec).Add(c.Re, other.Re),
		Im:   new(big.Float).SetPrec(c.prec).Add(c.Im, other.Im),
		prec: c.prec,
	}
}

// AddFixed returns c + z for an ordinary double-complex immediate, used
// when shifting the reference center by a pixel-sized delta while picking
// a new reference orbit.
func (c ComplexArbitrary) AddFixed(z complex128) ComplexArbitrary {
	return ComplexArbitrary{
		Re:   new(big.Float).SetPrec(c.prec).Add(c.Re, big.NewFloat(real(z))),
		Im:   new(big.Float).SetPrec(c.prec).Add(c.Im, big.NewFloat(imag(z))),
		prec: c.prec,
	}
}

// Square returns c * c.
func (c ComplexArbitrary) Square() ComplexArbitrary {
	reSq := new(big.Float).SetPrec(c.prec).Mul(c.Re, c.Re)
	imSq := new(big.Float).SetPrec(c.prec).Mul(c.Im, c.Im)
	re := new(big.Float).SetPrec(c.prec).Sub(reSq, imSq)

	crossTerm := new(big.Float).SetPrec(c.prec).Mul(c.Re, c.Im)
	im := new(big.Float).SetPrec(c.prec).Mul(crossTerm, big.NewFloat(2))

	return ComplexArbitrary{Re: re, Im: im, prec: c.prec}
}

// ToComplexExtended converts the value to a ComplexExtended, taking the
// mantissa of each component with a shared exponent derived from the
// larger-magnitude component.
func (c ComplexArbitrary) ToComplexExtended() numeric.ComplexExtended {
	reMantissa := new(big.Float).SetPrec(53)
	reExp := c.Re.MantExp(reMantissa)
	imMantissa := new(big.Float).SetPrec(53)
	imExp := c.Im.MantExp(imMantissa)

	sharedExp := reExp
	if imExp > sharedExp {
		sharedExp = imExp
	}

	reF64, _ := reMantissa.Float64()
	imF64, _ := imMantissa.Float64()

	return numeric.NewComplexExtended(
		reF64*pow2(reExp-sharedExp),
		imF64*pow2(imExp-sharedExp),
		int32(sharedExp),
	).Reduce()
}

func pow2(exp int) float64 {
	f := new(big.Float).SetMantExp(big.NewFloat(1), exp)
	v, _ := f.Float64()
	return v
}

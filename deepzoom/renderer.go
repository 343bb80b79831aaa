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

// Package deepzoom implements the Renderer that orchestrates the series
// approximation, reference orbit and perturbation loop into a complete
// deep-zoom render, including the glitch-repair loop and keyframe
// sequencing.
package deepzoom

import (
	"fmt"
	"log"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/tisnik/svitava-deepzoom/arbitrary"
	"github.com/tisnik/svitava-deepzoom/deepimage"
	"github.com/tisnik/svitava-deepzoom/diagnostics"
	imagewriter "github.com/tisnik/svitava-deepzoom/image"
	"github.com/tisnik/svitava-deepzoom/numeric"
	"github.com/tisnik/svitava-deepzoom/palettes"
	"github.com/tisnik/svitava-deepzoom/params"
	"github.com/tisnik/svitava-deepzoom/perturbation"
	"github.com/tisnik/svitava-deepzoom/pixel"
	"github.com/tisnik/svitava-deepzoom/reference"
	"github.com/tisnik/svitava-deepzoom/series"
)

// MaxPrecisionBits is the platform-imposed ceiling PrecisionExhaustedError
// guards against.
const MaxPrecisionBits = 1 << 20

// defaultGlitchTolerance mirrors renderer.rs's own default of 0.01.
const defaultGlitchTolerance = 0.01

// maxRepairPasses bounds the glitch-repair loop as a safeguard against the
// "no progress" termination case.
const maxRepairPasses = 10000

// Renderer is a single deep-zoom render's setup: image geometry, zoom, and
// the high-precision center, computed once from Settings and reused across
// Render and RenderSequence.
type Renderer struct {
	width, height uint
	aspect        float64

	zoom   numeric.FloatExtended
	center arbitrary.ComplexArbitrary

	maximumIteration   uint
	approximationOrder uint
	glitchTolerance    float64

	palette palettes.Palette

	lastRepairLog *diagnostics.RepairLog
}

// LastRepairLog returns the glitch-repair pass history from the most recent
// call to Render, or nil if Render has not run yet.
func (r *Renderer) LastRepairLog() *diagnostics.RepairLog {
	return r.lastRepairLog
}

// New validates settings and performs the setup phase: it parses the zoom
// string, computes the arbitrary-precision center and its precision, and
// resolves the series-approximation order.
func New(settings params.Settings, palette palettes.Palette) (*Renderer, error) {
	if settings.ImageWidth == 0 || settings.ImageHeight == 0 {
		return nil, &ConfigError{Key: "image_width/image_height", Err: fmt.Errorf("must be non-zero")}
	}

	zoom, err := numeric.ParseFloatExtended(settings.Zoom)
	if err != nil {
		return nil, &ConfigError{Key: "zoom", Err: err}
	}

	height := float64(settings.ImageHeight)
	deltaPixelRaw := -2.0 * (4.0/height - 2.0) / zoom.Mantissa / height
	deltaPixel := numeric.NewFloatExtended(deltaPixelRaw, -zoom.Exponent).Reduce()
	radius := deltaPixel.MulFloat64(float64(settings.ImageWidth))

	precision := arbitrary.PrecisionForRadius(radius.Exponent)
	if precision > MaxPrecisionBits {
		return nil, &PrecisionExhaustedError{RequestedBits: precision, CeilingBits: MaxPrecisionBits}
	}

	center, err := arbitrary.Parse(settings.Real, settings.Imag, precision)
	if err != nil {
		return nil, &LocationError{Real: settings.Real, Imag: settings.Imag, Err: err}
	}

	order := settings.ApproximationOrder
	if order == 0 {
		order = series.AutoOrder(settings.ImageWidth, settings.ImageHeight)
	}

	tolerance := settings.GlitchTolerance
	if tolerance == 0 {
		tolerance = defaultGlitchTolerance
	}

	return &Renderer{
		width:              settings.ImageWidth,
		height:             settings.ImageHeight,
		aspect:             float64(settings.ImageWidth) / float64(settings.ImageHeight),
		zoom:               zoom,
		center:             center,
		maximumIteration:   settings.Iterations,
		approximationOrder: order,
		glitchTolerance:    tolerance,
		palette:            palette,
	}, nil
}

// pixelGeometry is the per-render derived quantities that depend only on
// the current zoom level, since RenderSequence mutates zoom between
// keyframes.
type pixelGeometry struct {
	deltaPixelRaw   float64
	deltaTopLeftRe  float64
	deltaTopLeftIm  float64
	sharedExponent  int32
}

func (r *Renderer) geometry() pixelGeometry {
	w, h := float64(r.width), float64(r.height)
	deltaPixelRaw := -2.0 * (4.0/h - 2.0) / r.zoom.Mantissa / h
	return pixelGeometry{
		deltaPixelRaw:  deltaPixelRaw,
		deltaTopLeftRe: (4.0/w - 2.0) / r.zoom.Mantissa * r.aspect,
		deltaTopLeftIm: (4.0/h - 2.0) / r.zoom.Mantissa,
		sharedExponent: -r.zoom.Exponent,
	}
}

func (g pixelGeometry) deltaCentre(i, j uint) numeric.ComplexExtended {
	return numeric.NewComplexExtended(
		float64(i)*g.deltaPixelRaw+g.deltaTopLeftRe,
		float64(j)*g.deltaPixelRaw+g.deltaTopLeftIm,
		g.sharedExponent,
	).Reduce()
}

// Render performs the first pass and glitch-repair loop, logging
// per-phase timings, and returns the colored image. A non-nil
// *ErrGlitchUnresolvable is returned alongside a valid image when the
// repair loop exhausts its pass budget without converging.
func (r *Renderer) Render(jobID uuid.UUID) (*deepimage.Image, error) {
	g := r.geometry()

	corners := [4]numeric.ComplexExtended{
		g.deltaCentre(0, 0),
		g.deltaCentre(r.width-1, 0),
		g.deltaCentre(0, r.height-1),
		g.deltaCentre(r.width-1, r.height-1),
	}
	deltaPixelExtended := numeric.NewFloatExtended(g.deltaPixelRaw, g.sharedExponent).Reduce()
	deltaPixelSquared := deltaPixelExtended.Square()

	start := time.Now()
	sa := series.New(r.approximationOrder, r.center, corners, deltaPixelSquared, r.maximumIteration)
	sa.Run()
	log.Printf("[%s] %-14s %6d ms (order %d, skipped %d)", jobID, "Approximation", time.Since(start).Milliseconds(), r.approximationOrder, sa.CurrentIteration)

	start = time.Now()
	zero := numeric.ComplexExtendedFromComplex128(complex(0, 0))
	orbit := sa.GetReference(zero, r.maximumIteration)
	orbit.Run()
	log.Printf("[%s] %-14s %6d ms (precision %d, iterations %d)", jobID, "Reference", time.Since(start).Milliseconds(), r.center.Precision(), orbit.CurrentIteration)

	start = time.Now()
	pixels := make([]*pixel.Data, 0, r.width*r.height)
	for j := uint(0); j < r.height; j++ {
		for i := uint(0); i < r.width; i++ {
			deltaCentre := g.deltaCentre(i, j)
			deltaStart := sa.Evaluate(deltaCentre)
			pixels = append(pixels, pixel.New(i, j, deltaCentre, deltaStart, orbit.StartIteration))
		}
	}
	log.Printf("[%s] %-14s %6d ms", jobID, "Packing", time.Since(start).Milliseconds())

	start = time.Now()
	perturbation.Iterate(pixels, orbit, orbit.CurrentIteration)
	log.Printf("[%s] %-14s %6d ms", jobID, "Iteration", time.Since(start).Milliseconds())

	start = time.Now()
	img, err := deepimage.New(r.width, r.height)
	if err != nil {
		return nil, err
	}
	exportPixels(&img, pixels, orbit, r.maximumIteration)
	log.Printf("[%s] %-14s %6d ms", jobID, "Coloring", time.Since(start).Milliseconds())

	start = time.Now()
	glitched := retainGlitched(pixels)
	threshold := 0.01 * r.glitchTolerance * float64(r.width) * float64(r.height)

	repairLog := &diagnostics.RepairLog{JobID: jobID.String()}
	repairLog.Record(len(glitched))

	lastCount := -1
	for pass := 0; len(glitched) > 0 && float64(len(glitched)) > threshold && pass < maxRepairPasses; pass++ {
		if len(glitched) == lastCount {
			break
		}
		lastCount = len(glitched)

		chosen := glitched[rand.IntN(len(glitched))]
		deltaRef := chosen.DeltaCentre
		deltaZ := sa.Evaluate(deltaRef)

		repairOrbit := sa.GetReference(deltaRef, r.maximumIteration)
		repairOrbit.Run()

		for _, p := range glitched {
			p.ResetForRepair(repairOrbit.StartIteration, deltaZ, deltaRef)
		}

		perturbation.Iterate(glitched, repairOrbit, repairOrbit.CurrentIteration)
		exportPixels(&img, glitched, repairOrbit, r.maximumIteration)

		glitched = retainGlitched(glitched)
		repairLog.Record(len(glitched))
	}
	r.lastRepairLog = repairLog
	log.Printf("[%s] %-14s %6d ms (remaining %d)", jobID, "Fixing", time.Since(start).Milliseconds(), len(glitched))

	if len(glitched) > 0 && float64(len(glitched)) > threshold {
		return &img, &ErrGlitchUnresolvable{Residual: len(glitched)}
	}
	return &img, nil
}

// RenderToFile renders and writes the result as a PNG, mirroring the
// teacher's own image.Writer collaborator instead of hand-rolling output
// encoding here. ErrGlitchUnresolvable is logged, not treated as fatal:
// the image is written regardless.
func (r *Renderer) RenderToFile(jobID uuid.UUID, filename string) error {
	img, err := r.Render(jobID)
	var unresolved *ErrGlitchUnresolvable
	switch {
	case err == nil:
	case isGlitchUnresolvable(err, &unresolved):
		log.Printf("[%s] warning: %v", jobID, err)
	default:
		return err
	}

	img.ApplyPalette(r.palette)

	start := time.Now()
	writer := imagewriter.NewPNGImageWriter()
	writeErr := writer.WriteImage(filename, img.RGBA)
	log.Printf("[%s] %-14s %6d ms", jobID, "Saving", time.Since(start).Milliseconds())
	return writeErr
}

// RenderSequence renders successive keyframes at decreasing zoom until the
// zoom magnitude drops to 1.0 or below, writing one PNG per keyframe under
// outDir.
func (r *Renderer) RenderSequence(scaleFactor float64, outDir string) error {
	count := 0
	for r.zoom.ToFloat64() > 1.0 {
		jobID := uuid.New()
		filename := fmt.Sprintf("%s/keyframe_%08d.png", outDir, count)
		if err := r.RenderToFile(jobID, filename); err != nil {
			var unresolved *ErrGlitchUnresolvable
			if !isGlitchUnresolvable(err, &unresolved) {
				return err
			}
		}
		r.zoom = numeric.NewFloatExtended(r.zoom.Mantissa/scaleFactor, r.zoom.Exponent).Reduce()
		count++
	}
	return nil
}

// WriteDiagnostics writes the last render's glitch-repair history as an HTML
// chart, returning an error if Render has not run yet.
func (r *Renderer) WriteDiagnostics(filename string) error {
	if r.lastRepairLog == nil {
		return fmt.Errorf("deepzoom: no repair log recorded yet")
	}
	return r.lastRepairLog.WriteHTML(filename)
}

func isGlitchUnresolvable(err error, target **ErrGlitchUnresolvable) bool {
	unresolved, ok := err.(*ErrGlitchUnresolvable)
	if ok {
		*target = unresolved
	}
	return ok
}

// retainGlitched returns the subset of pixels still glitched, freeing the
// rest: only still-glitched pixels are retained.
func retainGlitched(pixels []*pixel.Data) []*pixel.Data {
	kept := pixels[:0]
	for _, p := range pixels {
		if p.Glitched {
			kept = append(kept, p)
		}
	}
	return kept
}

// exportPixels colors each pixel into img.I, smooth-shading escaped pixels
// by their continuous escape magnitude, leaving reached-max pixels black
// and glitched pixels at the palette's last index until a later pass
// resolves them.
func exportPixels(img *deepimage.Image, pixels []*pixel.Data, ref *reference.Orbit, maximumIteration uint) {
	for _, p := range pixels {
		var index byte
		switch p.State(maximumIteration) {
		case pixel.Escaped:
			zFull := ref.At(p.Iteration) + p.DeltaCurrent
			mag := cmplx.Abs(zFull)
			smooth := float64(p.Iteration)
			if mag > 1 {
				smooth -= math.Log2(math.Log(mag) / math.Log(perturbation.EscapeRadius))
			}
			index = byte(uint64(smooth*4) & 0xff)
		case pixel.Glitched:
			index = 255
		case pixel.ReachedMax, pixel.Active:
			index = 0
		}
		img.Z[p.ImageY][p.ImageX] = deepimage.ZPixel(complex(float32(p.ImageX), float32(p.ImageY)))
		img.I[p.ImageY][p.ImageX] = deepimage.IPixel(index)
	}
}

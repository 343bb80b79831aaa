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

package deepzoom_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/tisnik/svitava-deepzoom/deepzoom"
	"github.com/tisnik/svitava-deepzoom/palettes"
	"github.com/tisnik/svitava-deepzoom/params"
)

func grayscalePalette() palettes.Palette {
	p := make(palettes.Palette, 256)
	for i := range p {
		p[i] = []byte{byte(i), byte(i), byte(i)}
	}
	return p
}

func TestNewRejectsZeroDimensions(t *testing.T) {
	settings := params.Settings{ImageWidth: 0, ImageHeight: 8, Iterations: 10, Zoom: "1E0", Real: "-0.5", Imag: "0.0"}

	_, err := deepzoom.New(settings, grayscalePalette())
	var configErr *deepzoom.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestNewRejectsUnparsableZoom(t *testing.T) {
	settings := params.Settings{ImageWidth: 8, ImageHeight: 8, Iterations: 10, Zoom: "not-a-zoom", Real: "-0.5", Imag: "0.0"}

	_, err := deepzoom.New(settings, grayscalePalette())
	var configErr *deepzoom.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected *ConfigError for unparsable zoom, got %v", err)
	}
}

func TestNewRejectsUnparsableLocation(t *testing.T) {
	settings := params.Settings{ImageWidth: 8, ImageHeight: 8, Iterations: 10, Zoom: "1E0", Real: "not-a-number", Imag: "0.0"}

	_, err := deepzoom.New(settings, grayscalePalette())
	var locationErr *deepzoom.LocationError
	if !errors.As(err, &locationErr) {
		t.Fatalf("expected *LocationError, got %v", err)
	}
}

// S1-style baseline: a small, shallow-zoom render at a smooth interior point
// should complete without needing glitch repair.
func TestRenderShallowZoomCompletes(t *testing.T) {
	settings := params.Settings{
		ImageWidth:  16,
		ImageHeight: 16,
		Iterations:  200,
		Zoom:        "1E0",
		Real:        "-0.5",
		Imag:        "0.0",
	}

	r, err := deepzoom.New(settings, grayscalePalette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := r.Render(uuid.New())
	if err != nil {
		var unresolved *deepzoom.ErrGlitchUnresolvable
		if !errors.As(err, &unresolved) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if img == nil {
		t.Fatal("expected a non-nil image even when glitch repair did not fully converge")
	}
	if img.Resolution.Width != 16 || img.Resolution.Height != 16 {
		t.Fatalf("expected a 16x16 image, got %dx%d", img.Resolution.Width, img.Resolution.Height)
	}
}

func TestRenderToFileWritesPNG(t *testing.T) {
	settings := params.Settings{
		ImageWidth:  8,
		ImageHeight: 8,
		Iterations:  100,
		Zoom:        "1E0",
		Real:        "-0.5",
		Imag:        "0.0",
	}

	r, err := deepzoom.New(settings, grayscalePalette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filename := filepath.Join(t.TempDir(), "out.png")
	err = r.RenderToFile(uuid.New(), filename)
	var unresolved *deepzoom.ErrGlitchUnresolvable
	if err != nil && !errors.As(err, &unresolved) {
		t.Fatalf("unexpected error: %v", err)
	}
}

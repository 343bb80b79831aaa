//
//  (C) Copyright 2024 - 2025  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

package params

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrSettingsNotFound is returned by LoadSettings when the named job does
// not appear in the TOML file.
var ErrSettingsNotFound = errors.New("params: deepzoom settings not found")

// Settings is a single deep-zoom render job's configuration, validated
// with struct tags before a render starts.
type Settings struct {
	ImageWidth  uint `toml:"image_width" validate:"required,min=1,max=65535" json:"imageWidth"`
	ImageHeight uint `toml:"image_height" validate:"required,min=1,max=65535" json:"imageHeight"`
	Iterations  uint `toml:"iterations" validate:"required,min=1" json:"iterations"`

	// Zoom is "<mantissa>E<decimal_exponent>", e.g. "1E500".
	Zoom string `toml:"zoom" validate:"required" json:"zoom"`

	// Real and Imag are decimal strings; precision is dictated by the
	// zoom exponent's magnitude, not by how many digits are written here.
	Real string `toml:"real" validate:"required" json:"real"`
	Imag string `toml:"imag" validate:"required" json:"imag"`

	GlitchTolerance    float64 `toml:"glitch_tolerance" validate:"min=0" json:"glitchTolerance"`
	ApproximationOrder uint    `toml:"approximation_order" json:"approximationOrder"`
}

// settingsFile is the TOML document shape LoadSettings reads: a named
// table per job, mirroring FractalParameters' own `[[fractal]]` idiom.
type settingsFile struct {
	Jobs map[string]Settings `toml:"deepzoom"`
}

// LoadSettings reads one named deep-zoom job's settings from filename,
// following the same os.Stat-then-DecodeFile shape as
// LoadFractalParameters.
func LoadSettings(filename, jobName string) (Settings, error) {
	var file settingsFile

	_, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return Settings{}, errors.New("Settings file does not exist.")
	}
	if err != nil {
		log.Fatal(err)
		return Settings{}, err
	}

	_, err = toml.DecodeFile(filename, &file)
	if err != nil {
		log.Fatal(err)
		return Settings{}, err
	}

	settings, ok := file.Jobs[jobName]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q in %s", ErrSettingsNotFound, jobName, filename)
	}

	if settings.GlitchTolerance == 0 {
		settings.GlitchTolerance = 0.01
	}

	return settings, nil
}

// Validate runs struct-tag validation over Settings, mirroring how
// reelgoofy validates its request bodies before acting on them.
func (s Settings) Validate() error {
	return validator.New().Struct(s)
}

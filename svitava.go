//
//  (C) Copyright 2019, 2020, 2021, 2022, 2023, 2024  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/tisnik/svitava-deepzoom/configuration"
	"github.com/tisnik/svitava-deepzoom/deepzoom"
	"github.com/tisnik/svitava-deepzoom/image"
	"github.com/tisnik/svitava-deepzoom/palettes"
	"github.com/tisnik/svitava-deepzoom/renderer"
	"github.com/tisnik/svitava-deepzoom/server"

	"github.com/tisnik/svitava-deepzoom/params"
)

const (
	CONFIG_FILE_NAME = "config.toml"
)

func runInDemoMode() {
	log.Println("Starting demo mode: render all fractals available")

	palette, err := palettes.LoadTextRGBPalette("data/blues.map")
	log.Println("Color palette loaded")

	resolution := image.Resolution{
		Width:  512,
		Height: 512,
	}

	r := renderer.NewSingleGoroutineRenderer()

	parameters, err := params.LoadFractalParameters("data/complex_fractals.toml")
	log.Printf("Fractal configuration:  %v  %v", parameters, err)

	var writer image.Writer
	writer = image.NewBMPImageWriter()
	log.Println("BMP image writer initialized")

	fractals := []string{
		"Classic Mandelbrot set",
		"Classic Julia set",
		"Mandelbrot set z=z^3+c",
		"Mandelbrot set z=z^4+c",
		"Mandelbrot set z=z^2-z+c",
		"Phoenix set, Mandelbrot variant",
		"Phoenix set, Julia variant",
		"Lambda, Mandelbrot variant",
		"Lambda, Julia variant",
		"Manowar, Mandelbrot variant",
		"Manowar, Julia variant",
	}

	for _, fractal := range fractals {
		log.Println("Rendering", fractal, "started")
		t1 := time.Now()
		img := r.RenderComplexFractal(resolution, parameters[fractal], palette)
		writer.WriteImage(fractal+".bmp", img)
		t2 := time.Now()
		log.Println("Rendering", fractal, "finished in", t2.Sub(t1))
	}
}

func runInServerMode(port uint, deepZoomConfig configuration.DeepZoomConfiguration) {
	log.Println("Starting server")
	r := renderer.NewSingleGoroutineRenderer()
	server := server.NewHTTPServer(port, r, deepZoomConfig)
	server.Serve()
}

// runInDeepZoomMode renders a single deep-zoom image directly from the CLI
// flags, following the same log.Println/time.Now() phase-timing idiom as
// runInDemoMode.
func runInDeepZoomMode(settings params.Settings, deepZoomConfig configuration.DeepZoomConfiguration, paletteName, outFile string) {
	log.Println("Starting deep-zoom render")

	applyDeepZoomDefaults(&settings, deepZoomConfig)

	palette, err := palettes.LoadTextRGBPalette(paletteName)
	if err != nil {
		log.Fatalf("unable to load palette %q: %v", paletteName, err)
	}

	r, err := deepzoom.New(settings, palette)
	if err != nil {
		log.Fatalf("unable to set up deep-zoom renderer: %v", err)
	}

	t1 := time.Now()
	jobID := uuid.New()
	if err := r.RenderToFile(jobID, outFile); err != nil {
		var unresolved *deepzoom.ErrGlitchUnresolvable
		if !asErrGlitchUnresolvable(err, &unresolved) {
			log.Fatalf("deep-zoom render failed: %v", err)
		}
		log.Printf("deep-zoom render finished with residual glitches: %v", err)
	}
	log.Println("Deep-zoom render finished in", time.Since(t1))
}

// runInDeepZoomSequenceMode renders a full keyframe sequence from zoom
// down to 1.0, one PNG per keyframe.
func runInDeepZoomSequenceMode(settings params.Settings, deepZoomConfig configuration.DeepZoomConfiguration, paletteName, outDir string, scaleFactor float64) {
	log.Println("Starting deep-zoom keyframe sequence")

	applyDeepZoomDefaults(&settings, deepZoomConfig)

	palette, err := palettes.LoadTextRGBPalette(paletteName)
	if err != nil {
		log.Fatalf("unable to load palette %q: %v", paletteName, err)
	}

	r, err := deepzoom.New(settings, palette)
	if err != nil {
		log.Fatalf("unable to set up deep-zoom renderer: %v", err)
	}

	t1 := time.Now()
	if err := r.RenderSequence(scaleFactor, outDir); err != nil {
		log.Fatalf("deep-zoom sequence failed: %v", err)
	}
	log.Println("Deep-zoom sequence finished in", time.Since(t1))
}

// applyDeepZoomDefaults fills in zero-valued settings fields from the
// config.toml "[deepzoom]" block and caps Iterations at
// MaxReferenceIterations, the same fallback-then-clamp the HTTP API
// applies to request bodies in server/deepzoom_handlers.go.
func applyDeepZoomDefaults(settings *params.Settings, config configuration.DeepZoomConfiguration) {
	if settings.GlitchTolerance == 0 && config.DefaultGlitchTolerance > 0 {
		settings.GlitchTolerance = config.DefaultGlitchTolerance
	}
	if settings.ApproximationOrder == 0 && config.DefaultApproximationOrder > 0 {
		settings.ApproximationOrder = config.DefaultApproximationOrder
	}
	if config.MaxReferenceIterations > 0 && settings.Iterations > config.MaxReferenceIterations {
		log.Printf("capping iterations at %d (config max_reference_iterations)", config.MaxReferenceIterations)
		settings.Iterations = config.MaxReferenceIterations
	}
}

func asErrGlitchUnresolvable(err error, target **deepzoom.ErrGlitchUnresolvable) bool {
	unresolved, ok := err.(*deepzoom.ErrGlitchUnresolvable)
	if ok {
		*target = unresolved
	}
	return ok
}

func listAllFractals() {
	parameters, _ := params.LoadFractalParameters("data/complex_fractals.toml")

	names := make([]string, len(parameters))
	i := 0
	for name := range parameters {
		names[i] = name
		i++
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Println(name)
	}
}

func main() {
	var width uint
	var height uint
	var aa bool
	var startServer bool
	var startTUI bool
	var execute string
	var port uint
	var demoMode bool
	var fractal string
	var listFractals bool

	var deepZoomMode bool
	var sequence bool
	var zoom string
	var real string
	var imag string
	var iterations uint
	var approximationOrder uint
	var glitchTolerance float64
	var scaleFactor float64
	var paletteName string
	var outFile string

	configuration, err := configuration.LoadConfiguration(CONFIG_FILE_NAME)
	if err != nil {
		println("Unable to load configuration")
		os.Exit(1)
	}
	log.Println("Configuration:", configuration)

	flag.UintVar(&width, "w", 512, "image width (shorthand)")
	flag.UintVar(&width, "width", 512, "image width")

	flag.UintVar(&height, "h", 512, "image height (shorthand)")
	flag.UintVar(&height, "height", 512, "image height")

	flag.BoolVar(&aa, "a", false, "enable antialiasing (shorthand)")
	flag.BoolVar(&aa, "antialias", false, "enable antialiasing")

	flag.BoolVar(&startTUI, "t", false, "start with text user interface (shorthand)")
	flag.BoolVar(&startTUI, "tui", false, "start with text user interface")

	flag.BoolVar(&listFractals, "l", false, "list names of all fractals that can be rendered (shorthand)")
	flag.BoolVar(&listFractals, "list", false, "list names of all fractals that can be rendered")

	flag.StringVar(&fractal, "f", "", "name of fractal to be rendered (shorthand)")
	flag.StringVar(&fractal, "fractal", "", "name of fractal to be rendered")

	flag.StringVar(&execute, "e", "", "execute given script with rendering commands (shorthand)")
	flag.StringVar(&execute, "exec", "", "execute given script with rendering commands")
	flag.StringVar(&execute, "execute", "", "execute given script with rendering commands")

	flag.BoolVar(&startServer, "s", false, "start in server mode (shorthand)")
	flag.BoolVar(&startServer, "server", false, "start in server mode")

	flag.UintVar(&port, "p", 8080, "port for the server (shorthand)")
	flag.UintVar(&port, "port", 8080, "port for the server")

	flag.BoolVar(&demoMode, "d", false, "start in demo mode (render all fractals)")
	flag.BoolVar(&demoMode, "demo", false, "start in demo mode (render all fractals)")

	flag.BoolVar(&deepZoomMode, "deepzoom", false, "render a single deep-zoom image")
	flag.BoolVar(&sequence, "sequence", false, "render a keyframe sequence instead of a single image (implies -deepzoom)")
	flag.StringVar(&zoom, "zoom", "1E0", "deep-zoom magnification, as <mantissa>E<decimal exponent>")
	flag.StringVar(&real, "real", "-0.5", "deep-zoom center, real part")
	flag.StringVar(&imag, "imag", "0.0", "deep-zoom center, imaginary part")
	flag.UintVar(&iterations, "iterations", 1000, "maximum iteration count")
	flag.UintVar(&approximationOrder, "order", 0, "series approximation order (0 selects automatically)")
	flag.Float64Var(&glitchTolerance, "glitch-tolerance", 0.01, "percentage of pixels allowed to remain glitched")
	flag.Float64Var(&scaleFactor, "scale-factor", 2.0, "zoom reduction factor between keyframes (-sequence only)")
	flag.StringVar(&paletteName, "palette", "data/mandmap.map", "palette file used to color the deep-zoom image")
	flag.StringVar(&outFile, "out", "deepzoom.png", "output file (single image) or directory (sequence)")

	flag.Parse()

	if startServer {
		runInServerMode(port, configuration.DeepZoomConfiguration)
		return
	}

	if sequence {
		settings := params.Settings{
			ImageWidth: width, ImageHeight: height, Iterations: iterations,
			Zoom: zoom, Real: real, Imag: imag,
			GlitchTolerance: glitchTolerance, ApproximationOrder: approximationOrder,
		}
		runInDeepZoomSequenceMode(settings, configuration.DeepZoomConfiguration, paletteName, outFile, scaleFactor)
		return
	}

	if deepZoomMode {
		settings := params.Settings{
			ImageWidth: width, ImageHeight: height, Iterations: iterations,
			Zoom: zoom, Real: real, Imag: imag,
			GlitchTolerance: glitchTolerance, ApproximationOrder: approximationOrder,
		}
		runInDeepZoomMode(settings, configuration.DeepZoomConfiguration, paletteName, outFile)
		return
	}

	if demoMode {
		runInDemoMode()
		return
	}

	if listFractals {
		listAllFractals()
		return
	}

	fmt.Println("Please choose server mode or demo mode")
}

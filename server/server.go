//
//  (C) Copyright 2019 - 2025  Pavel Tisnovsky
//
//  All rights reserved. This program and the accompanying materials
//  are made available under the terms of the Eclipse Public License v1.0
//  which accompanies this distribution, and is available at
//  http://www.eclipse.org/legal/epl-v10.html
//
//  Contributors:
//      Pavel Tisnovsky
//

package server

import (
	"fmt"
	"image/png"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tisnik/svitava-deepzoom/configuration"
	"github.com/tisnik/svitava-deepzoom/image"
	"github.com/tisnik/svitava-deepzoom/palettes"
	"github.com/tisnik/svitava-deepzoom/params"
	"github.com/tisnik/svitava-deepzoom/renderer"
)

const ParameterFileName = "data/svitava.toml"

// Server interface can be satisfied by any structure that implements Serve()
// method
type Server interface {
	Serve()
}

// HTTPServer structure that satisfy Server interface
type HTTPServer struct {
	port            uint
	renderer        renderer.Renderer
	deepZoomPalette palettes.Palette
	deepZoomConfig  configuration.DeepZoomConfiguration
}

// NewHTTPServer constructs new instance of HTTP server
func NewHTTPServer(port uint, renderer renderer.Renderer, deepZoomConfig configuration.DeepZoomConfiguration) Server {
	deepZoomPalette, err := palettes.LoadTextRGBPalette("data/mandmap.map")
	if err != nil {
		log.Printf("deep-zoom palette not loaded: %v", err)
	}
	return HTTPServer{
		port:            port,
		renderer:        renderer,
		deepZoomPalette: deepZoomPalette,
		deepZoomConfig:  deepZoomConfig,
	}
}

func (s HTTPServer) indexPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web-content/index.html")
}

func (s HTTPServer) newFractalPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web-content/new_fractal.html")
}

func (s HTTPServer) galleryPageHandler(w http.ResponseWriter, r *http.Request) {
}

func (s HTTPServer) settingsPageHandler(w http.ResponseWriter, r *http.Request) {
}

func (s HTTPServer) staticImageHandler(w http.ResponseWriter, r *http.Request) {
	imageName := r.URL.String()
	fileName := strings.TrimPrefix(imageName, "/image/")

	cleanPath := path.Clean(fileName)
	if strings.HasPrefix(cleanPath, "..") || cleanPath == "." {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	fullPath := filepath.Join("web-content/images", cleanPath)
	http.ServeFile(w, r, fullPath)
}

func (s HTTPServer) mandelbrotPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web-content/mandelbrot.html")
}

func (s HTTPServer) complexFractalsPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web-content/complex.html")
}

func (s HTTPServer) attractorsFractalsPageHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web-content/attractors.html")
}

func (s HTTPServer) staticIconHandler(w http.ResponseWriter, r *http.Request) {
	iconName := r.URL.String()
	fileName := strings.TrimPrefix(iconName, "/icons/")

	cleanPath := path.Clean(fileName)

	if strings.HasPrefix(cleanPath, "..") || cleanPath == "." {
		http.Error(w, "invalid path", http.StatusBadRequest)
		return
	}
	fullPath := filepath.Join("web-content/icons", cleanPath)
	http.ServeFile(w, r, fullPath)
}

func (s HTTPServer) styleSheetHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web-content/svitava.css")
}

func (s HTTPServer) fractalImageHandler(w http.ResponseWriter, r *http.Request) {
	fractalName, err := parseStringQueryParameter(r, "fractal", "Classic Mandelbrot set")
	if err != nil {
		http.Error(w, "invalid 'fractal' parameter provided", http.StatusBadRequest)
		return
	}

	paletteName, err := parseStringQueryParameter(r, "palette", "mandmap")
	if err != nil {
		http.Error(w, "invalid 'palette' parameter provided", http.StatusBadRequest)
		return
	}

	width, err := parseUintQueryParameter(r, "width", 128)
	if err != nil {
		http.Error(w, "invalid 'width' parameter provided", http.StatusBadRequest)
		return
	}

	height, err := parseUintQueryParameter(r, "height", 128)
	if err != nil {
		http.Error(w, "invalid 'height' parameter provided", http.StatusBadRequest)
		return
	}

	resolution := image.Resolution{
		Width:  uint(width),
		Height: uint(height),
	}
	fmt.Println(fractalName, paletteName, resolution)
	palette, _ := palettes.LoadTextRGBPalette("data/" + paletteName + ".map")
	parametersMap, _ := params.LoadFractalParameters(ParameterFileName)

	if parameters, found := parametersMap[fractalName]; found {
		img := s.renderer.RenderComplexFractal(resolution, parameters, palette)
		png.Encode(w, img)
		return
	}
	http.Error(w, "fractal now found", http.StatusBadRequest)
}

// Serve method starts HTTP server that provides all static and dynamic data
func (s HTTPServer) Serve() {
	log.Printf("Starting server on port %d", s.port)

	mux := chi.NewRouter()

	mux.Get("/", s.indexPageHandler)
	mux.Get("/new-fractal", s.newFractalPageHandler)
	mux.Get("/gallery", s.galleryPageHandler)
	mux.Get("/settings", s.settingsPageHandler)
	mux.Get("/svitava.css", s.styleSheetHandler)
	mux.Get("/icons/{name}", s.staticIconHandler)
	mux.Get("/image/new_fractal/{path}", s.staticImageHandler)
	mux.Get("/mandelbrot", s.mandelbrotPageHandler)
	mux.Get("/complex", s.complexFractalsPageHandler)
	mux.Get("/attractors", s.attractorsFractalsPageHandler)
	mux.Get("/render", s.fractalImageHandler)

	mux.Route("/api/v1/deepzoom", deepZoomRoutes(s.deepZoomPalette, s.deepZoomConfig))

	// int port -> address
	addr := fmt.Sprintf(":%d", s.port)
	err := http.ListenAndServe(addr, mux)
	if err != nil {
		log.Fatal(err)
	}
}

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

package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tisnik/svitava-deepzoom/configuration"
	"github.com/tisnik/svitava-deepzoom/deepzoom"
	"github.com/tisnik/svitava-deepzoom/palettes"
	"github.com/tisnik/svitava-deepzoom/params"
)

// deepZoomJobStatus is the HTTP surface's view of a job: either still
// rendering, done with a PNG available, or failed.
type deepZoomJobStatus string

const (
	deepZoomStatusRendering deepZoomJobStatus = "rendering"
	deepZoomStatusDone      deepZoomJobStatus = "done"
	deepZoomStatusFailed    deepZoomJobStatus = "failed"
)

type deepZoomJob struct {
	status deepZoomJobStatus
	png    []byte
	err    string
}

// deepZoomAPI holds the in-memory job table the two deep-zoom routes share.
// Grounded on reelgoofy's internal/controller/reviews.go API struct, which
// the router closes over the same way.
type deepZoomAPI struct {
	palette palettes.Palette
	config  configuration.DeepZoomConfiguration

	mu   sync.Mutex
	jobs map[uuid.UUID]*deepZoomJob
}

func newDeepZoomAPI(palette palettes.Palette, config configuration.DeepZoomConfiguration) *deepZoomAPI {
	return &deepZoomAPI{
		palette: palette,
		config:  config,
		jobs:    make(map[uuid.UUID]*deepZoomJob),
	}
}

// deepZoomRoutes mounts the deep-zoom JSON API under /api/v1/deepzoom,
// following reelgoofy's Route/sub-router shape.
func deepZoomRoutes(palette palettes.Palette, config configuration.DeepZoomConfiguration) func(chi.Router) {
	api := newDeepZoomAPI(palette, config)
	return func(r chi.Router) {
		r.Post("/", api.createJob)
		r.Get("/{jobId}/image", api.jobImage)
	}
}

func (api *deepZoomAPI) createJob(w http.ResponseWriter, r *http.Request) {
	var settings params.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSONError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}

	if settings.GlitchTolerance == 0 && api.config.DefaultGlitchTolerance > 0 {
		settings.GlitchTolerance = api.config.DefaultGlitchTolerance
	}
	if settings.ApproximationOrder == 0 && api.config.DefaultApproximationOrder > 0 {
		settings.ApproximationOrder = api.config.DefaultApproximationOrder
	}
	if api.config.MaxReferenceIterations > 0 && settings.Iterations > api.config.MaxReferenceIterations {
		settings.Iterations = api.config.MaxReferenceIterations
	}

	if err := validator.New().Struct(settings); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return
	}

	renderer, err := deepzoom.New(settings, api.palette)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID := uuid.New()
	job := &deepZoomJob{status: deepZoomStatusRendering}
	api.mu.Lock()
	api.jobs[jobID] = job
	api.mu.Unlock()

	go api.runJob(jobID, renderer)

	writeJSON(w, http.StatusAccepted, map[string]string{
		"jobId":  jobID.String(),
		"status": string(deepZoomStatusRendering),
	})
}

func (api *deepZoomAPI) runJob(jobID uuid.UUID, renderer *deepzoom.Renderer) {
	img, err := renderer.Render(jobID)

	var unresolved *deepzoom.ErrGlitchUnresolvable
	if err != nil && !isGlitchUnresolvable(err, &unresolved) {
		api.mu.Lock()
		api.jobs[jobID] = &deepZoomJob{status: deepZoomStatusFailed, err: err.Error()}
		api.mu.Unlock()
		return
	}

	img.ApplyPalette(api.palette)

	var buf bytes.Buffer
	if encErr := png.Encode(&buf, img.RGBA); encErr != nil {
		api.mu.Lock()
		api.jobs[jobID] = &deepZoomJob{status: deepZoomStatusFailed, err: encErr.Error()}
		api.mu.Unlock()
		return
	}

	api.mu.Lock()
	api.jobs[jobID] = &deepZoomJob{status: deepZoomStatusDone, png: buf.Bytes()}
	api.mu.Unlock()
}

func isGlitchUnresolvable(err error, target **deepzoom.ErrGlitchUnresolvable) bool {
	unresolved, ok := err.(*deepzoom.ErrGlitchUnresolvable)
	if ok {
		*target = unresolved
	}
	return ok
}

func (api *deepZoomAPI) jobImage(w http.ResponseWriter, r *http.Request) {
	jobIDStr := chi.URLParam(r, "jobId")
	jobID, err := uuid.Parse(jobIDStr)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "jobId is not a valid UUID")
		return
	}

	api.mu.Lock()
	job, found := api.jobs[jobID]
	api.mu.Unlock()
	if !found {
		writeJSONError(w, http.StatusNotFound, "job not found")
		return
	}

	switch job.status {
	case deepZoomStatusDone:
		w.Header().Set("Content-Type", "image/png")
		w.Write(job.png)
	case deepZoomStatusFailed:
		writeJSONError(w, http.StatusInternalServerError, job.err)
	default:
		writeJSON(w, http.StatusAccepted, map[string]string{"status": string(job.status)})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

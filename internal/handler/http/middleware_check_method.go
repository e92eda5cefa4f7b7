// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

const notFoundMessage = "Not found"

// notFound is the router's NotFound handler. It keeps the JSON error body
// shape of the API for unknown paths.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, notFoundMessage, http.StatusNotFound)
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when the path matches a route but the method does not.
// This handler answers 404 instead, so unsupported methods do not reveal
// which paths exist.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

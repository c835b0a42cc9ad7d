// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/go-chi/chi/v5"
)

var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// methodNotRouted is installed as the router's MethodNotAllowed handler.
// A known path hit with the wrong method gets the same 404 JSON body as an
// unknown path, so clients cannot map the route table.
func methodNotRouted(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Strs("routed_methods", methodsFor(router, r.URL.Path)).
			Msg("method is not routed for path")

		writeMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
}

// methodsFor lists the methods router would accept for path.
func methodsFor(router *chi.Mux, path string) []string {
	var methods []string
	for _, method := range routedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			methods = append(methods, method)
		}
	}
	return methods
}

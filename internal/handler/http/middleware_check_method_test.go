// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without the handler's services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/viewer/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "GET /version registered", method: http.MethodGet, path: "/version", expectedStatus: http.StatusOK},
		{name: "GET /viewer/{id} registered", method: http.MethodGet, path: "/viewer/abc", expectedStatus: http.StatusOK},
		{name: "POST /version hidden", method: http.MethodPost, path: "/version", expectedStatus: http.StatusNotFound},
		{name: "PUT /viewer/{id} hidden", method: http.MethodPut, path: "/viewer/abc", expectedStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// pages, compressed and bounded by the request timeout
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)
		r.With(h.withBusID).Get("/viewer/{id}", h.viewerPage)
	})

	// event streams live as long as the browser keeps them open
	router.Group(func(r chi.Router) {
		r.Use(h.withBusID)
		r.Use(h.withSessionLimit)

		r.Get("/viewer/{id}/events", h.viewerEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

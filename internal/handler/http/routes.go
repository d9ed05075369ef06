package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without token
	router.Group(func(r chi.Router) {
		r.Get("/api/v1/version", h.getServerVersion)
		r.Handle("/metrics", h.metrics.handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withToken)

		r.Get("/api/v1/nft/{id}", h.getNFT)
		r.Get("/api/v1/collections", h.listCollections)

		r.Get("/api/v1/profile/{id}", h.getProfile)
		r.Put("/api/v1/profile/{id}", h.replaceLikes)

		r.Get("/api/v1/orders/{id}", h.getOrder)
		r.Put("/api/v1/orders/{id}", h.replaceOrder)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

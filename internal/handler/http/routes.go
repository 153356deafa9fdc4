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

	// every vault route requires a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/vault", func(r chi.Router) {
			r.Get("/", h.listItems)
			r.Post("/", h.createItem)

			r.Get("/pin", h.pinStatus)
			r.Post("/pin", h.setPin)
			r.Put("/pin", h.verifyPin)

			r.Patch("/{id}", h.updateItem)
			r.Delete("/{id}", h.deleteItem)
			r.Post("/{id}/decrypt", h.decryptItem)
		})
	})

	return router
}

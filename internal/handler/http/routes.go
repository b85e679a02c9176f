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

	router.Route("/api/properties", func(r chi.Router) {
		r.Get("/", h.listProperties)
		r.Post("/", h.createProperty)

		r.Route("/{propertyID}", func(r chi.Router) {
			r.Get("/", h.getProperty)
			r.Patch("/", h.updateProperty)
			r.Delete("/", h.deleteProperty)

			r.Delete("/files", h.removeAllFiles)

			r.Route("/files/{category}", func(r chi.Router) {
				r.Get("/", h.listFiles)
				r.Post("/{fileName}", h.uploadFile)
				r.Delete("/{fileName}", h.deleteFile)
			})
		})
	})

	router.Route("/api/contacts", func(r chi.Router) {
		r.Get("/", h.listContacts)
		r.Post("/", h.createContact)

		r.Route("/{contactID}", func(r chi.Router) {
			r.Get("/", h.getContact)
			r.Patch("/", h.updateContact)
			r.Delete("/", h.deleteContact)
		})
	})

	return router
}

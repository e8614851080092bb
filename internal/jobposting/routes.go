package jobposting

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers job routes on the provided router. Listings are
// public; posting and the recruiter view sit behind the auth gate.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/get", h.List)
	r.Get("/get/{id}", h.Show)
	r.Group(func(r chi.Router) {
		r.Use(h.gate.Require)
		r.Post("/post", h.Post)
		r.Get("/getadminjobs", h.AdminList)
	})
}

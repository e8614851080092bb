package account

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers account routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Group(func(r chi.Router) {
		r.Use(h.gate.Require)
		r.Post("/profile/update", h.UpdateProfile)
		r.Put("/profile/update", h.UpdateProfile)
	})
}

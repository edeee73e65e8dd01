package tipcalc

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all tip endpoints onto the given router
// under the /tip prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/tip", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/split", h.Split)
		r.Post("/entry", h.Entry)
		r.Get("/policy", h.Policy)
	})
}

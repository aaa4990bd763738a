package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/bridge/version", h.getVersion)

	router.Group(func(r chi.Router) {
		if h.cfg.AuthEnabled() {
			r.Use(h.auth)
		}

		r.Get("/bridge/status", h.getStatus)

		r.Get("/bridge/shelters", h.getShelters)
		r.Get("/bridge/missions", h.getMissions)
		r.Post("/bridge/missions/{id}/complete", h.completeMission)
		r.Post("/bridge/sync", h.syncNow)

		r.Get("/bridge/region", h.getRegion)
		r.Post("/bridge/region", h.selectRegion)
		r.Post("/bridge/region/change", h.changeRegion)

		r.Get("/bridge/chat", h.getChat)
		r.Post("/bridge/chat", h.postChat)

		r.Post("/bridge/sos", h.sendSOS)

		r.Get("/bridge/profile", h.getProfile)
		r.Put("/bridge/profile", h.putProfile)

		r.Get("/bridge/notices", h.getNotices)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

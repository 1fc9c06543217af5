// SPDX-License-Identifier: Apache-2.0

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
	router.Use(withGZip)

	router.Route("/api/config", func(r chi.Router) {
		r.Post("/encode", h.encodeConfig)
		r.Post("/decode", h.decodeConfig)
		r.Post("/validate", h.validateConfig)
		r.Post("/import", h.importConfig)
		r.Get("/list", h.listConfigs)
		r.Get("/{hostname}", h.getConfig)
		r.Delete("/{hostname}", h.deleteConfig)
	})

	router.Route("/api/backup", func(r chi.Router) {
		r.Post("/encrypt", h.encryptBackup)
		r.Post("/decrypt", h.decryptBackup)
		r.Get("/list", h.listBackups)
	})

	router.Get("/api/version", h.getServerVersion)

	return router
}

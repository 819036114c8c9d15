package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pndiaye/xaalis/internal/http/alias"
	"github.com/pndiaye/xaalis/internal/http/export"
	"github.com/pndiaye/xaalis/internal/http/notification"
	"github.com/pndiaye/xaalis/internal/http/record"
	"github.com/pndiaye/xaalis/internal/http/repair"
)

func New(
	notificationsV1 *notification.Handler,
	recordsV1 *record.Handler,
	aliasesV1 *alias.Handler,
	exportV1 *export.Handler,
	repairV1 *repair.Handler,
	deviceSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(DeviceAuth(deviceSecret))

		r.Route("/notifications", notificationsV1.Routes)

		r.Route("/records", recordsV1.Routes)

		r.Route("/aliases", func(r chi.Router) {
			aliasesV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)

		r.Route("/repair", repairV1.Routes)
	})

	return router
}

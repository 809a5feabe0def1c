package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andeantex/facturador/internal/http/fiscaldoc"
	"github.com/andeantex/facturador/internal/http/order"
)

func New(
	allowedOrigins []string,
	ordersV1 *order.Handler,
	fiscalV1 *fiscaldoc.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/orders", ordersV1.Routes)

		r.Route("/fiscal-documents", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			fiscalV1.Routes(r)
		})
	})

	return router
}

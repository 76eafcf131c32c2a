package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hidestyle/storefront/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(api chi.Router) {
		api.With(RateLimitMiddleware).Post("/login", handlers.LoginHandler)
		api.Post("/register", handlers.RegisterHandler)
		api.Post("/refresh", handlers.RefreshHandler)

		api.With(AuthMiddleware).Get("/stats", handlers.GetCatalogStatsHandler)

		api.Route("/products", func(pr chi.Router) {
			pr.Get("/", handlers.GetProductsHandler)
			pr.With(AuthMiddleware).Post("/", handlers.CreateProductHandler)
			pr.MethodNotAllowed(handlers.MethodNotAllowed(http.MethodGet, http.MethodPost))

			pr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", handlers.GetProductByIDHandler)
				ir.With(AuthMiddleware).Put("/", handlers.UpdateProductHandler)
				ir.With(AuthMiddleware).Delete("/", handlers.DeleteProductHandler)
				ir.MethodNotAllowed(handlers.MethodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}

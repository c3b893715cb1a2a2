package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires all handlers under /api/v1. Everything below the prefix is
// session-scoped via SessionMiddleware; /health is not.
func NewRouter(catalogH *CatalogHandler, cartH *CartHandler, checkoutH *CheckoutHandler, contactH *ContactHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(SessionMiddleware)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogH.ListProducts)
			r.Get("/filters", catalogH.GetFilters)
			r.Get("/{id}", catalogH.GetProduct)
		})
		r.Get("/offers", catalogH.ListOffers)
		r.Get("/upcoming", catalogH.ListUpcoming)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Post("/items", cartH.AddItem)
			r.Put("/items/{productID}", cartH.UpdateQuantity)
			r.Delete("/items/{productID}", cartH.RemoveItem)
			r.Delete("/", cartH.ClearCart)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkoutH.Begin)
			r.Get("/", checkoutH.GetState)
			r.Put("/shipping", checkoutH.SaveShipping)
			r.Post("/advance", checkoutH.Advance)
			r.Post("/back", checkoutH.Back)
			r.Post("/order", checkoutH.PlaceOrder)
			r.Delete("/", checkoutH.Abandon)
		})

		r.Post("/contact", contactH.Submit)
	})

	return r
}

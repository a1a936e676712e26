package rest

import (
	"net/http"

	"lokapasar-be/internal/auth"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/middleware"
	"lokapasar-be/internal/rbac"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth     *AuthHandler
	User     *UserHandler
	Catalog  *CatalogHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Coupon   *CouponHandler
	Order    *OrderHandler
	Payment  *PaymentHandler
}

// NewRouter assembles the HTTP surface under /api/v1.
func NewRouter(h Handlers, tokens *auth.Manager) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.AuthMiddleware(tokens))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(requireAuth).Post("/logout", h.Auth.Logout)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", h.User.Me)
			r.Patch("/me", h.User.UpdateMe)
			r.Route("/me/addresses", func(r chi.Router) {
				r.Get("/", h.User.ListAddresses)
				r.Post("/", h.User.AddAddress)
				r.Delete("/{index}", h.User.DeleteAddress)
			})
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", h.Catalog.ListBrands)
			r.Group(func(r chi.Router) {
				r.Use(requireAction(rbac.ActionManageCatalog))
				r.Post("/", h.Catalog.CreateBrand)
				r.Patch("/{name}", h.Catalog.RenameBrand)
				r.Delete("/{name}", h.Catalog.DeleteBrand)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Catalog.ListCategories)
			r.Group(func(r chi.Router) {
				r.Use(requireAction(rbac.ActionManageCatalog))
				r.Post("/", h.Catalog.CreateCategory)
				r.Patch("/{name}", h.Catalog.UpdateCategory)
				r.Delete("/{name}", h.Catalog.DeleteCategory)
			})
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", h.Catalog.ListOffers)
			r.Get("/{name}", h.Catalog.GetOffer)
			r.Group(func(r chi.Router) {
				r.Use(requireAction(rbac.ActionManageCatalog))
				r.Post("/", h.Catalog.CreateOffer)
				r.Patch("/{name}", h.Catalog.UpdateOffer)
				r.Delete("/{name}", h.Catalog.DeleteOffer)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Get("/{id}", h.Product.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAction(rbac.ActionManageCatalog))
				r.Post("/", h.Product.Create)
				r.Patch("/{id}", h.Product.Update)
				r.Delete("/{id}", h.Product.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(requireAction(rbac.ActionUseCart))
			r.Get("/", h.Cart.Get)
			r.Post("/items", h.Cart.AddItem)
			r.Patch("/items/{productID}", h.Cart.UpdateItem)
			r.Delete("/items/{productID}", h.Cart.RemoveItem)
			r.Delete("/", h.Cart.Clear)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(requireAction(rbac.ActionUseWishlist))
			r.Get("/", h.Wishlist.List)
			r.Post("/items", h.Wishlist.Add)
			r.Delete("/items/{productID}", h.Wishlist.Remove)
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Get("/", h.Coupon.List)
			r.Get("/{code}", h.Coupon.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAction(rbac.ActionManageCoupon))
				r.Post("/", h.Coupon.Create)
				r.Patch("/{code}", h.Coupon.Update)
				r.Delete("/{code}", h.Coupon.Delete)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(requireAction(rbac.ActionPlaceOrder)).Post("/", h.Order.Place)
			r.Group(func(r chi.Router) {
				r.Use(requireAction(rbac.ActionViewOrders))
				r.Get("/", h.Order.List)
				r.Get("/{id}", h.Order.Get)
				r.Get("/{id}/history", h.Order.History)
			})
		})

		r.Post("/payments/callback", h.Payment.Callback)
	})

	return r
}

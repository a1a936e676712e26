package main

import (
	"log"
	"net/http"

	"lokapasar-be/internal/auth"
	"lokapasar-be/internal/cart"
	"lokapasar-be/internal/catalog"
	"lokapasar-be/internal/config"
	"lokapasar-be/internal/coupon"
	"lokapasar-be/internal/db"
	"lokapasar-be/internal/logger"
	"lokapasar-be/internal/notify"
	"lokapasar-be/internal/order"
	"lokapasar-be/internal/payment"
	"lokapasar-be/internal/product"
	"lokapasar-be/internal/rest"
	"lokapasar-be/internal/user"
	"lokapasar-be/internal/wishlist"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, cfg.AdminSecret)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo, catalogRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo, productRepo)

	couponRepo := coupon.NewRepository(database)
	couponSvc := coupon.NewService(couponRepo)

	gateway := payment.NewHTTPGateway(cfg.PaymentAPIKey)
	chargeRepo := payment.NewRepository(database)

	mailer := notify.NewSMTPMailer(cfg)
	sms := notify.NewSMSClient(cfg)
	dispatcher := notify.NewDispatcher(mailer, sms, userRepo, cfg.InvoiceDir)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, cartRepo, userRepo, couponSvc, gateway, chargeRepo, dispatcher)

	router := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(userSvc, tokens, cfg.AccessTokenTTL),
		User:     rest.NewUserHandler(userSvc),
		Catalog:  rest.NewCatalogHandler(catalogSvc),
		Product:  rest.NewProductHandler(productSvc),
		Cart:     rest.NewCartHandler(cartSvc),
		Wishlist: rest.NewWishlistHandler(wishlistSvc),
		Coupon:   rest.NewCouponHandler(couponSvc),
		Order:    rest.NewOrderHandler(orderSvc),
		Payment:  rest.NewPaymentHandler(orderSvc),
	}, tokens)

	log.Printf("🚀 API server running at http://localhost:%s/api/v1", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}

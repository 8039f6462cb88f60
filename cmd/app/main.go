package main

import (
	"log"
	"os"

	"PetStoreAPI/external/ghn"
	"PetStoreAPI/external/midtrans"

	"PetStoreAPI/internal/db"
	"PetStoreAPI/internal/repository"
	"PetStoreAPI/internal/services"
	"PetStoreAPI/internal/session"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	sessions := session.NewStore()

	// ======================
	// EXTERNALS
	// ======================
	logistics, err := ghn.NewClient()
	if err != nil {
		log.Fatal(err)
	}
	gateway := midtrans.NewGateway()

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	voucherRepo := repository.NewVoucherRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo)
	userSvc := services.NewUserService(userRepo, authRepo)
	catalogSvc := services.NewCatalogService(catalogRepo)
	productSvc := services.NewProductService(productRepo)
	voucherSvc := services.NewVoucherService(voucherRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo)
	locationSvc := services.NewLocationService(logistics)
	shippingSvc := services.NewShippingService(logistics)
	checkoutSvc := services.NewCheckoutService(cartRepo, voucherRepo, orderRepo, shippingSvc, gateway, paymentRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, orderRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	api := e.Group("/pet-store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerUserRoutes(api, userSvc)
	registerCatalogRoutes(api, catalogSvc)
	registerProductRoutes(api, productSvc)
	registerVoucherRoutes(api, voucherSvc)
	registerCartRoutes(api, cartSvc)
	registerLocationRoutes(api, locationSvc, shippingSvc, sessions)
	registerCheckoutRoutes(api, checkoutSvc, voucherSvc, cartSvc, sessions)
	registerOrderRoutes(api, orderSvc)
	registerPaymentRoutes(api, paymentSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

package routes

import (
	"github.com/arjunkrishnadev/Hotel-Ganaraj/configs"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/controllers"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/middlewares"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/nominatim"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/razorpay"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	offerStore := repository.NewOfferStore(rdb)

	// External collaborators
	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	geo := nominatim.New("HotelGanaraj/1.0")

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, orderRepo, catalogRepo, customerRepo, offerStore)
	offerSvc := services.NewOfferService(db, orderRepo, catalogRepo, customerRepo, offerStore)
	checkoutSvc := services.NewCheckoutService(db, cartSvc, orderRepo, customerRepo, offerStore,
		gateway, cfg.RazorpayKeyID, cfg.PaymentCallback)
	orderSvc := services.NewOrderService(orderRepo, customerRepo)
	reportSvc := services.NewReportService(reportRepo)
	profileSvc := services.NewProfileService(customerRepo)
	bookingSvc := services.NewBookingService(bookingRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	offerCtrl := controllers.NewOfferController(offerSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	dashCtrl := controllers.NewDashboardController(reportSvc)
	bookingCtrl := controllers.NewBookingController(bookingSvc)
	locationCtrl := controllers.NewLocationController(geo)
	adminCatalogCtrl := controllers.NewAdminCatalogController(catalogSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public pages
	r.GET("/home", menuCtrl.Home)
	r.GET("/menu", menuCtrl.Menu)
	r.GET("/categories", menuCtrl.Categories)
	r.GET("/location", locationCtrl.Get)
	r.POST("/bookings", bookingCtrl.Create)

	// Customer (must be logged in)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.UpdateItem)
		u.GET("/apply-offer/:productId/:discount", offerCtrl.Apply)
		u.GET("/checkout", checkoutCtrl.Checkout)
		u.POST("/payment/callback", checkoutCtrl.PaymentCallback)
		u.GET("/orders", orderCtrl.History)
		u.GET("/profile", profileCtrl.Get)
		u.PATCH("/profile", profileCtrl.Update)
		u.POST("/profile/avatar", profileCtrl.UploadAvatar)
	}

	// Staff only
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "staff"))
	{
		staff.GET("/dashboard", dashCtrl.Dashboard)

		staff.GET("/bookings", bookingCtrl.List)
		staff.PATCH("/bookings/:id", bookingCtrl.UpdateStatus)
		staff.GET("/tables", bookingCtrl.Tables)
		staff.POST("/tables", bookingCtrl.CreateTable)
		staff.DELETE("/tables/:id", bookingCtrl.DeleteTable)

		staff.POST("/categories", adminCatalogCtrl.CreateCategory)
		staff.PATCH("/categories/:id", adminCatalogCtrl.UpdateCategory)
		staff.DELETE("/categories/:id", adminCatalogCtrl.DeleteCategory)
		staff.POST("/products", adminCatalogCtrl.CreateProduct)
		staff.PATCH("/products/:id", adminCatalogCtrl.UpdateProduct)
		staff.DELETE("/products/:id", adminCatalogCtrl.DeleteProduct)
	}
}

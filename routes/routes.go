package routes

import (
	"github.com/jculp24/thrsty/configs"
	"github.com/jculp24/thrsty/controllers"
	"github.com/jculp24/thrsty/middlewares"
	"github.com/jculp24/thrsty/repository"
	"github.com/jculp24/thrsty/services"
	"github.com/jculp24/thrsty/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotificationHub) {
	r.GET("/", func(c *gin.Context) { c.String(200, "THRSTY API is running") })
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	blacklist := services.NewTokenBlacklist()
	authSvc := services.NewAuthService(userRepo, blacklist, cfg.JWTSecret, cfg.JWTTTL)
	vendorSvc := services.NewVendorService(vendorRepo)
	orderSvc := services.NewOrderService(db, orderRepo, vendorRepo, notifRepo, hub)
	notifSvc := services.NewNotificationService(notifRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	vendorCtrl := controllers.NewVendorController(vendorSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret, blacklist)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authRequired, authCtrl.Logout)
		a.GET("/me", authRequired, authCtrl.Me)
	}

	// Vendors (public reads, authenticated writes)
	v := api.Group("/vendors")
	{
		v.GET("", vendorCtrl.List)
		v.GET("/:id", vendorCtrl.Detail)
		v.GET("/:id/menu", vendorCtrl.Menu)
		v.POST("", authRequired, vendorCtrl.Create)
		v.PUT("/:id", authRequired, vendorCtrl.Update)
		v.DELETE("/:id", authRequired, vendorCtrl.Delete)

		// Vendor order-queue feed, admin only
		vendorAdmin := middlewares.VendorAdminMiddleware(vendorRepo, "id")
		v.GET("/:id/notifications", authRequired, vendorAdmin, notifCtrl.ListForVendor)
		v.PUT("/:id/notifications/:nid/read", authRequired, vendorAdmin, notifCtrl.MarkReadForVendor)
	}

	// Orders
	o := api.Group("/orders", authRequired)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.ListForMe)
		o.GET("/:id", orderCtrl.Detail)
		o.PUT("/:id/status", orderCtrl.UpdateStatus)
		o.GET("/vendor/:vendorId", orderCtrl.ListForVendor)
	}

	// Notifications
	n := api.Group("/notifications", authRequired)
	{
		n.GET("", notifCtrl.List)
		n.POST("", notifCtrl.Create)
		n.PUT("/:id/read", notifCtrl.MarkRead)
		n.DELETE("/:id", notifCtrl.Delete)
	}

	// Live notification streams
	wsAuth := middlewares.WSAuthMiddleware(cfg.JWTSecret, blacklist)
	r.GET("/ws/notifications", wsAuth, hub.HandleUserStream)
	r.GET("/ws/vendors/:vendorId/notifications",
		wsAuth,
		middlewares.VendorAdminMiddleware(vendorRepo, "vendorId"),
		hub.HandleVendorStream,
	)
}

package routes

import (
	"net/http"
	"time"

	"washlane/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Catalog      *handlers.CatalogHandler
	Cart         *handlers.CartHandler
	Booking      *handlers.BookingHandler
	Order        *handlers.OrderHandler
	Notification *handlers.NotificationHandler
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("", hb.Catalog.GetCatalogHandler)
		api.GET("/services", hb.Catalog.GetServicesHandler)
	}
}

// RegisterCartRoutes registers the session cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.POST("", hb.Cart.OpenCartHandler)
		api.GET("/:sessionID", hb.Cart.GetCartHandler)
		api.POST("/:sessionID/increment", hb.Cart.IncrementHandler)
		api.POST("/:sessionID/decrement", hb.Cart.DecrementHandler)
		api.POST("/:sessionID/quantity", hb.Cart.SetQuantityHandler)
		api.POST("/:sessionID/clear", hb.Cart.ClearHandler)
	}
}

// RegisterOrderRoutes registers the order read and lifecycle endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.GET("", hb.Order.ListOrdersHandler)
		api.GET("/:orderID", hb.Order.GetOrderHandler)
		api.GET("/:orderID/timeline", hb.Order.GetTimelineHandler)
		api.PATCH("/:orderID/status", hb.Order.UpdateStatusHandler)
	}
}

// RegisterNotificationRoutes registers the unread-count endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("/unread/:userID", hb.Notification.GetUnreadHandler)
		api.POST("/unread/:userID", hb.Notification.PushUnreadHandler)
		api.DELETE("/unread/:userID", hb.Notification.MarkSeenHandler)
	}
}

// RegisterHealthRoute exposes a liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}

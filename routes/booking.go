package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the checkout engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.Booking.InitiateSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		api.POST("/session/:sessionID/extras/add", hb.Booking.AddExtraItem)
		api.POST("/session/:sessionID/extras/remove", hb.Booking.RemoveExtraItem)
		api.GET("/session/:sessionID/quote", hb.Booking.GetQuote)
		api.POST("/session/:sessionID/submit", hb.Booking.Submit)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

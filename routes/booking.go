package routes

import (
	"github.com/gin-gonic/gin"

	"apexdrive/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", bh.CreateSession)
		api.GET("/session/:sessionID", bh.GetSession)
		api.PATCH("/session/:sessionID", bh.UpdateSession)
		api.POST("/session/:sessionID/advance", bh.Advance)
		api.POST("/session/:sessionID/back", bh.Back)
		api.POST("/session/:sessionID/reset", bh.Reset)
		api.POST("/session/:sessionID/submit", bh.Submit)
		api.DELETE("/session/:sessionID", bh.CancelSession)
	}
}

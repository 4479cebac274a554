package bookings

import (
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("/book", controller.BookSeat)                   // POST /api/v1/bookings/book
		bookings.POST("/cancel/:bookingId", controller.CancelBooking) // POST /api/v1/bookings/cancel/:bookingId
		bookings.GET("/user/:userId", controller.GetUserBookings)     // GET /api/v1/bookings/user/:userId
	}
}

package events

import (
	"github.com/gin-gonic/gin"
)

// SetupEventRoutes configures all event-related routes
func SetupEventRoutes(rg *gin.RouterGroup, controller Controller) {
	events := rg.Group("/events")
	{
		events.GET("", controller.GetAllEvents)                     // GET /api/v1/events
		events.POST("", controller.CreateEvent)                     // POST /api/v1/events
		events.GET("/:eventId", controller.GetEvent)                // GET /api/v1/events/:eventId
		events.PUT("/:eventId", controller.UpdateEvent)             // PUT /api/v1/events/:eventId
		events.DELETE("/:eventId", controller.DeleteEvent)          // DELETE /api/v1/events/:eventId
		events.GET("/:eventId/seats/live", controller.LiveSeatFeed) // GET /api/v1/events/:eventId/seats/live
	}
}

package users

import (
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes configures all user-related routes
func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller) {
	users := rg.Group("/users")
	{
		users.POST("", controller.CreateUser)           // POST /api/v1/users
		users.GET("", controller.GetAllUsers)           // GET /api/v1/users
		users.GET("/:userId", controller.GetUser)       // GET /api/v1/users/:userId
		users.PUT("/:userId", controller.UpdateUser)    // PUT /api/v1/users/:userId
		users.DELETE("/:userId", controller.DeleteUser) // DELETE /api/v1/users/:userId
	}
}

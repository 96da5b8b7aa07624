package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/photoloop/api-go/controllers"
)

func SetupPublicUserRoutes(optional *gin.RouterGroup, userController *controllers.UserController, followController *controllers.FollowController) {
	users := optional.Group("/users")
	{
		users.GET("/search", userController.SearchUsers)
		users.GET("/stats", userController.GetUserStats)
		users.GET("/username/:username", userController.GetUserByUsername)
		users.GET("/:userId/profile", userController.GetUserProfile)
		users.GET("/:userId/follow", followController.IsFollowing)
		users.GET("/:userId/followers", followController.GetUserFollowers)
		users.GET("/:userId/following", followController.GetUserFollowing)
	}
}
